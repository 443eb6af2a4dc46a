/*
Copyright 2026 The cifsmount Authors All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config holds the settings shared by every cifsmount command.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/localpath"
)

// EnvPrefix is the prefix of environment variables that override settings,
// e.g. unit-dir => $CIFSMOUNT_UNIT_DIR
const EnvPrefix = "CIFSMOUNT"

// Keys shared by flags, environment variables and the config file
const (
	UnitDir         = "unit-dir"
	CredentialsDir  = "credentials-dir"
	SMBVersion      = "smb-version"
	FileMode        = "file-mode"
	DirMode         = "dir-mode"
	InitBackend     = "init-backend"
	MaxAuditEntries = "max-audit-entries"
	DryRun          = "dry-run"
	Output          = "output"
	SkipInstall     = "skip-install"
	SkipAudit       = "skip-audit"
	Interactive     = "interactive"
	Password        = "password"
)

// Default values
const (
	DefaultUnitDir         = "/etc/systemd/system"
	DefaultCredentialsDir  = "/etc/cifsmount/credentials"
	DefaultSMBVersion      = "3.0"
	DefaultFileMode        = "0755"
	DefaultDirMode         = "0755"
	DefaultInitBackend     = BackendSystemctl
	DefaultMaxAuditEntries = 1000
)

// Init backends
const (
	BackendSystemctl = "systemctl"
	BackendDBus      = "dbus"
)

// Settings is a snapshot of the resolved configuration
type Settings struct {
	UnitDir         string
	CredentialsDir  string
	SMBVersion      string
	FileMode        string
	DirMode         string
	InitBackend     string
	MaxAuditEntries int
	DryRun          bool
	JSON            bool
	SkipInstall     bool
	SkipAudit       bool
	Interactive     bool
}

// SetDefaults registers the default of every setting
func SetDefaults(v *viper.Viper) {
	v.SetDefault(UnitDir, DefaultUnitDir)
	v.SetDefault(CredentialsDir, DefaultCredentialsDir)
	v.SetDefault(SMBVersion, DefaultSMBVersion)
	v.SetDefault(FileMode, DefaultFileMode)
	v.SetDefault(DirMode, DefaultDirMode)
	v.SetDefault(InitBackend, DefaultInitBackend)
	v.SetDefault(MaxAuditEntries, DefaultMaxAuditEntries)
	v.SetDefault(Output, "text")
	v.SetDefault(Interactive, true)
}

// BindEnv makes every key overridable through CIFSMOUNT_* environment variables
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	// Replaces '-' in keys with '_' in env variables
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// ReadConfigFile merges the config file, if there is one, into v
func ReadConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		path = localpath.ConfigFile()
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			klog.Infof("no config file at %s", path)
			return nil
		}
		return errors.Wrapf(err, "stat %s", path)
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	klog.Infof("loaded config file %s", v.ConfigFileUsed())
	return nil
}

// Get resolves the settings from v
func Get(v *viper.Viper) (Settings, error) {
	s := Settings{
		UnitDir:         v.GetString(UnitDir),
		CredentialsDir:  v.GetString(CredentialsDir),
		SMBVersion:      v.GetString(SMBVersion),
		FileMode:        v.GetString(FileMode),
		DirMode:         v.GetString(DirMode),
		InitBackend:     v.GetString(InitBackend),
		MaxAuditEntries: v.GetInt(MaxAuditEntries),
		DryRun:          v.GetBool(DryRun),
		SkipInstall:     v.GetBool(SkipInstall),
		SkipAudit:       v.GetBool(SkipAudit),
		Interactive:     v.GetBool(Interactive),
	}

	switch o := v.GetString(Output); o {
	case "text":
	case "json":
		s.JSON = true
	default:
		return s, errors.Errorf("invalid output format %q: expected text or json", o)
	}

	switch s.InitBackend {
	case BackendSystemctl, BackendDBus:
	default:
		return s, errors.Errorf("invalid init backend %q: expected %s or %s", s.InitBackend, BackendSystemctl, BackendDBus)
	}

	if s.MaxAuditEntries < 1 {
		return s, errors.Errorf("%s must be at least 1, got %d", MaxAuditEntries, s.MaxAuditEntries)
	}
	return s, nil
}
