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

// Package mount turns answers about a CIFS share into files and systemd units.
package mount

import (
	"os"
	"path"
	"strings"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/unit"
)

// Config describes one CIFS mount
type Config struct {
	// Name identifies the mount in cifsmount commands and file names
	Name       string `json:"name" validate:"required,mountname"`
	Share      string `json:"share" validate:"required,cifsshare"`
	MountPoint string `json:"mountPoint" validate:"required,mountpoint"`
	Username   string `json:"username" validate:"required,cifsuser"`
	// Password only ever lands in the credentials file
	Password   string `json:"-" validate:"required,singleline"`
	Domain     string `json:"domain" validate:"omitempty,cifsdomain"`
	SMBVersion string `json:"smbVersion" validate:"required,smbversion"`
	UID        string `json:"uid" validate:"omitempty,idspec"`
	GID        string `json:"gid" validate:"omitempty,idspec"`
	FileMode   string `json:"fileMode" validate:"required,octalmode"`
	DirMode    string `json:"dirMode" validate:"required,octalmode"`
	// Options are extra key[=value] mount options, comma separated
	Options string `json:"options" validate:"omitempty,mountoptions"`
	// Wrapper adds the cifs-<name>.service unit
	Wrapper bool `json:"wrapper"`
}

// NameFromMountPoint derives the name of a single mount from its mount point,
// e.g. /mnt/data => mnt-data. Characters a name may not hold become _, and
// a name has to start with a letter or digit.
func NameFromMountPoint(mp string) string {
	p := strings.Trim(path.Clean(mp), "/")
	p = strings.ReplaceAll(p, "/", "-")
	p = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, p)
	p = strings.TrimLeft(p, "_-")
	if p == "" {
		return "mount"
	}
	return p
}

// DefaultOwner returns the uid and gid mounted files should belong to: the
// user who invoked sudo when there is one, otherwise root.
func DefaultOwner() (string, string) {
	uid, gid := os.Getenv("SUDO_UID"), os.Getenv("SUDO_GID")
	if uid == "" {
		uid = "0"
	}
	if gid == "" {
		gid = "0"
	}
	return uid, gid
}

// UnitName is the systemd .mount unit name of the mount point
func (c Config) UnitName() string {
	return unit.MountName(c.MountPoint)
}

// WrapperName is the name of the friendly service, empty when there is none
func (c Config) WrapperName() string {
	if !c.Wrapper {
		return ""
	}
	return unit.WrapperName(c.Name)
}

// Units returns the unit names to enable, the mount unit first
func (c Config) Units() []string {
	units := []string{c.UnitName()}
	if c.Wrapper {
		units = append(units, c.WrapperName())
	}
	return units
}

// CredentialsPath is where the credentials file of the mount lives
func (c Config) CredentialsPath(dir string) string {
	return path.Join(dir, c.Name+".cred")
}
