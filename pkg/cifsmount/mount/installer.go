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

package mount

import (
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/assets"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/command"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/style"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/sysinit"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/unit"
)

const (
	credentialsPerms = "0600"
	unitPerms        = "0644"
)

// Installer places the files of a mount on the host and drives its units
type Installer struct {
	Runner         command.Runner
	Init           sysinit.Manager
	UnitDir        string
	CredentialsDir string
	// DryRun skips the unit state queries, which a dry runner cannot answer
	DryRun bool
}

// Files renders the credentials file and the unit files of c
func (i *Installer) Files(c Config) ([]assets.CopyableFile, error) {
	cred := c.CredentialsPath(i.CredentialsDir)
	mu, err := unit.RenderMount(unit.Mount{
		Name:        c.Name,
		What:        c.Share,
		Where:       c.MountPoint,
		Options:     Options(c, cred),
		Credentials: cred,
	})
	if err != nil {
		return nil, errors.Wrap(err, "render mount unit")
	}

	files := []assets.CopyableFile{
		assets.NewSecretAssetTarget(Credentials(c), cred, credentialsPerms),
		assets.NewMemoryAsset(mu, i.UnitDir, c.UnitName(), unitPerms),
	}
	if c.Wrapper {
		wu, err := unit.RenderWrapper(unit.Wrapper{Name: c.Name, What: c.Share, Where: c.MountPoint})
		if err != nil {
			return nil, errors.Wrap(err, "render wrapper unit")
		}
		files = append(files, assets.NewMemoryAsset(wu, i.UnitDir, c.WrapperName(), unitPerms))
	}
	return files, nil
}

// WriteFiles creates the credentials directory and the mount point, then writes every file
func (i *Installer) WriteFiles(c Config) error {
	files, err := i.Files(c)
	if err != nil {
		return err
	}

	cmds := [][]string{
		{"mkdir", "-p", i.CredentialsDir},
		{"chmod", "0700", i.CredentialsDir},
		{"mkdir", "-p", c.MountPoint},
		{"mkdir", "-p", i.UnitDir},
	}
	for _, args := range cmds {
		if _, err := i.Runner.RunCmd(exec.Command(args[0], args[1:]...)); err != nil {
			return errors.Wrap(err, strings.Join(args, " "))
		}
	}

	for _, f := range files {
		out.Step(style.Copying, "Writing {{.path}}", out.V{"path": assets.TargetPath(f)})
		if err := i.Runner.Copy(f); err != nil {
			return errors.Wrapf(err, "write %s", assets.TargetPath(f))
		}
	}
	return nil
}

// StartUnits reloads systemd, then enables and starts the units of c.
// Units that were already running are restarted to pick up the new files.
func (i *Installer) StartUnits(c Config) (string, error) {
	if err := i.Init.DaemonReload(); err != nil {
		return "", errors.Wrap(err, "daemon-reload")
	}
	for _, u := range c.Units() {
		wasActive := !i.DryRun && i.Init.Active(u)
		out.Step(style.Enabling, "Enabling {{.unit}}", out.V{"unit": u})
		if err := i.Init.EnableNow(u); err != nil {
			return u, errors.Wrapf(err, "enable --now %s", u)
		}
		if wasActive {
			klog.Infof("%s was active, restarting", u)
			if err := i.Init.Restart(u); err != nil {
				return u, errors.Wrapf(err, "restart %s", u)
			}
		}
	}
	return "", nil
}

// ShowStatus prints the status of each unit. Failures are warnings only.
func (i *Installer) ShowStatus(c Config) {
	for _, u := range c.Units() {
		st, err := i.Init.Status(u)
		for _, line := range strings.Split(strings.TrimRight(st, "\n"), "\n") {
			if line != "" {
				out.Step(style.LogEntry, "{{.line}}", out.V{"line": line})
			}
		}
		if err != nil {
			out.WarningT("{{.unit}} status: {{.error}}", out.V{"unit": u, "error": err})
		}
	}
}

// Remove stops and disables the units of c, deletes its files and reloads systemd.
// Units that are already gone only produce warnings.
func (i *Installer) Remove(c Config) error {
	units := c.Units()
	for j := len(units) - 1; j >= 0; j-- {
		u := units[j]
		out.Step(style.Stopped, "Stopping {{.unit}}", out.V{"unit": u})
		if err := i.Init.DisableNow(u); err != nil {
			out.WarningT("Unable to stop {{.unit}}: {{.error}}", out.V{"unit": u, "error": err})
		}
	}

	files := []assets.CopyableFile{
		assets.NewMemoryAsset(nil, i.UnitDir, c.UnitName(), unitPerms),
		assets.NewSecretAssetTarget(nil, c.CredentialsPath(i.CredentialsDir), credentialsPerms),
	}
	if c.Wrapper {
		files = append([]assets.CopyableFile{assets.NewMemoryAsset(nil, i.UnitDir, c.WrapperName(), unitPerms)}, files...)
	}
	for _, f := range files {
		out.Step(style.Deleted, "Removing {{.path}}", out.V{"path": assets.TargetPath(f)})
		if err := i.Runner.Remove(f); err != nil {
			return errors.Wrapf(err, "remove %s", assets.TargetPath(f))
		}
	}
	return errors.Wrap(i.Init.DaemonReload(), "daemon-reload")
}
