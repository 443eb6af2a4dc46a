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

package cmd

import (
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/command"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/config"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/exit"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/inventory"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/manifest"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/mount"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out/register"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/pkgmgr"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/prompt"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/reason"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/style"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/sysinit"
)

// Replaced in tests.
var (
	hostFs      = afero.NewOsFs()
	lookPath    = exec.LookPath
	newAsker    = func() prompt.Asker { return prompt.NewTerminal() }
	newRunner   = defaultRunner
	newInit     = sysinit.New
	verifyMount = mount.Verify
)

func settings() config.Settings {
	s, err := config.Get(viper.GetViper())
	if err != nil {
		exit.Error(reason.InternalConfig, "Invalid configuration", err)
	}
	return s
}

func defaultRunner(s config.Settings) command.Runner {
	if s.DryRun {
		return command.NewDryRunner()
	}
	return command.NewExecRunner()
}

// initManager connects to systemd, exiting when the host does not run it
func initManager(s config.Settings, r command.Runner) sysinit.Manager {
	backend := s.InitBackend
	if s.DryRun && backend == config.BackendDBus {
		klog.Infof("dry-run: using %s instead of %s", config.BackendSystemctl, backend)
		backend = config.BackendSystemctl
	}
	m, err := newInit(backend, r)
	if err != nil {
		if errors.Is(err, sysinit.ErrNotSystemd) {
			exit.Message(reason.SystemdUnavailable, "systemd is not running on this host")
		}
		exit.Error(reason.SystemdUnavailable, "Unable to connect to systemd", err)
	}
	klog.Infof("using %s to manage units", m.Name())
	return m
}

func installer(s config.Settings, r command.Runner, m sysinit.Manager) *mount.Installer {
	return &mount.Installer{
		Runner:         r,
		Init:           m,
		UnitDir:        s.UnitDir,
		CredentialsDir: s.CredentialsDir,
		DryRun:         s.DryRun,
	}
}

// ensureDeps installs cifs-utils with the package manager of the host
func ensureDeps(s config.Settings, r command.Runner) {
	register.Reg.SetStep(register.LocalOSRelease)
	osr, err := pkgmgr.ReadOsRelease(hostFs)
	if err != nil {
		klog.Warningf("unable to read os-release: %v", err)
	} else {
		out.Step(style.Provisioner, "Host OS: {{.os}}", out.V{"os": osr.String()})
	}

	register.Reg.SetStep(register.InstallingPackages)
	if s.SkipInstall {
		out.Infof("Skipping installation of {{.pkg}}", out.V{"pkg": pkgmgr.CIFSUtils})
		return
	}

	pm, err := pkgmgr.Detect(lookPath)
	if err != nil {
		names := []string{}
		for _, m := range pkgmgr.Managers {
			names = append(names, m.Name)
		}
		exit.Message(reason.HostPkgManager, "Unable to find a supported package manager (tried {{.managers}})", out.V{"managers": strings.Join(names, ", ")})
	}
	if !s.DryRun && pm.Installed(r, pkgmgr.CIFSUtils) {
		out.Step(style.Check, "{{.pkg}} is already installed", out.V{"pkg": pkgmgr.CIFSUtils})
	} else {
		out.Step(style.Installing, "Installing {{.pkg}} with {{.manager}} ...", out.V{"pkg": pkgmgr.CIFSUtils, "manager": pm.Name})
		if err := pm.Install(r, pkgmgr.CIFSUtils); err != nil {
			klog.Warningf("install %s: %v", pkgmgr.CIFSUtils, err)
			exit.Advice(reason.HostPkgInstall, "Failed to install {{.pkg}}: {{.error}}",
				"Run '{{.command}}' to see the full output of {{.manager}}, then run again with --skip-install.",
				out.V{"pkg": pkgmgr.CIFSUtils, "error": err, "command": pm.InstallCommand(pkgmgr.CIFSUtils), "manager": pm.Name})
		}
	}
	if !s.DryRun {
		checkCIFSVersion(r)
	}
}

// checkCIFSVersion warns about a mount.cifs too old for the vers= option
func checkCIFSVersion(r command.Runner) {
	v, err := pkgmgr.CIFSVersion(r)
	if err != nil {
		klog.Warningf("unable to determine mount.cifs version: %v", err)
		return
	}
	out.Infof("mount.cifs {{.version}}", out.V{"version": v.String()})
	if !pkgmgr.CIFSVersionSupported(v) {
		out.WarningT("mount.cifs {{.version}} may not support the vers= mount option", out.V{"version": v.String()})
	}
}

// addMountFlags registers the flags that pre-fill answers
func addMountFlags(cmd *cobra.Command, named bool) {
	f := cmd.Flags()
	f.String("share", "", "Remote share, e.g. //server/share")
	f.String("mount-point", "", "Absolute path the share is mounted at")
	f.String("username", "", "User to authenticate as")
	f.String("password-file", "", "File holding the password on its first line. The password may also be set through $CIFSMOUNT_PASSWORD")
	f.String("domain", "", "Domain or workgroup of the user")
	f.String(config.SMBVersion, "", "SMB protocol version (default from config, 3.0)")
	f.String(config.FileMode, "", "Mode of files in the mount (default from config, 0755)")
	f.String(config.DirMode, "", "Mode of directories in the mount (default from config, 0755)")
	f.String("uid", "", "Owner of the files in the mount (default $SUDO_UID or 0)")
	f.String("gid", "", "Group of the files in the mount (default $SUDO_GID or 0)")
	if named {
		f.String("name", "", "Name of the mount, used for the cifs-<name>.service unit")
		f.String("options", "", "Extra mount options, comma separated")
	}
}

// presets reads the answers given as flags
func presets(cmd *cobra.Command) mount.Config {
	get := func(name string) string {
		if cmd.Flags().Lookup(name) == nil {
			return ""
		}
		v, err := cmd.Flags().GetString(name)
		if err != nil {
			klog.Warningf("flag %s: %v", name, err)
		}
		return v
	}

	c := mount.Config{
		Name:       get("name"),
		Share:      get("share"),
		MountPoint: get("mount-point"),
		Username:   get("username"),
		Domain:     get("domain"),
		SMBVersion: get(config.SMBVersion),
		UID:        get("uid"),
		GID:        get("gid"),
		FileMode:   get(config.FileMode),
		DirMode:    get(config.DirMode),
		Options:    get("options"),
	}

	if pf := get("password-file"); pf != "" {
		pw, err := manifest.ReadPasswordFile(hostFs, pf)
		if err != nil {
			exit.Error(reason.InputInvalid, "Unable to read --password-file", err)
		}
		c.Password = pw
	} else {
		c.Password = viper.GetString(config.Password)
	}
	return c
}

// defaults are the configured fallbacks for settings the user leaves empty
func defaults(s config.Settings) mount.Config {
	return mount.Config{
		SMBVersion: s.SMBVersion,
		FileMode:   s.FileMode,
		DirMode:    s.DirMode,
	}
}

// collect gathers and validates one mount, exiting on bad or missing input
func collect(a prompt.Asker, req mount.Request) mount.Config {
	register.Reg.SetStep(register.CollectingInput)
	c, err := mount.Collect(a, req)
	if err != nil {
		if errors.Is(err, prompt.ErrNoInput) {
			exit.Message(reason.Interrupted, "Input ended before every answer was given")
		}
		exit.Message(reason.InputInvalid, "{{.error}}", out.V{"error": err})
	}
	return c
}

// checkConflict exits when c would take over another managed mount. A mount
// reconfigured in place keeps its wrapper service.
func checkConflict(s config.Settings, c mount.Config) mount.Config {
	entries, err := inventory.List(hostFs, s.UnitDir)
	if err != nil {
		exit.Error(reason.HostWriteFiles, "Unable to read the unit directory", err)
	}
	if err := inventory.CheckConflict(entries, c); err != nil {
		exit.Message(reason.InputNameConflict, "{{.error}}", out.V{"error": err, "name": c.Name})
	}
	return inventory.KeepWrapper(entries, c)
}

// installMount writes the files of c, starts its units and checks the share got mounted
func installMount(s config.Settings, inst *mount.Installer, c mount.Config) {
	register.Reg.SetStep(register.WritingFiles)
	if fi, err := hostFs.Stat(c.MountPoint); err == nil && !fi.IsDir() {
		exit.Message(reason.HostMountPoint, "{{.path}} exists and is not a directory", out.V{"path": c.MountPoint})
	}
	out.Step(style.Mounting, "Configuring {{.share}} at {{.mountpoint}}", out.V{"share": c.Share, "mountpoint": c.MountPoint})
	out.Infof("Mount options: {{.options}}", out.V{"options": mount.Options(c, c.CredentialsPath(s.CredentialsDir))})
	if err := inst.WriteFiles(c); err != nil {
		exit.Error(reason.HostWriteFiles, "Failed to write the files of "+c.Name, err)
	}

	register.Reg.SetStep(register.StartingUnits)
	if u, err := inst.StartUnits(c); err != nil {
		if u == "" {
			u = c.UnitName()
		}
		exit.Message(reason.SystemdUnit, "Failed to start {{.unit}}: {{.error}}", out.V{"unit": u, "error": err})
	}

	register.Reg.SetStep(register.Verifying)
	inst.ShowStatus(c)
	if s.DryRun {
		return
	}
	dev, err := verifyMount(c)
	if err != nil {
		out.WarnReason(reason.ShareNotMounted, "{{.share}} does not show up as mounted at {{.mountpoint}}", out.V{"share": c.Share, "mountpoint": c.MountPoint, "unit": c.UnitName()})
		return
	}
	out.Step(style.Check, "{{.device}} is mounted at {{.mountpoint}}", out.V{"device": dev, "mountpoint": c.MountPoint})
}

// findMount returns the managed mount matching key, exiting when there is none
func findMount(s config.Settings, key string) inventory.Entry {
	entries, err := inventory.List(hostFs, s.UnitDir)
	if err != nil {
		exit.Error(reason.InternalError, "Unable to read the unit directory", err)
	}
	e, err := inventory.Find(entries, key)
	if err != nil {
		exit.Message(reason.InputNotFound, "No mount managed by cifsmount matches {{.key}}", out.V{"key": key})
	}
	return e
}

// credentialsDir is where the credentials file of e lives
func credentialsDir(s config.Settings, e inventory.Entry) string {
	if e.Credentials != "" {
		return filepath.Dir(e.Credentials)
	}
	return s.CredentialsDir
}
