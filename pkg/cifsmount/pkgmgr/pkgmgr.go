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

// Package pkgmgr installs host packages with whichever package manager is present.
package pkgmgr

import (
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/command"
	"github.com/cifsmount/cifsmount/pkg/util/retry"
)

// CIFSUtils is the package providing mount.cifs
const CIFSUtils = "cifs-utils"

// ErrNoPackageManager is returned when none of the known package managers is installed
var ErrNoPackageManager = errors.New("no supported package manager found")

// Manager describes how to query and install packages with one package manager
type Manager struct {
	// Name is the binary looked up on PATH
	Name string
	// QueryArgs exits 0 when the package is installed. The package name is appended.
	QueryArgs []string
	// UpdateArgs refreshes package metadata before installing, if needed
	UpdateArgs []string
	// InstallArgs installs packages non-interactively. The package name is appended.
	InstallArgs []string
	// lockProne managers fail with "Could not get lock" while another instance runs
	lockProne bool
}

// Managers is the detection chain, in order of preference
var Managers = []Manager{
	{
		Name:        "apt-get",
		QueryArgs:   []string{"dpkg", "-s"},
		UpdateArgs:  []string{"env", "DEBIAN_FRONTEND=noninteractive", "apt-get", "update"},
		InstallArgs: []string{"env", "DEBIAN_FRONTEND=noninteractive", "apt-get", "install", "-y"},
		lockProne:   true,
	},
	{Name: "dnf", QueryArgs: []string{"rpm", "-q"}, InstallArgs: []string{"dnf", "install", "-y"}},
	{Name: "yum", QueryArgs: []string{"rpm", "-q"}, InstallArgs: []string{"yum", "install", "-y"}},
	{Name: "zypper", QueryArgs: []string{"rpm", "-q"}, InstallArgs: []string{"zypper", "--non-interactive", "install"}},
	{Name: "pacman", QueryArgs: []string{"pacman", "-Q"}, InstallArgs: []string{"pacman", "-S", "--noconfirm", "--needed"}},
	{Name: "apk", QueryArgs: []string{"apk", "info", "-e"}, InstallArgs: []string{"apk", "add", "--no-cache"}},
}

// LockTimeout bounds how long an install waits for a busy package database
var LockTimeout = 2 * time.Minute

// Detect returns the first package manager found by lookPath
func Detect(lookPath func(string) (string, error)) (*Manager, error) {
	for i := range Managers {
		m := Managers[i]
		p, err := lookPath(m.Name)
		if err != nil {
			klog.V(2).Infof("%s not found: %v", m.Name, err)
			continue
		}
		klog.Infof("detected package manager %s at %s", m.Name, p)
		return &m, nil
	}
	return nil, ErrNoPackageManager
}

// Installed reports whether pkg is already installed
func (m *Manager) Installed(r command.Runner, pkg string) bool {
	_, err := r.RunCmd(cmd(m.QueryArgs, pkg)())
	return err == nil
}

// Install refreshes metadata if needed, then installs pkg
func (m *Manager) Install(r command.Runner, pkg string) error {
	if len(m.UpdateArgs) > 0 {
		if err := m.waitForLock(r, cmd(m.UpdateArgs)); err != nil {
			return err
		}
	}
	return m.waitForLock(r, cmd(m.InstallArgs, pkg))
}

// InstallCommand is the command line Install runs for pkg
func (m *Manager) InstallCommand(pkg string) string {
	return strings.Join(append(append([]string{}, m.InstallArgs...), pkg), " ")
}

// waitForLock retries c while the package database is locked by another process
func (m *Manager) waitForLock(r command.Runner, c func() *exec.Cmd) error {
	run := func() error {
		_, err := r.RunCmd(c())
		if err == nil {
			return nil
		}
		if m.lockProne && strings.Contains(err.Error(), "Could not get lock") {
			return err
		}
		return retry.Permanent(err)
	}
	if err := retry.Expo(run, time.Second, LockTimeout); err != nil {
		return errors.Wrapf(err, "%s", m.Name)
	}
	return nil
}

// cmd returns a constructor, as an exec.Cmd cannot be run twice
func cmd(base []string, args ...string) func() *exec.Cmd {
	all := append(append([]string{}, base...), args...)
	return func() *exec.Cmd {
		return exec.Command(all[0], all[1:]...)
	}
}
