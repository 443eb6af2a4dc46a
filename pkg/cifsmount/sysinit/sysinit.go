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

// Package sysinit provides an abstraction over the systemd init system
package sysinit

import (
	"os/exec"

	"github.com/pkg/errors"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/command"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/config"
)

// ErrNotSystemd is returned when the host is not managed by systemd
var ErrNotSystemd = errors.New("systemd is not running on this host")

// Runner is the subset of command.Runner this package consumes
type Runner interface {
	RunCmd(cmd *exec.Cmd) (*command.RunResult, error)
}

// Manager is a common interface for the ways of talking to systemd
type Manager interface {
	// Name returns the name of the init manager
	Name() string

	// Active returns if a unit is active
	Active(string) bool

	// DaemonReload makes systemd re-read the unit files on disk
	DaemonReload() error

	// Enable enables a unit
	Enable(string) error

	// EnableNow enables a unit and starts it right after.
	EnableNow(string) error

	// Disable disables a unit
	Disable(string) error

	// DisableNow disables a unit and stops it right after.
	DisableNow(string) error

	// Start starts a unit
	Start(string) error

	// Stop stops a unit
	Stop(string) error

	// Restart restarts a unit
	Restart(string) error

	// Status returns a human readable status report of a unit
	Status(string) (string, error)
}

// New returns the manager for the requested backend, after checking that systemd is present
func New(backend string, r Runner) (Manager, error) {
	switch backend {
	case config.BackendDBus:
		d, err := NewDBus()
		if err != nil {
			return nil, err
		}
		return d, nil
	case config.BackendSystemctl, "":
		if !usesSystemd(r) {
			return nil, ErrNotSystemd
		}
		return &Systemd{r: r}, nil
	default:
		return nil, errors.Errorf("unknown init backend %q", backend)
	}
}

func usesSystemd(r Runner) bool {
	_, err := r.RunCmd(exec.Command("systemctl", "--version"))
	return err == nil
}
