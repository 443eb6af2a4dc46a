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

package sysinit

import (
	"os/exec"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Systemd is a service manager for systemd distributions, driven through systemctl
type Systemd struct {
	r Runner
}

// Name returns the name of the init system
func (s *Systemd) Name() string {
	return "systemd"
}

// DaemonReload reloads systemd configuration
func (s *Systemd) DaemonReload() error {
	_, err := s.r.RunCmd(exec.Command("systemctl", "daemon-reload"))
	return err
}

// Active checks if a unit is running
func (s *Systemd) Active(svc string) bool {
	_, err := s.r.RunCmd(exec.Command("systemctl", "is-active", "--quiet", svc))
	return err == nil
}

// Disable disables a unit
func (s *Systemd) Disable(svc string) error {
	_, err := s.r.RunCmd(exec.Command("systemctl", "disable", svc))
	return err
}

// DisableNow disables a unit and stops it too (not waiting for next restart)
func (s *Systemd) DisableNow(svc string) error {
	_, err := s.r.RunCmd(exec.Command("systemctl", "disable", "--now", svc))
	return err
}

// Enable enables a unit
func (s *Systemd) Enable(svc string) error {
	_, err := s.r.RunCmd(exec.Command("systemctl", "enable", svc))
	return err
}

// EnableNow enables a unit and starts it too (not waiting for next restart)
func (s *Systemd) EnableNow(svc string) error {
	_, err := s.r.RunCmd(exec.Command("systemctl", "enable", "--now", svc))
	return err
}

// Start starts a unit
func (s *Systemd) Start(svc string) error {
	_, err := s.r.RunCmd(exec.Command("systemctl", "start", svc))
	return err
}

// Restart restarts a unit
func (s *Systemd) Restart(svc string) error {
	_, err := s.r.RunCmd(exec.Command("systemctl", "restart", svc))
	return err
}

// Stop stops a unit
func (s *Systemd) Stop(svc string) error {
	_, err := s.r.RunCmd(exec.Command("systemctl", "stop", svc))
	return err
}

// Status returns the output of systemctl status. An inactive unit makes
// systemctl exit non-zero, so output is returned alongside the error.
func (s *Systemd) Status(svc string) (string, error) {
	rr, err := s.r.RunCmd(exec.Command("systemctl", "status", "--no-pager", "--full", svc))
	if rr == nil {
		return "", err
	}
	if err != nil {
		klog.Infof("status of %s: %v", svc, err)
		return rr.Stdout.String(), errors.Errorf("%s is not running (exit code %d)", svc, rr.ExitCode)
	}
	return rr.Stdout.String(), nil
}
