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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/command"
)

func TestNewSystemctl(t *testing.T) {
	r := command.NewFakeCommandRunner()
	r.SetCommandToOutput(map[string]string{"systemctl --version": "systemd 252"})

	m, err := New("systemctl", r)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.Name() != "systemd" {
		t.Errorf("Name() = %q", m.Name())
	}
}

func TestNewWithoutSystemd(t *testing.T) {
	r := command.NewFakeCommandRunner()
	r.SetCommandToError(map[string]string{"systemctl --version": "executable file not found in $PATH"})

	if _, err := New("systemctl", r); err != ErrNotSystemd {
		t.Errorf("New() error = %v, want ErrNotSystemd", err)
	}
}

func TestNewUnknownBackend(t *testing.T) {
	if _, err := New("upstart", command.NewFakeCommandRunner()); err == nil {
		t.Error("New(upstart) succeeded, want error")
	}
}

func TestSystemdCommands(t *testing.T) {
	r := command.NewFakeCommandRunner()
	unit := "mnt-data.mount"
	r.SetCommandToOutput(map[string]string{
		"systemctl daemon-reload":                           "",
		"systemctl enable --now mnt-data.mount":             "",
		"systemctl disable --now mnt-data.mount":            "",
		"systemctl enable mnt-data.mount":                   "",
		"systemctl disable mnt-data.mount":                  "",
		"systemctl start mnt-data.mount":                    "",
		"systemctl stop mnt-data.mount":                     "",
		"systemctl restart mnt-data.mount":                  "",
		"systemctl is-active --quiet mnt-data.mount":        "",
		"systemctl status --no-pager --full mnt-data.mount": "● mnt-data.mount - CIFS share //nas/data\n     Active: active (mounted)\n",
	})
	s := &Systemd{r: r}

	for name, fn := range map[string]func(string) error{
		"Enable": s.Enable, "EnableNow": s.EnableNow, "Disable": s.Disable, "DisableNow": s.DisableNow,
		"Start": s.Start, "Stop": s.Stop, "Restart": s.Restart,
	} {
		if err := fn(unit); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if err := s.DaemonReload(); err != nil {
		t.Errorf("DaemonReload: %v", err)
	}
	if !s.Active(unit) {
		t.Error("Active() = false")
	}
	st, err := s.Status(unit)
	if err != nil {
		t.Errorf("Status: %v", err)
	}
	if !strings.Contains(st, "active (mounted)") {
		t.Errorf("Status() = %q", st)
	}
}

func TestSystemdStatusInactive(t *testing.T) {
	r := command.NewFakeCommandRunner()
	r.SetCommandToError(map[string]string{
		"systemctl status --no-pager --full mnt-data.mount": "exit status 3",
		"systemctl is-active --quiet mnt-data.mount":        "exit status 3",
	})
	s := &Systemd{r: r}

	if s.Active("mnt-data.mount") {
		t.Error("Active() = true for an inactive unit")
	}
	if _, err := s.Status("mnt-data.mount"); err == nil {
		t.Error("Status() error = nil for an inactive unit")
	}

	want := []string{
		"systemctl is-active --quiet mnt-data.mount",
		"systemctl status --no-pager --full mnt-data.mount",
	}
	if diff := cmp.Diff(want, r.Ran()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}
