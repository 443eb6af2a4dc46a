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

package pkgmgr

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/command"
)

func lookPathFor(present ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, p := range present {
			if p == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		present []string
		want    string
	}{
		{[]string{"apt-get"}, "apt-get"},
		{[]string{"yum", "dnf"}, "dnf"},
		{[]string{"yum"}, "yum"},
		{[]string{"zypper"}, "zypper"},
		{[]string{"pacman"}, "pacman"},
		{[]string{"apk", "pacman"}, "pacman"},
		{[]string{"apk"}, "apk"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			m, err := Detect(lookPathFor(tc.present...))
			if err != nil {
				t.Fatalf("Detect: %v", err)
			}
			if m.Name != tc.want {
				t.Errorf("Detect() = %s, want %s", m.Name, tc.want)
			}
		})
	}

	if _, err := Detect(lookPathFor("brew")); !errors.Is(err, ErrNoPackageManager) {
		t.Errorf("expected ErrNoPackageManager, got %v", err)
	}
}

func TestInstalled(t *testing.T) {
	m, _ := Detect(lookPathFor("dnf"))
	r := command.NewFakeCommandRunner()
	r.SetCommandToOutput(map[string]string{"rpm -q cifs-utils": "cifs-utils-7.0-5.fc40.x86_64"})
	if !m.Installed(r, CIFSUtils) {
		t.Error("expected cifs-utils to be reported installed")
	}
	if m.Installed(r, "samba-client") {
		t.Error("expected samba-client to be reported missing")
	}
}

func TestInstallApt(t *testing.T) {
	m, _ := Detect(lookPathFor("apt-get"))
	r := command.NewFakeCommandRunner()
	r.SetCommandToOutput(map[string]string{
		"env DEBIAN_FRONTEND=noninteractive apt-get update":                "",
		"env DEBIAN_FRONTEND=noninteractive apt-get install -y cifs-utils": "",
	})
	if err := m.Install(r, CIFSUtils); err != nil {
		t.Fatalf("Install: %v", err)
	}
	want := []string{
		"env DEBIAN_FRONTEND=noninteractive apt-get update",
		"env DEBIAN_FRONTEND=noninteractive apt-get install -y cifs-utils",
	}
	if diff := cmp.Diff(want, r.Ran()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestInstallFailsFast(t *testing.T) {
	m, _ := Detect(lookPathFor("pacman"))
	r := command.NewFakeCommandRunner()
	r.SetCommandToError(map[string]string{
		"pacman -S --noconfirm --needed cifs-utils": "error: target not found: cifs-utils",
	})
	if err := m.Install(r, CIFSUtils); err == nil {
		t.Fatal("expected an error")
	}
	if got := len(r.Ran()); got != 1 {
		t.Errorf("a permanent failure should not be retried, ran %d times", got)
	}
}

func TestInstallLocked(t *testing.T) {
	defer func(d time.Duration) { LockTimeout = d }(LockTimeout)
	LockTimeout = 10 * time.Millisecond

	m, _ := Detect(lookPathFor("apt-get"))
	r := command.NewFakeCommandRunner()
	r.SetCommandToError(map[string]string{
		"env DEBIAN_FRONTEND=noninteractive apt-get update": "E: Could not get lock /var/lib/apt/lists/lock",
	})
	if err := m.Install(r, CIFSUtils); err == nil {
		t.Fatal("expected the lock error to surface after the timeout")
	}
	for _, c := range r.Ran() {
		if c == "env DEBIAN_FRONTEND=noninteractive apt-get install -y cifs-utils" {
			t.Error("install must not run while update keeps failing")
		}
	}
}

func TestInstallCommand(t *testing.T) {
	want := map[string]string{
		"apt-get": "env DEBIAN_FRONTEND=noninteractive apt-get install -y cifs-utils",
		"zypper":  "zypper --non-interactive install cifs-utils",
		"apk":     "apk add --no-cache cifs-utils",
	}
	for _, m := range Managers {
		w, ok := want[m.Name]
		if !ok {
			continue
		}
		if got := m.InstallCommand(CIFSUtils); got != w {
			t.Errorf("%s InstallCommand() = %q, want %q", m.Name, got, w)
		}
	}
}
