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
	"io"
	"os"
	"os/exec"
	"path"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/command"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/config"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/mount"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out/register"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/prompt"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/sysinit"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/tests"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/unit"
)

const (
	testUnitDir = "/etc/systemd/system"
	testCredDir = "/etc/cifsmount/credentials"
)

// fakeHost swaps every host facing hook for a fake and returns the fake
// runner together with the captured stdout.
func fakeHost(t *testing.T, input string) (*command.FakeCommandRunner, *tests.FakeFile) {
	t.Helper()

	t.Setenv(out.OverrideEnv, "0")
	t.Setenv("SUDO_UID", "")
	t.Setenv("SUDO_GID", "")
	stdout := tests.NewFakeFile()
	out.SetOutFile(stdout)
	out.SetErrFile(tests.NewFakeFile())
	out.SetJSON(false)
	register.Reg.Reset()

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/etc/os-release", []byte("PRETTY_NAME=\"Debian GNU/Linux 12 (bookworm)\"\nID=debian\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r := command.NewFakeCommandRunner()
	r.SetCommandToOutput(map[string]string{"systemctl --version": "systemd 252 (252.30-1)"})

	oldFs, oldLook, oldAsker, oldRunner, oldInit, oldVerify, oldEuid := hostFs, lookPath, newAsker, newRunner, newInit, verifyMount, geteuid
	hostFs = fs
	lookPath = func(name string) (string, error) {
		if name == "apt-get" {
			return "/usr/bin/apt-get", nil
		}
		return "", exec.ErrNotFound
	}
	asker := prompt.New(strings.NewReader(input), io.Discard)
	newAsker = func() prompt.Asker { return asker }
	newRunner = func(config.Settings) command.Runner { return r }
	newInit = sysinit.New
	verifyMount = func(c mount.Config) (string, error) { return c.Share, nil }
	geteuid = func() int { return 0 }

	resetViper()
	viper.Set(config.UnitDir, testUnitDir)
	viper.Set(config.CredentialsDir, testCredDir)
	viper.Set(config.SkipAudit, true)

	t.Cleanup(func() {
		hostFs, lookPath, newAsker, newRunner, newInit, verifyMount, geteuid = oldFs, oldLook, oldAsker, oldRunner, oldInit, oldVerify, oldEuid
		resetViper()
		register.Reg.Reset()
	})
	return r, stdout
}

func resetViper() {
	viper.Reset()
	config.SetDefaults(viper.GetViper())
	config.BindEnv(viper.GetViper())
}

// setFlags sets flags on cmd for the duration of the test
func setFlags(t *testing.T, cmd *cobra.Command, flags map[string]string) {
	t.Helper()
	for k, v := range flags {
		if err := cmd.Flags().Set(k, v); err != nil {
			t.Fatalf("set --%s: %v", k, err)
		}
	}
	t.Cleanup(func() {
		for k := range flags {
			f := cmd.Flags().Lookup(k)
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
}

// writeManagedMount places the unit files of a named mount in the fake unit directory
func writeManagedMount(t *testing.T, name, share, where string) {
	t.Helper()
	cred := path.Join(testCredDir, name+".cred")
	mu, err := unit.RenderMount(unit.Mount{Name: name, What: share, Where: where, Options: "credentials=" + cred, Credentials: cred})
	if err != nil {
		t.Fatal(err)
	}
	wu, err := unit.RenderWrapper(unit.Wrapper{Name: name, What: share, Where: where})
	if err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(hostFs, path.Join(testUnitDir, unit.MountName(where)), mu, 0644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(hostFs, path.Join(testUnitDir, unit.WrapperName(name)), wu, 0644); err != nil {
		t.Fatal(err)
	}
}

// withArgs runs f with os.Args set to args
func withArgs(t *testing.T, args []string, f func()) {
	t.Helper()
	old := os.Args
	defer func() { os.Args = old }()
	os.Args = args
	f()
}
