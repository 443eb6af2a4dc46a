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

package exit

import (
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/out"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/reason"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/tests"
)

func captureExit(t *testing.T) *int {
	t.Helper()
	code := -1
	orig := exit
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = orig })
	return &code
}

func TestMessageUsesKindExitCode(t *testing.T) {
	t.Setenv(out.OverrideEnv, "0")
	f := tests.NewFakeFile()
	out.SetErrFile(f)
	code := captureExit(t)

	Message(reason.HostRootRequired, "cifsmount must run as root")

	if *code != reason.ExHostPermission {
		t.Errorf("exit code = %d, want %d", *code, reason.ExHostPermission)
	}
	got := f.String()
	if !strings.Contains(got, "Exiting due to HOST_ROOT_REQUIRED: cifsmount must run as root") {
		t.Errorf("unexpected output: %q", got)
	}
	if !strings.Contains(got, "Suggestion: Run the command again with sudo") {
		t.Errorf("advice missing from output: %q", got)
	}
}

func TestErrorWrapsCause(t *testing.T) {
	t.Setenv(out.OverrideEnv, "0")
	f := tests.NewFakeFile()
	out.SetErrFile(f)
	code := captureExit(t)

	err := errors.Wrap(errors.New("exit status 1"), "systemctl enable --now mnt-data.mount")
	Error(reason.SystemdUnit, "enabling units", err)

	if *code != reason.ExSystemdError {
		t.Errorf("exit code = %d, want %d", *code, reason.ExSystemdError)
	}
	if got := f.String(); !strings.Contains(got, "enabling units: systemctl enable --now mnt-data.mount: exit status 1") {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestMessageDefaults(t *testing.T) {
	t.Setenv(out.OverrideEnv, "0")
	f := tests.NewFakeFile()
	out.SetErrFile(f)
	code := captureExit(t)

	Message(reason.Kind{ID: "SOMETHING"}, "went wrong")

	if *code != reason.ExFailure {
		t.Errorf("exit code = %d, want %d", *code, reason.ExFailure)
	}
	if got := f.String(); !strings.Contains(got, "X Exiting due to SOMETHING: went wrong") {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestAdviceReplacesKindAdvice(t *testing.T) {
	t.Setenv(out.OverrideEnv, "0")
	f := tests.NewFakeFile()
	out.SetErrFile(f)
	code := captureExit(t)

	Advice(reason.HostPkgInstall, "Failed to install {{.pkg}}", "Run '{{.command}}' by hand.",
		out.V{"pkg": "cifs-utils", "command": "dnf install -y cifs-utils"})

	if *code != reason.HostPkgInstall.ExitCode {
		t.Errorf("exit code = %d, want %d", *code, reason.HostPkgInstall.ExitCode)
	}
	got := f.String()
	if !strings.Contains(got, "Exiting due to HOST_PKG_INSTALL: Failed to install cifs-utils") {
		t.Errorf("unexpected output: %q", got)
	}
	if !strings.Contains(got, "Suggestion: Run 'dnf install -y cifs-utils' by hand.") {
		t.Errorf("advice missing from output: %q", got)
	}
}
