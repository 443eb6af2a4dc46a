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
	goflag "flag"
	"testing"
)

func TestMutatingCommandsRequireRoot(t *testing.T) {
	for _, c := range RootCmd.Commands() {
		want := map[string]bool{
			"setup":        true,
			"add":          true,
			"apply":        true,
			"remove":       true,
			"install-deps": true,
		}[c.Name()]
		got := c.Annotations[rootAnnotation] != ""
		if got != want {
			t.Errorf("%s requires root = %v, want %v", c.Name(), got, want)
		}
		if got && c.Annotations[stepAnnotation] == "" {
			t.Errorf("%s has no first step", c.Name())
		}
	}
}

func TestCheckRootDryRun(t *testing.T) {
	fakeHost(t, "")
	geteuid = func() int { return 1000 }
	s := settings()
	s.DryRun = true
	// must return rather than exit
	checkRoot(setupCmd, s)
}

func TestAuditArgs(t *testing.T) {
	tests := []struct {
		args []string
		want int
	}{
		{[]string{"cifsmount"}, 0},
		{[]string{"cifsmount", "setup"}, 0},
		{[]string{"cifsmount", "setup", "--share", "//nas/data"}, 2},
	}
	for _, tc := range tests {
		withArgs(t, tc.args, func() {
			if got := len(auditArgs()); got != tc.want {
				t.Errorf("auditArgs() for %v has %d args, want %d", tc.args, got, tc.want)
			}
		})
	}
}

func TestGoFlagsAddedAtExecute(t *testing.T) {
	if RootCmd.PersistentFlags().Lookup("v") != nil {
		t.Error("klog flags were registered during package init")
	}
	goflag.CommandLine.Int("cifsmount-test-level", 0, "")
	addGoFlags()
	if RootCmd.PersistentFlags().Lookup("cifsmount-test-level") == nil {
		t.Error("go flags are not exposed on the root command")
	}
}
