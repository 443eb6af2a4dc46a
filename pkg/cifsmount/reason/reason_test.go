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

package reason

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIssueURLs(t *testing.T) {
	k := Kind{ID: "TEST", Issues: []int{12, 345}}
	want := []string{
		"https://github.com/cifsmount/cifsmount/issues/12",
		"https://github.com/cifsmount/cifsmount/issues/345",
	}
	if diff := cmp.Diff(want, k.IssueURLs()); diff != "" {
		t.Errorf("IssueURLs() diff (-want +got):\n%s", diff)
	}
}

func TestUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range []Kind{
		Usage, InternalError, InternalConfig, Interrupted,
		HostRootRequired, HostPkgManager, HostPkgInstall, HostWriteFiles, HostMountPoint,
		InputInvalid, InputManifest, InputNotFound, InputNameConflict,
		SystemdUnavailable, SystemdUnit, ShareNotMounted,
	} {
		if seen[k.ID] {
			t.Errorf("duplicate reason ID %q", k.ID)
		}
		seen[k.ID] = true
		if k.ExitCode == 0 {
			t.Errorf("%s has no exit code", k.ID)
		}
	}
}
