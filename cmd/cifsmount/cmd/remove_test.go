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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRemove(t *testing.T) {
	r, stdout := fakeHost(t, "")
	writeManagedMount(t, "media", "//nas/media", "/srv/media")
	r.SetFileToContents(map[string]string{
		"/etc/cifsmount/credentials/media.cred":  "username=alice\npassword=pw\n",
		"/etc/systemd/system/srv-media.mount":    "",
		"/etc/systemd/system/cifs-media.service": "",
	})
	r.SetCommandToOutput(map[string]string{
		"systemctl disable --now cifs-media.service": "",
		"systemctl disable --now srv-media.mount":    "",
		"systemctl daemon-reload":                    "",
	})
	setFlags(t, removeCmd, map[string]string{"yes": "true"})

	removeCmd.Run(removeCmd, []string{"/srv/media"})

	if files := r.Files(); len(files) != 0 {
		t.Errorf("files left behind: %v", files)
	}
	want := []string{
		"systemctl --version",
		"systemctl disable --now cifs-media.service",
		"systemctl disable --now srv-media.mount",
		"systemctl daemon-reload",
	}
	if diff := cmp.Diff(want, r.Ran()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(stdout.String(), "Removed media") {
		t.Errorf("unexpected output:\n%s", stdout.String())
	}
}

func TestRemoveDeclined(t *testing.T) {
	r, stdout := fakeHost(t, "n\n")
	writeManagedMount(t, "media", "//nas/media", "/srv/media")

	removeCmd.Run(removeCmd, []string{"media"})

	if got := r.Ran(); len(got) != 0 {
		t.Errorf("declined removal ran %v", got)
	}
	if !strings.Contains(stdout.String(), "Leaving media in place") {
		t.Errorf("unexpected output:\n%s", stdout.String())
	}
}
