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

package command

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/assets"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/tests"
)

func TestDryRunner(t *testing.T) {
	t.Setenv(out.OverrideEnv, "0")
	f := tests.NewFakeFile()
	out.SetOutFile(f)

	r := NewDryRunner()
	if _, err := r.RunCmd(exec.Command("systemctl", "enable", "--now", "mnt-data.mount")); err != nil {
		t.Fatal(err)
	}
	if err := r.Copy(assets.NewMemoryAssetTarget([]byte("[Mount]\nType=cifs\n"), "/etc/systemd/system/mnt-data.mount", "0644")); err != nil {
		t.Fatal(err)
	}
	if err := r.Copy(assets.NewSecretAssetTarget([]byte("password=hunter2\n"), "/etc/cifsmount/credentials/mnt-data.cred", "0600")); err != nil {
		t.Fatal(err)
	}
	if err := r.Remove(assets.NewMemoryAssetTarget(nil, "/etc/systemd/system/old.mount", "0644")); err != nil {
		t.Fatal(err)
	}

	got := f.String()
	for _, want := range []string{
		"Would run: systemctl enable --now mnt-data.mount",
		"Would write /etc/systemd/system/mnt-data.mount (mode 0644, 18 bytes)",
		"Type=cifs",
		"Would write /etc/cifsmount/credentials/mnt-data.cred (mode 0600, 17 bytes)",
		"contents hidden",
		"Would remove /etc/systemd/system/old.mount",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "hunter2") {
		t.Errorf("dry run printed a secret:\n%s", got)
	}
}
