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

package mount

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		description string
		config      Config
		want        string
	}{
		{
			description: "defaults",
			config:      Config{SMBVersion: "3.0", FileMode: "0755", DirMode: "0755", UID: "0", GID: "0"},
			want:        "_netdev,credentials=/c/x.cred,dir_mode=0755,file_mode=0755,gid=0,iocharset=utf8,nofail,uid=0,vers=3.0",
		},
		{
			description: "default dialect omits vers",
			config:      Config{SMBVersion: "default", FileMode: "0644", DirMode: "0755"},
			want:        "_netdev,credentials=/c/x.cred,dir_mode=0755,file_mode=0644,iocharset=utf8,nofail",
		},
		{
			description: "extra options override and add",
			config:      Config{SMBVersion: "3.0", FileMode: "0755", DirMode: "0755", UID: "1000", GID: "100", Options: "vers=2.1,ro,cache=none"},
			want:        "_netdev,cache=none,credentials=/c/x.cred,dir_mode=0755,file_mode=0755,gid=100,iocharset=utf8,nofail,ro,uid=1000,vers=2.1",
		},
		{
			description: "systemd options pass through",
			config:      Config{SMBVersion: "3.0", FileMode: "0755", DirMode: "0755", Options: "x-systemd.automount,x-systemd.idle-timeout=60"},
			want:        "_netdev,credentials=/c/x.cred,dir_mode=0755,file_mode=0755,iocharset=utf8,nofail,vers=3.0,x-systemd.automount,x-systemd.idle-timeout=60",
		},
		{
			description: "credential keys are ignored",
			config:      Config{SMBVersion: "3.0", FileMode: "0755", DirMode: "0755", Options: "credentials=/tmp/evil,password=x"},
			want:        "_netdev,credentials=/c/x.cred,dir_mode=0755,file_mode=0755,iocharset=utf8,nofail,vers=3.0",
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			got := Options(tc.config, "/c/x.cred")
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Options() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseOptions(t *testing.T) {
	got := ParseOptions("ro, cache=loose,,actimeo=30,sec=ntlmssp=x")
	want := map[string]string{"ro": "", "cache": "loose", "actimeo": "30", "sec": "ntlmssp=x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseOptions() mismatch (-want +got):\n%s", diff)
	}
}
