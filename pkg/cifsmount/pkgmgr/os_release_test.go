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
	"reflect"
	"testing"

	"github.com/spf13/afero"
)

func TestParseOsRelease(t *testing.T) {
	ubuntuRelease := []byte(`NAME="Ubuntu"
VERSION="24.04.1 LTS (Noble Numbat)"
ID=ubuntu
ID_LIKE=debian
PRETTY_NAME="Ubuntu 24.04.1 LTS"
VERSION_ID="24.04"
HOME_URL="https://www.ubuntu.com/"
SUPPORT_URL="https://help.ubuntu.com/"
`)
	alpineRelease := []byte(`# comment
NAME="Alpine Linux"
ID=alpine
VERSION_ID=3.20.3
PRETTY_NAME='Alpine Linux v3.20'
garbage line
`)

	tests := []struct {
		name     string
		contents []byte
		want     OsRelease
	}{
		{
			name:     "ubuntu",
			contents: ubuntuRelease,
			want: OsRelease{
				Name:       "Ubuntu",
				Version:    "24.04.1 LTS (Noble Numbat)",
				ID:         "ubuntu",
				IDLike:     "debian",
				PrettyName: "Ubuntu 24.04.1 LTS",
				VersionID:  "24.04",
				HomeURL:    "https://www.ubuntu.com/",
			},
		},
		{
			name:     "alpine with comments and bad lines",
			contents: alpineRelease,
			want: OsRelease{
				Name:       "Alpine Linux",
				ID:         "alpine",
				VersionID:  "3.20.3",
				PrettyName: "Alpine Linux v3.20",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			osr, err := NewOsRelease(tc.contents)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(*osr, tc.want) {
				t.Errorf("got %+v, want %+v", *osr, tc.want)
			}
		})
	}
}

func TestOsReleaseString(t *testing.T) {
	if got := (&OsRelease{Name: "Arch Linux"}).String(); got != "Arch Linux" {
		t.Errorf("String() = %q", got)
	}
	if got := (&OsRelease{}).String(); got != "unknown Linux" {
		t.Errorf("String() = %q", got)
	}
}

func TestReadOsRelease(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, err := ReadOsRelease(fs); err == nil {
		t.Fatal("expected an error without any os-release file")
	}

	if err := afero.WriteFile(fs, "/usr/lib/os-release", []byte("ID=fedora\nNAME=Fedora\n"), 0644); err != nil {
		t.Fatal(err)
	}
	osr, err := ReadOsRelease(fs)
	if err != nil {
		t.Fatalf("ReadOsRelease: %v", err)
	}
	if osr.ID != "fedora" {
		t.Errorf("ID = %q, want fedora", osr.ID)
	}

	if err := afero.WriteFile(fs, "/etc/os-release", []byte("ID=debian\n"), 0644); err != nil {
		t.Fatal(err)
	}
	osr, err = ReadOsRelease(fs)
	if err != nil {
		t.Fatalf("ReadOsRelease: %v", err)
	}
	if osr.ID != "debian" {
		t.Errorf("/etc/os-release should take precedence, got ID %q", osr.ID)
	}
}
