//go:build linux && (amd64 || arm64)

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

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

func TestStatfsCIFS(t *testing.T) {
	tests := []struct {
		name  string
		magic int64
		err   error
		want  bool
	}{
		{"cifs", cifsSuperMagic, nil, true},
		{"smb2", smb2SuperMagic, nil, true},
		{"ext4", 0xEF53, nil, false},
		{"missing", 0, errors.New("no such file or directory"), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			orig := statfs
			statfs = func(path string, st *unix.Statfs_t) error {
				st.Type = tc.magic
				return tc.err
			}
			defer func() { statfs = orig }()

			got, err := statfsCIFS("/srv/media")
			if (err != nil) != (tc.err != nil) {
				t.Fatalf("statfsCIFS() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("statfsCIFS() = %v, want %v", got, tc.want)
			}
		})
	}
}
