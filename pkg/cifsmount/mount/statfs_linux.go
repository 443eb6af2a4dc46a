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
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Superblock magic numbers of the kernel smb/cifs client
const (
	smbSuperMagic  = 0x517B
	cifsSuperMagic = 0xFF534D42
	smb2SuperMagic = 0xFE534D42
)

var statfs = unix.Statfs

// statfsCIFS asks the kernel whether the filesystem at mp is a CIFS mount
func statfsCIFS(mp string) (bool, error) {
	var st unix.Statfs_t
	if err := statfs(mp, &st); err != nil {
		return false, errors.Wrapf(err, "statfs %s", mp)
	}
	switch uint32(st.Type) {
	case smbSuperMagic, cifsSuperMagic, smb2SuperMagic:
		return true, nil
	}
	return false, nil
}
