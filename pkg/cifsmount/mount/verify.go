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
	"path"
	"time"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/disk"
	"k8s.io/klog/v2"

	"github.com/cifsmount/cifsmount/pkg/util/retry"
)

// cifsTypes are the filesystem types the kernel reports for CIFS mounts
var cifsTypes = map[string]bool{"cifs": true, "smb3": true}

// partitions lists the kernel mount table, replaced in tests
var partitions = disk.Partitions

// cifsFilesystem double checks a mount table hit against the filesystem itself
var cifsFilesystem = statfsCIFS

// VerifyTimeout bounds how long Verify waits for the share to appear
var VerifyTimeout = 10 * time.Second

// ErrNotMounted is returned when no CIFS filesystem is mounted at the mount point
var ErrNotMounted = errors.New("share is not mounted")

// Mounted reports the device mounted at mp, if it is a CIFS filesystem
func Mounted(mp string) (string, bool, error) {
	ps, err := partitions(true)
	if err != nil {
		return "", false, errors.Wrap(err, "list partitions")
	}
	want := path.Clean(mp)
	for _, p := range ps {
		if path.Clean(p.Mountpoint) == want && cifsTypes[p.Fstype] {
			return p.Device, true, nil
		}
	}
	return "", false, nil
}

// Verify waits briefly for a CIFS filesystem to show up at the mount point of c
func Verify(c Config) (string, error) {
	var dev string
	check := func() error {
		d, ok, err := Mounted(c.MountPoint)
		if err != nil {
			return retry.Permanent(err)
		}
		if !ok {
			return ErrNotMounted
		}
		if isCIFS, err := cifsFilesystem(c.MountPoint); err != nil || !isCIFS {
			klog.Infof("%s is listed as %s but statfs disagrees: %v", c.MountPoint, d, err)
			return ErrNotMounted
		}
		dev = d
		return nil
	}
	if err := retry.Local(check, VerifyTimeout); err != nil {
		klog.Infof("verify %s: %v", c.MountPoint, err)
		return "", err
	}
	return dev, nil
}
