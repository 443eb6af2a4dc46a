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
	"time"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/disk"
)

func fakePartitions(t *testing.T, ps []disk.PartitionStat, err error) {
	t.Helper()
	orig, origFs := partitions, cifsFilesystem
	partitions = func(bool) ([]disk.PartitionStat, error) { return ps, err }
	cifsFilesystem = func(string) (bool, error) { return true, nil }
	t.Cleanup(func() { partitions, cifsFilesystem = orig, origFs })
}

func TestMounted(t *testing.T) {
	fakePartitions(t, []disk.PartitionStat{
		{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"},
		{Device: "//nas/media", Mountpoint: "/srv/media", Fstype: "cifs"},
		{Device: "//nas/data", Mountpoint: "/mnt/data", Fstype: "smb3"},
		{Device: "nas:/export", Mountpoint: "/mnt/nfs", Fstype: "nfs4"},
	}, nil)

	tests := []struct {
		mp      string
		wantDev string
		wantOK  bool
	}{
		{"/srv/media", "//nas/media", true},
		{"/srv/media/", "//nas/media", true},
		{"/mnt/data", "//nas/data", true},
		{"/mnt/nfs", "", false},
		{"/mnt/none", "", false},
	}
	for _, tc := range tests {
		dev, ok, err := Mounted(tc.mp)
		if err != nil {
			t.Fatal(err)
		}
		if dev != tc.wantDev || ok != tc.wantOK {
			t.Errorf("Mounted(%q) = %q, %v; want %q, %v", tc.mp, dev, ok, tc.wantDev, tc.wantOK)
		}
	}
}

func TestVerify(t *testing.T) {
	fakePartitions(t, []disk.PartitionStat{{Device: "//nas/media", Mountpoint: "/srv/media", Fstype: "cifs"}}, nil)
	dev, err := Verify(Config{MountPoint: "/srv/media"})
	if err != nil {
		t.Fatal(err)
	}
	if dev != "//nas/media" {
		t.Errorf("Verify() = %q", dev)
	}
}

func TestVerifyTimesOut(t *testing.T) {
	fakePartitions(t, nil, nil)
	orig := VerifyTimeout
	VerifyTimeout = 300 * time.Millisecond
	t.Cleanup(func() { VerifyTimeout = orig })

	if _, err := Verify(Config{MountPoint: "/srv/media"}); err != ErrNotMounted {
		t.Errorf("Verify() = %v, want ErrNotMounted", err)
	}
}

func TestVerifyPartitionError(t *testing.T) {
	fakePartitions(t, nil, errors.New("permission denied"))
	start := time.Now()
	if _, err := Verify(Config{MountPoint: "/srv/media"}); err == nil {
		t.Fatal("Verify() = nil, want error")
	}
	if time.Since(start) > 5*time.Second {
		t.Error("a permanent error was retried")
	}
}

func TestVerifyStatfsDisagrees(t *testing.T) {
	fakePartitions(t, []disk.PartitionStat{{Device: "//nas/media", Mountpoint: "/srv/media", Fstype: "cifs"}}, nil)
	cifsFilesystem = func(string) (bool, error) { return false, nil }
	orig := VerifyTimeout
	VerifyTimeout = 300 * time.Millisecond
	t.Cleanup(func() { VerifyTimeout = orig })

	if _, err := Verify(Config{MountPoint: "/srv/media"}); err != ErrNotMounted {
		t.Errorf("Verify() = %v, want ErrNotMounted", err)
	}
}
