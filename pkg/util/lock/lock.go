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

// Package lock serializes writes to files shared between cifsmount processes.
package lock

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"os"
	"time"

	"github.com/juju/clock"
	"github.com/juju/mutex/v2"
	"github.com/natefinch/atomic"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// WriteFile decorates an atomic file write with a machine-wide file lock.
// The file is written to a temporary sibling and renamed into place, so readers
// never observe a partial unit or credentials file.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	spec := PathMutexSpec(filename)
	klog.Infof("WriteFile acquiring %s: %+v", filename, spec)
	releaser, err := mutex.Acquire(spec)
	if err != nil {
		return errors.Wrapf(err, "failed to acquire lock for %s: %+v", filename, spec)
	}
	defer releaser.Release()

	if err := atomic.WriteFile(filename, bytes.NewReader(data)); err != nil {
		return errors.Wrapf(err, "error writing file %s", filename)
	}
	// the temporary file is created 0600, an existing target keeps its old mode
	if err := os.Chmod(filename, perm); err != nil {
		return errors.Wrapf(err, "chmod %s", filename)
	}
	return nil
}

// PathMutexSpec returns a mutex spec for a path
func PathMutexSpec(path string) mutex.Spec {
	s := mutex.Spec{
		Name:    fmt.Sprintf("cm%x", sha1.Sum([]byte(path)))[0:40],
		Clock:   clock.WallClock,
		Delay:   250 * time.Millisecond,
		Timeout: 5 * time.Minute,
	}
	return s
}
