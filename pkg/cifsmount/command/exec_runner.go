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
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/assets"
	"github.com/cifsmount/cifsmount/pkg/util/lock"
)

// execRunner runs commands using the os/exec package.
//
// It implements the Runner interface.
type execRunner struct{}

// NewExecRunner returns a Runner which runs commands on the local host
func NewExecRunner() Runner {
	return &execRunner{}
}

// RunCmd implements the Command Runner interface to run a exec.Cmd object
func (*execRunner) RunCmd(cmd *exec.Cmd) (*RunResult, error) {
	rr := &RunResult{Args: cmd.Args}
	klog.Infof("Run: %v", rr.Command())

	var outb, errb io.Writer
	if cmd.Stdout == nil {
		var so bytes.Buffer
		outb = io.MultiWriter(&so, &rr.Stdout)
	} else {
		outb = io.MultiWriter(cmd.Stdout, &rr.Stdout)
	}

	if cmd.Stderr == nil {
		var se bytes.Buffer
		errb = io.MultiWriter(&se, &rr.Stderr)
	} else {
		errb = io.MultiWriter(cmd.Stderr, &rr.Stderr)
	}

	cmd.Stdout = outb
	cmd.Stderr = errb

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if exitError, ok := err.(*exec.ExitError); ok {
		rr.ExitCode = exitError.ExitCode()
	}
	// Decrease log spam
	if elapsed > (1 * time.Second) {
		klog.Infof("Completed: %s: (%s)", rr.Command(), elapsed)
	}
	if err == nil {
		return rr, nil
	}

	return rr, fmt.Errorf("%s: %v\nstdout:\n%s\nstderr:\n%s", rr.Command(), err, rr.Stdout.String(), rr.Stderr.String())
}

// Copy writes a file and sets its permissions
func (*execRunner) Copy(f assets.CopyableFile) error {
	dst := assets.TargetPath(f)
	klog.Infof("cp: %s --> %s (%d bytes)", f.GetSourcePath(), dst, f.GetLength())
	if f.GetLength() == 0 {
		klog.Warningf("0 byte asset: %s", dst)
	}

	perms, err := strconv.ParseInt(f.GetPermissions(), 8, 0)
	if err != nil || perms > 07777 {
		return errors.Wrapf(err, "error converting permissions %s to integer", f.GetPermissions())
	}

	var b bytes.Buffer
	if _, err := io.Copy(&b, f); err != nil {
		return errors.Wrapf(err, "read %s", dst)
	}
	return lock.WriteFile(dst, b.Bytes(), os.FileMode(perms))
}

// Remove removes a file
func (*execRunner) Remove(f assets.CopyableFile) error {
	dst := assets.TargetPath(f)
	klog.Infof("rm: %s", dst)
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "remove %s", dst)
	}
	return nil
}
