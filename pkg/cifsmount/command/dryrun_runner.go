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
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/assets"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/style"
)

// dryRunner prints what it would do instead of doing it.
type dryRunner struct{}

// NewDryRunner returns a Runner which only describes commands and files
func NewDryRunner() Runner {
	return &dryRunner{}
}

// RunCmd prints the command and reports success without running it
func (*dryRunner) RunCmd(cmd *exec.Cmd) (*RunResult, error) {
	rr := &RunResult{Args: cmd.Args}
	klog.Infof("(dry-run) Run: %v", rr.Command())
	out.Step(style.DryRun, "Would run: {{.command}}", out.V{"command": rr.Command()})
	return rr, nil
}

// Copy prints the destination and, unless it is secret, the contents of a file
func (*dryRunner) Copy(f assets.CopyableFile) error {
	dst := assets.TargetPath(f)
	out.Step(style.DryRun, "Would write {{.path}} (mode {{.perms}}, {{.length}} bytes)", out.V{"path": dst, "perms": f.GetPermissions(), "length": f.GetLength()})
	if f.Sensitive() {
		out.Infof("contents hidden")
		return nil
	}
	var b bytes.Buffer
	if _, err := io.Copy(&b, f); err != nil {
		return errors.Wrapf(err, "read %s", dst)
	}
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		out.Step(style.LogEntry, "{{.line}}", out.V{"line": line})
	}
	return nil
}

// Remove prints the path it would delete
func (*dryRunner) Remove(f assets.CopyableFile) error {
	out.Step(style.DryRun, "Would remove {{.path}}", out.V{"path": assets.TargetPath(f)})
	return nil
}
