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
	"os/exec"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/syncmap"

	"github.com/pkg/errors"

	"k8s.io/klog/v2"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/assets"
)

// FakeCommandRunner mocks command output without running the Commands
//
// It implements the Runner interface and is used for testing.
type FakeCommandRunner struct {
	cmdMap  syncmap.Map
	errMap  syncmap.Map
	fileMap syncmap.Map

	mu  sync.Mutex
	ran []string
}

// NewFakeCommandRunner returns a new FakeCommandRunner
//
// The expected output of commands should be set with SetCommandToOutput
func NewFakeCommandRunner() *FakeCommandRunner {
	return &FakeCommandRunner{}
}

// RunCmd implements the Command Runner interface to run a exec.Cmd object
func (f *FakeCommandRunner) RunCmd(cmd *exec.Cmd) (*RunResult, error) {
	rr := &RunResult{Args: cmd.Args}
	klog.Infof("(FakeCommandRunner) Run:  %v", rr.Command())

	key := rr.Command()
	f.mu.Lock()
	f.ran = append(f.ran, key)
	f.mu.Unlock()

	if e, ok := f.errMap.Load(key); ok {
		rr.ExitCode = 1
		return rr, fmt.Errorf("%s: %v", key, e)
	}

	out, ok := f.cmdMap.Load(key)
	if !ok {
		cmds := f.commands()
		if len(cmds) == 0 {
			return rr, fmt.Errorf("asked to execute %s, but FakeCommandRunner has no commands stored", rr.Command())
		}

		var txt strings.Builder
		for _, c := range cmds {
			txt.WriteString(fmt.Sprintf("  `%s`\n", c))
		}
		return rr, fmt.Errorf("unregistered command:\n  `%s`\nexpected one of:\n%s", key, txt.String())
	}

	var buf bytes.Buffer
	outStr := ""
	if out != nil {
		outStr = out.(string)
	}
	_, err := buf.WriteString(outStr)
	if err != nil {
		return rr, errors.Wrap(err, "Writing outStr to FakeCommandRunner's buffer")
	}
	rr.Stdout = buf
	return rr, nil
}

// Copy adds the target path, file contents key value pair to the stored map.
func (f *FakeCommandRunner) Copy(file assets.CopyableFile) error {
	var b bytes.Buffer
	_, err := io.Copy(&b, file)
	if err != nil {
		return errors.Wrapf(err, "error reading file: %+v", file)
	}
	f.fileMap.Store(assets.TargetPath(file), b.String())
	return nil
}

// Remove removes the target path, file contents key value pair from the stored map
func (f *FakeCommandRunner) Remove(file assets.CopyableFile) error {
	f.fileMap.Delete(assets.TargetPath(file))
	return nil
}

// SetFileToContents stores the file to contents map for the FakeCommandRunner
func (f *FakeCommandRunner) SetFileToContents(fileToContents map[string]string) {
	for k, v := range fileToContents {
		f.fileMap.Store(k, v)
	}
}

// SetCommandToOutput stores the command to output map for the FakeCommandRunner
func (f *FakeCommandRunner) SetCommandToOutput(cmdToOutput map[string]string) {
	for k, v := range cmdToOutput {
		klog.Infof("fake command %q -> %q", k, v)
		f.cmdMap.Store(k, v)
	}
}

// SetCommandToError makes the given commands fail with the given message
func (f *FakeCommandRunner) SetCommandToError(cmdToErr map[string]string) {
	for k, v := range cmdToErr {
		klog.Infof("fake command %q -> error %q", k, v)
		f.errMap.Store(k, v)
	}
}

// GetFileToContents returns the contents stored for a target path
func (f *FakeCommandRunner) GetFileToContents(filename string) (string, error) {
	contents, ok := f.fileMap.Load(filename)
	if !ok {
		return "", fmt.Errorf("unavailable file: %s", filename)
	}
	return contents.(string), nil
}

// Files returns the sorted target paths currently stored
func (f *FakeCommandRunner) Files() []string {
	files := []string{}
	f.fileMap.Range(func(k, v interface{}) bool {
		files = append(files, k.(string))
		return true
	})
	sort.Strings(files)
	return files
}

// Ran returns every command executed so far, in order
func (f *FakeCommandRunner) Ran() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.ran...)
}

func (f *FakeCommandRunner) commands() []string {
	cmds := []string{}
	f.cmdMap.Range(func(k, v interface{}) bool {
		cmds = append(cmds, fmt.Sprintf("%s", k))
		return true
	})
	sort.Strings(cmds)
	return cmds
}

// DumpMaps prints out the list of stored commands and stored filenames.
func (f *FakeCommandRunner) DumpMaps(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	f.cmdMap.Range(func(k, v interface{}) bool {
		fmt.Fprintf(w, "%s:%s\n", k, v)
		return true
	})
	fmt.Fprintln(w, "Filenames: ")
	for _, name := range f.Files() {
		fmt.Fprintln(w, name)
	}
}
