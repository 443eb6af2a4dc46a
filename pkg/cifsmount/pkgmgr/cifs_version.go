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
	"os/exec"
	"strings"

	"github.com/blang/semver/v4"
	"github.com/pkg/errors"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/command"
)

// minCIFSVersion is the oldest mount.cifs known to accept the vers= option
var minCIFSVersion = semver.MustParse("6.0.0")

// CIFSVersion reports the version of the installed mount.cifs helper.
// mount.cifs prints "mount.cifs version: 7.0".
func CIFSVersion(r command.Runner) (semver.Version, error) {
	rr, err := r.RunCmd(exec.Command("mount.cifs", "-V"))
	if err != nil {
		return semver.Version{}, errors.Wrap(err, "mount.cifs -V")
	}
	line := strings.TrimSpace(rr.Stdout.String())
	if i := strings.LastIndex(line, ":"); i >= 0 {
		line = strings.TrimSpace(line[i+1:])
	}
	v, err := semver.ParseTolerant(line)
	if err != nil {
		return semver.Version{}, errors.Wrapf(err, "parse mount.cifs version %q", line)
	}
	return v, nil
}

// CIFSVersionSupported is false for mount.cifs releases that predate vers=
func CIFSVersionSupported(v semver.Version) bool {
	return v.GTE(minCIFSVersion)
}
