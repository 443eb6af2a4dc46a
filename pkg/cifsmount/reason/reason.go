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

// Package reason classifies the failures cifsmount reports to users.
package reason

import (
	"fmt"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/style"
)

const issueBase = "https://github.com/cifsmount/cifsmount/issues"

// Kind describes reason metadata
type Kind struct {
	// ID is an unique and stable string describing a reason
	ID string
	// ExitCode to be used (defaults to 1)
	ExitCode int
	// Style is what emoji prefix to use for this reason
	Style style.Enum

	// Advice is actionable text that the user should follow
	Advice string
	// URL is supporting documentation
	URL string
	// Issues is a list of related issues to this issue
	Issues []int
	// Show the new issue link
	NewIssueLink bool
}

// IssueURLs returns URLs for issues
func (k *Kind) IssueURLs() []string {
	is := []string{}
	for _, i := range k.Issues {
		is = append(is, fmt.Sprintf("%s/%d", issueBase, i))
	}
	return is
}

// Sections are ordered roughly by stack dependencies
var (
	// generic program error
	Usage = Kind{ID: "CIFS_USAGE", ExitCode: ExProgramUsage, Style: style.Usage}
	// generic program failure, usually a bug
	InternalError = Kind{ID: "CIFS_INTERNAL", ExitCode: ExProgramError, NewIssueLink: true}
	// the configuration file could not be read or is invalid
	InternalConfig = Kind{ID: "CIFS_CONFIG", ExitCode: ExProgramConfig, Advice: "Fix or remove the configuration file and try again."}
	// the user aborted an interactive session
	Interrupted = Kind{ID: "CIFS_INTERRUPTED", ExitCode: ExInterrupted, Style: style.Shrug}

	// the command must run as root
	HostRootRequired = Kind{
		ID:       "HOST_ROOT_REQUIRED",
		ExitCode: ExHostPermission,
		Style:    style.Permissions,
		Advice:   "Run the command again with sudo, or as the root user.",
	}
	// no supported package manager could be found
	HostPkgManager = Kind{
		ID:       "HOST_PKG_MANAGER",
		ExitCode: ExHostUnsupported,
		Advice:   "Install cifs-utils manually, then run again with --skip-install.",
	}
	// the cifs-utils package could not be installed
	HostPkgInstall = Kind{
		ID:       "HOST_PKG_INSTALL",
		ExitCode: ExHostError,
		Advice:   "Check the package manager output above, then install cifs-utils manually and run again with --skip-install.",
	}
	// unit or credentials files could not be written
	HostWriteFiles = Kind{ID: "HOST_WRITE_FILES", ExitCode: ExHostConfig}
	// a mount point directory could not be created
	HostMountPoint = Kind{ID: "HOST_MOUNT_POINT", ExitCode: ExHostConfig}

	// user input failed validation
	InputInvalid = Kind{ID: "INPUT_INVALID", ExitCode: ExInputError, Style: style.Usage}
	// a manifest could not be read or parsed
	InputManifest = Kind{ID: "INPUT_MANIFEST", ExitCode: ExInputError}
	// the named mount is not managed by cifsmount
	InputNotFound = Kind{
		ID:       "INPUT_NOT_FOUND",
		ExitCode: ExInputNotFound,
		Advice:   "Run 'cifsmount list' to see the mounts cifsmount manages.",
	}
	// the mount name is already used for another mount point
	InputNameConflict = Kind{
		ID:       "INPUT_NAME_CONFLICT",
		ExitCode: ExInputError,
		Advice:   "Choose another name, or remove the existing mount with 'cifsmount remove {{.name}}'.",
	}

	// the host does not run systemd
	SystemdUnavailable = Kind{
		ID:       "SYSTEMD_UNAVAILABLE",
		ExitCode: ExSystemdUnavailable,
		Advice:   "cifsmount manages mounts with systemd units. Use /etc/fstab on hosts without systemd.",
	}
	// systemd refused to reload, enable or start a unit
	SystemdUnit = Kind{
		ID:       "SYSTEMD_UNIT",
		ExitCode: ExSystemdError,
		Advice:   "Inspect the unit with 'journalctl -xeu {{.unit}}'.",
	}
	// the share did not show up in the mount table
	ShareNotMounted = Kind{
		ID:       "SHARE_NOT_MOUNTED",
		ExitCode: ExShareError,
		Style:    style.Confused,
		Advice:   "Check the server name, the share name and the credentials, then run 'journalctl -xeu {{.unit}}'.",
	}
)
