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

package style

// Enum is an enumeration of Style
type Enum int

// All the Style constants available
const (
	None Enum = iota
	Celebrate
	Check
	Command
	Confused
	Copying
	Deleted
	Documentation
	DryRun
	Empty
	Enabling
	Failure
	Fatal
	Happy
	Installing
	Issue
	Issues
	KnownIssue
	LogEntry
	MountOptions
	Mounting
	Notice
	Option
	Permissions
	Prompt
	Provisioner
	Ready
	Sad
	Shrug
	Sparkle
	Stopped
	Success
	ThumbsUp
	Tip
	Unmount
	URL
	Usage
	Verifying
	Waiting
	Warning
)
