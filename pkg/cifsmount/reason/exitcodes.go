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

package reason

// Exit codes used by cifsmount
//
// The first digit is the category (program, host, input, systemd, network)
// and the second digit is the flavor of failure.
const (
	// general
	ExFailure     = 1
	ExInterrupted = 2

	// 10-19 program errors
	ExProgramError   = 10
	ExProgramUsage   = 14
	ExProgramConfig  = 15
	ExProgramTimeout = 19

	// 30-39 host errors
	ExHostError       = 30
	ExHostConfig      = 33
	ExHostNotFound    = 37
	ExHostPermission  = 38
	ExHostUnsupported = 39

	// 40-49 input errors
	ExInputError    = 40
	ExInputNotFound = 47

	// 50-59 systemd errors
	ExSystemdError       = 50
	ExSystemdUnavailable = 59

	// 60-69 network and share errors
	ExShareError = 60
)
