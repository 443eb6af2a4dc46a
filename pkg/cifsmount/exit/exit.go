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

// Package exit contains functions useful for exiting gracefully.
package exit

import (
	"os"
	"runtime/debug"

	"k8s.io/klog/v2"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/out"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/reason"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/style"
)

// Message outputs a templated message and exits without interpretation
func Message(r reason.Kind, format string, args ...out.V) {
	if r.ID == "" {
		klog.Errorf("supplied reason has no ID: %+v", r)
	}

	if r.Style == style.None {
		r.Style = style.Failure
		if r.ExitCode >= reason.ExProgramError && r.ExitCode < reason.ExHostError {
			r.Style = style.Fatal
		}
	}

	if r.ExitCode == 0 {
		r.ExitCode = reason.ExFailure
	}

	if len(args) == 0 {
		args = append(args, out.V{})
	}
	args[0]["fatal_code"] = r.ID

	out.Error(r, "Exiting due to {{.fatal_code}}: "+format, args...)
	exit(r.ExitCode)
}

// Advice is syntactic sugar to output a message with dynamically generated advice
func Advice(r reason.Kind, msg string, advice string, a ...out.V) {
	r.Advice = advice
	Message(r, msg, a...)
}

// Error shows an error and exits with the exit code of the supplied reason
func Error(r reason.Kind, msg string, err error) {
	klog.Warningf("%s: %v\n%s", msg, err, debug.Stack())
	Message(r, "{{.msg}}: {{.err}}", out.V{"msg": msg, "err": err})
}

// Usage reports a command line mistake and exits with the usage code
func Usage(format string, a ...out.V) {
	Message(reason.Usage, format, a...)
}

// exit flushes the logs, then terminates the process. Replaced in tests.
var exit = func(code int) {
	klog.Flush()
	os.Exit(code)
}
