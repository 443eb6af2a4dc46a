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

package register

import "strconv"

// Log is anything printed or stored as a CloudEvent: pipeline events here,
// audit rows in the audit package.
type Log interface {
	Type() string
}

// CloudEvent types of the pipeline events printed with --output=json
const (
	StepEvent    = "io.cifsmount.step"
	InfoEvent    = "io.cifsmount.info"
	WarningEvent = "io.cifsmount.warning"
	ErrorEvent   = "io.cifsmount.error"
)

// Event is one message of a cifsmount run. Every event carries "message";
// steps add their position in the pipeline, errors their exit code and reason.
type Event struct {
	kind string
	data map[string]string
}

// Type returns the CloudEvent type of e
func (e *Event) Type() string {
	return e.kind
}

// Data is the payload printed under "data"
func (e *Event) Data() map[string]string {
	return e.data
}

func newEvent(kind, message string) *Event {
	return &Event{kind: kind, data: map[string]string{"message": message}}
}

// NewStep is the event for entering or reporting on the current pipeline
// step, e.g. "Writing Unit Files", step 4 of 8.
func NewStep(message string) *Event {
	e := newEvent(StepEvent, message)
	e.data["name"] = string(Reg.current)
	e.data["currentstep"] = Reg.currentStep()
	e.data["totalsteps"] = Reg.totalSteps()
	return e
}

// NewInfo is for detail lines: mount options, dry-run file contents, unit status
func NewInfo(message string) *Event {
	return newEvent(InfoEvent, message)
}

// NewWarning is for failures that do not stop the run, such as a share that
// does not show up as mounted.
func NewWarning(message string) *Event {
	return newEvent(WarningEvent, message)
}

// NewError is the event for a message written to stderr
func NewError(message string) *Event {
	return newEvent(ErrorEvent, message)
}

// NewErrorExitCode is the final event of a failed run. extra carries the
// reason ID, advice and similar details.
func NewErrorExitCode(message string, exitcode int, extra ...map[string]string) *Event {
	e := NewError(message)
	e.data["exitcode"] = strconv.Itoa(exitcode)
	for _, m := range extra {
		for k, v := range m {
			e.data[k] = v
		}
	}
	return e
}
