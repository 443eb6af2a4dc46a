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

// Package register contains all the logic to print out cifsmount progress in JSON
package register

import (
	"fmt"

	"k8s.io/klog/v2"
)

// Steps of the mount pipeline, in the order they are expected to be seen.
const (
	CheckingPrivileges RegStep = "Checking Privileges"
	LocalOSRelease     RegStep = "Local OS Release"
	InstallingPackages RegStep = "Installing Packages"
	CollectingInput    RegStep = "Collecting Mount Parameters"
	WritingFiles       RegStep = "Writing Unit Files"
	StartingUnits      RegStep = "Starting Units"
	Verifying          RegStep = "Verifying"
	Done               RegStep = "Done"

	Removing RegStep = "Removing"
)

// RegStep is a type representing a distinct step of a cifsmount command
type RegStep string

// Register holds all of the steps we could see in a cifsmount command
// and keeps track of the current step
type Register struct {
	steps   map[RegStep][]RegStep
	first   RegStep
	current RegStep
}

// Reg keeps track of all possible steps and the current step we are on
var Reg Register

func init() {
	Reg = Register{
		// Expected step orders, organized by the initial step seen
		steps: map[RegStep][]RegStep{
			CheckingPrivileges: {
				CheckingPrivileges,
				LocalOSRelease,
				InstallingPackages,
				CollectingInput,
				WritingFiles,
				StartingUnits,
				Verifying,
				Done,
			},
			Removing: {Removing, Done},
		},
	}
}

// totalSteps returns the total number of steps in the register
func (r *Register) totalSteps() string {
	return fmt.Sprintf("%d", len(r.steps[r.first])-1)
}

// currentStep returns the current step we are on
func (r *Register) currentStep() string {
	if r.first == RegStep("") {
		return ""
	}

	steps, ok := r.steps[r.first]
	if !ok {
		return "unknown"
	}

	for i, s := range steps {
		if r.current == s {
			return fmt.Sprintf("%d", i)
		}
	}

	// "add" loops back to collecting input for every extra mount
	klog.Warningf("%q was not found within the registered steps for %q: %v", r.current, r.first, steps)
	return ""
}

// SetStep sets the current step
func (r *Register) SetStep(s RegStep) {
	if r.first == RegStep("") {
		_, ok := r.steps[s]
		if ok {
			r.first = s
		} else {
			klog.Errorf("unexpected first step: %q", s)
		}
	}

	r.current = s
}

// Reset forgets the first and current step
func (r *Register) Reset() {
	r.first = ""
	r.current = ""
}
