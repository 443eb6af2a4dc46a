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

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/out"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out/register"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/style"
)

var installDepsCmd = &cobra.Command{
	Use:         "install-deps",
	Short:       "Install cifs-utils with the package manager of the host",
	Args:        cobra.NoArgs,
	Annotations: requiresRoot(register.CheckingPrivileges),
	Run: func(cmd *cobra.Command, args []string) {
		s := settings()
		s.SkipInstall = false
		ensureDeps(s, newRunner(s))
		register.Reg.SetStep(register.Done)
		out.Step(style.Ready, "Dependencies are installed")
	},
}
