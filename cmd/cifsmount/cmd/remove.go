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

	"github.com/cifsmount/cifsmount/pkg/cifsmount/exit"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out/register"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/reason"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/style"
)

var assumeYes bool

var removeCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Stop a managed mount and delete its units and credentials",
	Long: `Stops and disables the units of a mount, deletes its unit files and its
credentials file, then reloads systemd. The mount point directory is left in
place. NAME may be the mount name, its mount point or one of its unit names.`,
	Args:        cobra.ExactArgs(1),
	Annotations: requiresRoot(register.Removing),
	Run: func(cmd *cobra.Command, args []string) {
		s := settings()
		e := findMount(s, args[0])

		if !assumeYes && s.Interactive && !s.DryRun {
			ok, err := newAsker().AskForYesNoConfirmation(out.Fmt("Remove {{.name}} ({{.share}} at {{.mountpoint}})?", out.V{"name": e.Name, "share": e.Share, "mountpoint": e.MountPoint}), false)
			if err != nil {
				exit.Message(reason.Interrupted, "Input ended before every answer was given")
			}
			if !ok {
				out.Step(style.Shrug, "Leaving {{.name}} in place", out.V{"name": e.Name})
				return
			}
		}

		r := newRunner(s)
		inst := installer(s, r, initManager(s, r))
		inst.CredentialsDir = credentialsDir(s, e)
		if err := inst.Remove(e.Config()); err != nil {
			exit.Error(reason.HostWriteFiles, "Failed to remove "+e.Name, err)
		}

		register.Reg.SetStep(register.Done)
		out.Step(style.Deleted, "Removed {{.name}}", out.V{"name": e.Name})
	},
}

func init() {
	removeCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
}
