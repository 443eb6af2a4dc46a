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
	"github.com/cifsmount/cifsmount/pkg/cifsmount/mount"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/reason"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/style"
)

// mounted is replaced in tests
var mounted = mount.Mounted

var statusCmd = &cobra.Command{
	Use:   "status NAME",
	Short: "Show the units of a managed mount and whether the share is mounted",
	Long: `Prints 'systemctl status' of the units of a mount and checks the kernel mount
table. NAME may be the mount name, its mount point or one of its unit names.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := settings()
		e := findMount(s, args[0])
		r := newRunner(s)
		inst := installer(s, r, initManager(s, r))

		out.Step(style.Mounting, "{{.name}}: {{.share}} at {{.mountpoint}}", out.V{"name": e.Name, "share": e.Share, "mountpoint": e.MountPoint})
		inst.ShowStatus(e.Config())

		dev, ok, err := mounted(e.MountPoint)
		switch {
		case err != nil:
			exit.Error(reason.InternalError, "Unable to read the mount table", err)
		case !ok:
			out.WarnReason(reason.ShareNotMounted, "{{.share}} is not mounted at {{.mountpoint}}", out.V{"share": e.Share, "mountpoint": e.MountPoint, "unit": e.Unit})
		default:
			out.Step(style.Check, "{{.device}} is mounted at {{.mountpoint}}", out.V{"device": dev, "mountpoint": e.MountPoint})
		}
	},
}
