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

	"github.com/cifsmount/cifsmount/pkg/cifsmount/mount"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out/register"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/style"
)

// setupCmd configures a single share as a .mount unit
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Mount one CIFS share with a systemd .mount unit",
	Long: `Installs cifs-utils, asks for the share, the mount point and the credentials,
then writes a credentials file and a .mount unit, and enables and starts it.

Answers may be given up front with flags, in which case they are not asked for.`,
	Example:     `  sudo cifsmount setup --share //nas/data --mount-point /mnt/data --username alice`,
	Args:        cobra.NoArgs,
	Annotations: requiresRoot(register.CheckingPrivileges),
	Run: func(cmd *cobra.Command, args []string) {
		s := settings()
		r := newRunner(s)
		ensureDeps(s, r)
		m := initManager(s, r)

		c := collect(newAsker(), mount.Request{
			Preset:      presets(cmd),
			Defaults:    defaults(s),
			Interactive: s.Interactive,
		})
		c = checkConflict(s, c)
		installMount(s, installer(s, r, m), c)

		register.Reg.SetStep(register.Done)
		out.Step(style.Ready, "Done! {{.share}} is configured at {{.mountpoint}} by {{.unit}}", out.V{"share": c.Share, "mountpoint": c.MountPoint, "unit": c.UnitName()})
	},
}

func init() {
	addMountFlags(setupCmd, false)
}
