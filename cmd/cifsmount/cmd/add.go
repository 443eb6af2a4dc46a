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
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out/register"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/reason"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/style"
)

// addCmd configures named mounts, each with a friendly wrapper service
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Mount one or more named CIFS shares, each with a cifs-<name>.service unit",
	Long: `Installs cifs-utils, then asks for a mount name, the share, the mount point,
the credentials and extra mount options. Besides the .mount unit, a
cifs-<name>.service unit is written so the mount can be managed by name,
e.g. 'systemctl restart cifs-media'. Asks whether to add another mount
until the answer is no.`,
	Example:     `  sudo cifsmount add --name media --share //nas/media --mount-point /srv/media`,
	Args:        cobra.NoArgs,
	Annotations: requiresRoot(register.CheckingPrivileges),
	Run: func(cmd *cobra.Command, args []string) {
		s := settings()
		r := newRunner(s)
		ensureDeps(s, r)
		inst := installer(s, r, initManager(s, r))

		a := newAsker()
		preset := presets(cmd)
		var added []mount.Config
		for {
			c := collect(a, mount.Request{
				Preset:      preset,
				Defaults:    defaults(s),
				Named:       true,
				Interactive: s.Interactive,
			})
			c = checkConflict(s, c)
			installMount(s, inst, c)
			added = append(added, c)
			out.Step(style.ThumbsUp, "{{.name}} is ready: systemctl status {{.wrapper}}", out.V{"name": c.Name, "wrapper": c.WrapperName()})

			if !s.Interactive {
				break
			}
			more, err := a.AskForYesNoConfirmation("Add another mount?", false)
			if err != nil {
				exit.Message(reason.Interrupted, "Input ended before every answer was given")
			}
			if !more {
				break
			}
			// flags only answer for the first mount
			preset = mount.Config{}
		}

		register.Reg.SetStep(register.Done)
		out.Step(style.Ready, "Done! Configured {{.count}} mount(s):", out.V{"count": len(added)})
		for _, c := range added {
			out.Infof("{{.name}}: {{.share}} at {{.mountpoint}} ({{.wrapper}})", out.V{"name": c.Name, "share": c.Share, "mountpoint": c.MountPoint, "wrapper": c.WrapperName()})
		}
	},
}

func init() {
	addMountFlags(addCmd, true)
}
