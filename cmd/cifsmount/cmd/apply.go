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
	"github.com/cifsmount/cifsmount/pkg/cifsmount/manifest"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out/register"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/reason"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/style"
)

var manifestFile string

// applyCmd configures every named mount listed in a manifest, without asking anything
var applyCmd = &cobra.Command{
	Use:   "apply -f FILE",
	Short: "Mount every CIFS share listed in a YAML manifest",
	Long: `Configures each mount of the manifest the way 'cifsmount add' does, without
asking any question. Relative passwordFile paths are resolved against the
directory of the manifest.`,
	Example:     `  sudo cifsmount apply -f /etc/cifsmount/mounts.yaml`,
	Args:        cobra.NoArgs,
	Annotations: requiresRoot(register.CheckingPrivileges),
	Run: func(cmd *cobra.Command, args []string) {
		s := settings()
		if manifestFile == "" {
			exit.Usage("Please pass the manifest with -f FILE")
		}

		r := newRunner(s)
		ensureDeps(s, r)
		inst := installer(s, r, initManager(s, r))

		register.Reg.SetStep(register.CollectingInput)
		m, err := manifest.Load(hostFs, manifestFile)
		if err != nil {
			exit.Error(reason.InputManifest, "Unable to load the manifest", err)
		}
		cs, err := m.Configs(hostFs, defaults(s))
		if err != nil {
			exit.Message(reason.InputInvalid, "{{.error}}", out.V{"error": err})
		}
		for i := range cs {
			cs[i] = checkConflict(s, cs[i])
		}

		for _, c := range cs {
			installMount(s, inst, c)
		}

		register.Reg.SetStep(register.Done)
		out.Step(style.Ready, "Done! Applied {{.count}} mount(s) from {{.file}}", out.V{"count": len(cs), "file": manifestFile})
		for _, c := range cs {
			out.Infof("{{.name}}: {{.share}} at {{.mountpoint}}", out.V{"name": c.Name, "share": c.Share, "mountpoint": c.MountPoint})
		}
	},
}

func init() {
	applyCmd.Flags().StringVarP(&manifestFile, "file", "f", "", "YAML manifest listing the mounts")
}
