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
	"bytes"
	"encoding/json"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/config"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/exit"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/inventory"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/reason"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/style"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/sysinit"
)

// listedMount is a row of "cifsmount list"
type listedMount struct {
	Name       string `json:"name"`
	Share      string `json:"share"`
	MountPoint string `json:"mountPoint"`
	Unit       string `json:"unit"`
	Service    string `json:"service,omitempty"`
	Active     string `json:"active"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the mounts managed by cifsmount",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := settings()
		entries, err := inventory.List(hostFs, s.UnitDir)
		if err != nil {
			exit.Error(reason.InternalError, "Unable to read the unit directory", err)
		}

		// listing works without systemd, the state is just unknown
		var m sysinit.Manager
		if !s.DryRun {
			m, err = newInit(s.InitBackend, newRunner(config.Settings{}))
			if err != nil {
				klog.Warningf("unit state unavailable: %v", err)
			}
		}

		rows := make([]listedMount, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, listedMount{
				Name:       e.Name,
				Share:      e.Share,
				MountPoint: e.MountPoint,
				Unit:       e.Unit,
				Service:    e.Wrapper,
				Active:     activeState(m, e),
			})
		}

		if s.JSON {
			b, err := json.Marshal(rows)
			if err != nil {
				exit.Error(reason.InternalError, "list json failure", err)
			}
			out.String("%s\n", string(b))
			return
		}
		if len(rows) == 0 {
			out.Step(style.Empty, "No mounts are managed by cifsmount in {{.dir}}", out.V{"dir": s.UnitDir})
			return
		}
		t, err := mountTable(rows)
		if err != nil {
			exit.Error(reason.InternalError, "Unable to render the mount table", err)
		}
		out.String("%s", t)
	},
}

func activeState(m sysinit.Manager, e inventory.Entry) string {
	if m == nil {
		return "unknown"
	}
	if m.Active(e.Unit) {
		return "active"
	}
	return "inactive"
}

func mountTable(rows []listedMount) (string, error) {
	var b bytes.Buffer
	table := tablewriter.NewWriter(&b)
	table.Header("Name", "Share", "Mount Point", "Unit", "Service", "Active")
	for _, r := range rows {
		if err := table.Append([]string{r.Name, r.Share, r.MountPoint, r.Unit, r.Service, r.Active}); err != nil {
			return "", err
		}
	}
	if err := table.Render(); err != nil {
		return "", err
	}
	return b.String(), nil
}
