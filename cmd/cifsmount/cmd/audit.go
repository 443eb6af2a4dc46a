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

	"github.com/cifsmount/cifsmount/pkg/cifsmount/audit"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/exit"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/reason"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/style"
)

var auditLines int

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the most recent cifsmount commands that changed the host",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if auditLines < 1 {
			exit.Usage("--lines must be 1 or greater")
		}
		r, err := audit.Report(auditLines)
		if err != nil {
			exit.Error(reason.InternalError, "Unable to read the audit log", err)
		}
		if r.Len() == 0 {
			out.Step(style.Empty, "The audit log is empty")
			return
		}
		t, err := r.ASCIITable()
		if err != nil {
			exit.Error(reason.InternalError, "Unable to render the audit log", err)
		}
		out.String("%s", t)
	},
}

func init() {
	auditCmd.Flags().IntVarP(&auditLines, "lines", "n", 20, "Number of entries to show")
}
