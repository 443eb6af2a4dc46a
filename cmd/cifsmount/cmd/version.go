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
	"encoding/json"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/exit"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/reason"
	"github.com/cifsmount/cifsmount/pkg/version"
)

var (
	versionFormat string
	shortVersion  bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of cifsmount",
	Long:  `Print the version of cifsmount.`,
	Args:  cobra.NoArgs,
	Run: func(command *cobra.Command, args []string) {
		cifsmountVersion := version.GetVersion()
		gitCommitID := version.GetGitCommitID()
		data := map[string]string{
			"cifsmountVersion": cifsmountVersion,
			"commit":           gitCommitID,
		}
		if out.JSON && versionFormat == "" {
			versionFormat = "json"
		}
		switch versionFormat {
		case "":
			out.Ln("cifsmount version: %v", cifsmountVersion)
			if !shortVersion && gitCommitID != "" {
				out.Ln("commit: %v", gitCommitID)
			}
		case "json":
			json, err := json.Marshal(data)
			if err != nil {
				exit.Error(reason.InternalError, "version json failure", err)
			}
			out.String("%s\n", string(json))
		case "yaml":
			yaml, err := yaml.Marshal(data)
			if err != nil {
				exit.Error(reason.InternalError, "version yaml failure", err)
			}
			out.String("%s", string(yaml))
		default:
			exit.Usage("--format must be 'yaml' or 'json'")
		}
	},
}

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "", "One of 'yaml' or 'json'.")
	versionCmd.Flags().BoolVar(&shortVersion, "short", false, "Print just the version number.")
}
