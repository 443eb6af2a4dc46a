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
	goflag "flag"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/audit"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/config"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/exit"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out/register"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/reason"
)

// Command annotations
const (
	// rootAnnotation marks commands which change the host and so need root
	rootAnnotation = "cifsmount/requires-root"
	// stepAnnotation is the first progress step of the command
	stepAnnotation = "cifsmount/first-step"
)

// requiresRoot annotates a command that changes the host, starting at step first
func requiresRoot(first register.RegStep) map[string]string {
	return map[string]string{rootAnnotation: "true", stepAnnotation: string(first)}
}

var (
	configFile string
	auditID    string

	// geteuid is replaced in tests
	geteuid = os.Geteuid
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cifsmount",
	Short: "cifsmount configures CIFS/SMB shares as systemd mount units.",
	Long: `cifsmount installs cifs-utils, asks for the details of a CIFS/SMB share and
writes a credentials file and systemd units that mount the share at boot.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := config.ReadConfigFile(viper.GetViper(), configFile); err != nil {
			exit.Error(reason.InternalConfig, "Unable to load config", err)
		}
		s, err := config.Get(viper.GetViper())
		if err != nil {
			exit.Error(reason.InternalConfig, "Invalid configuration", err)
		}
		out.SetJSON(s.JSON)

		if step := cmd.Annotations[stepAnnotation]; step != "" {
			register.Reg.SetStep(register.RegStep(step))
		}
		if cmd.Annotations[rootAnnotation] != "" {
			checkRoot(cmd, s)
		}

		id, err := audit.LogCommandStart(cmd.Name(), auditArgs())
		if err != nil {
			klog.Warningf("failed to log command start to audit: %v", err)
		}
		auditID = id
	},
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if err := audit.LogCommandEnd(auditID); err != nil {
			klog.Warningf("failed to log command end to audit: %v", err)
		}
	}()

	addGoFlags()
	if err := RootCmd.Execute(); err != nil {
		// Cobra already outputs the error, typically because the user provided an unknown command.
		defer os.Exit(reason.ExProgramUsage)
	}
}

// checkRoot exits unless the command runs as root or only describes what it would do
func checkRoot(cmd *cobra.Command, s config.Settings) {
	if s.DryRun {
		klog.Infof("dry-run: skipping root check for %s", cmd.Name())
		return
	}
	if geteuid() != 0 {
		exit.Message(reason.HostRootRequired, "'cifsmount {{.cmd}}' needs root privileges", out.V{"cmd": cmd.Name()})
	}
}

// auditArgs returns the arguments after the command name
func auditArgs() []string {
	if len(os.Args) < 3 {
		return nil
	}
	return os.Args[2:]
}

func init() {
	fs := RootCmd.PersistentFlags()
	fs.StringVar(&configFile, "config", "", "Path of the config file (default $CIFSMOUNT_HOME/config.yaml)")
	fs.Bool(config.DryRun, false, "Print the commands and files instead of running and writing them")
	fs.StringP(config.Output, "o", "text", "Format to print stdout in. Options include: [text,json]")
	fs.String(config.UnitDir, config.DefaultUnitDir, "Directory systemd unit files are written to")
	fs.String(config.CredentialsDir, config.DefaultCredentialsDir, "Directory credentials files are written to")
	fs.String(config.InitBackend, config.DefaultInitBackend, "How to talk to systemd. Options include: [systemctl,dbus]")
	fs.Bool(config.SkipInstall, false, "Do not install cifs-utils")
	fs.Bool(config.SkipAudit, false, "Do not record the command in the audit log")
	fs.Bool(config.Interactive, true, "Ask for missing answers. When false every required answer must be passed as a flag")

	RootCmd.AddCommand(setupCmd, addCmd, applyCmd, listCmd, statusCmd, removeCmd, installDepsCmd, auditCmd, versionCmd)

	config.SetDefaults(viper.GetViper())
	config.BindEnv(viper.GetViper())
	if err := viper.BindPFlags(fs); err != nil {
		exit.Error(reason.InternalError, "Unable to bind flags", err)
	}
}

// addGoFlags exposes the go flags registered by main's imports, klog's among them
func addGoFlags() {
	RootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)
}
