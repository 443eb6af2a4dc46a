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

// Package localpath resolves the paths cifsmount keeps its own state under.
package localpath

import (
	"os"
	"path/filepath"
)

// HomeEnv is used to relocate the cifsmount home directory
const HomeEnv = "CIFSMOUNT_HOME"

// DefaultHome is where state lives unless CIFSMOUNT_HOME says otherwise
const DefaultHome = "/etc/cifsmount"

// ConfigFile is the path of the cifsmount configuration file
func ConfigFile() string {
	return MakeMiniPath("config.yaml")
}

// AuditLog returns the path of the audit log
func AuditLog() string {
	return MakeMiniPath("logs", "audit.json")
}

// MiniPath returns the path to the cifsmount home directory
func MiniPath() string {
	if p := os.Getenv(HomeEnv); p != "" {
		return filepath.Clean(p)
	}
	return DefaultHome
}

// MakeMiniPath is a utility to calculate a relative path to the cifsmount home directory
func MakeMiniPath(fileName ...string) string {
	args := []string{MiniPath()}
	args = append(args, fileName...)
	return filepath.Join(args...)
}
