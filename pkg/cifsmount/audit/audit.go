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

// Package audit records every mutating cifsmount command in a CloudEvents log.
package audit

import (
	"os"
	"os/user"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/config"
	"github.com/cifsmount/cifsmount/pkg/version"
)

// TimeFormat is how start and end times are stored
const TimeFormat = "02 Jan 06 15:04 MST"

// commands that change nothing on the host are not logged
var readOnly = map[string]bool{
	"audit":   true,
	"help":    true,
	"list":    true,
	"status":  true,
	"version": true,
}

// userName is the user behind sudo if there is one, otherwise the current user.
func userName() string {
	if u := os.Getenv("SUDO_USER"); u != "" {
		return u
	}
	osUser, err := user.Current()
	if err != nil {
		return "UNKNOWN"
	}
	return osUser.Username
}

// LogCommandStart appends a row for command and returns its id, or "" when
// the command is not logged.
func LogCommandStart(command string, args []string) (string, error) {
	if !shouldLog(command) {
		return "", nil
	}
	id := uuid.New().String()
	r := newRow(command, strings.Join(args, " "), userName(), version.GetVersion(), time.Now(), id)
	if err := appendToLog(r); err != nil {
		return "", err
	}
	return r.id, nil
}

// LogCommandEnd stamps the end time of the row with id, dropping the oldest
// rows beyond the configured maximum.
func LogCommandEnd(id string) error {
	if id == "" {
		return nil
	}
	rows, err := readRows()
	if err != nil {
		return err
	}
	rows = rows[getStartIndex(len(rows)):]

	found := false
	for i := range rows {
		if rows[i].id == id {
			rows[i].endTime = time.Now().Format(TimeFormat)
			found = true
		}
	}
	if !found {
		return errors.Errorf("failed to find a log row with id equals to %v", id)
	}
	return writeRows(rows)
}

func getStartIndex(entryCount int) int {
	maxEntries := viper.GetInt(config.MaxAuditEntries)
	startIndex := entryCount - maxEntries
	if maxEntries <= 0 || startIndex <= 0 {
		return 0
	}
	return startIndex
}

// shouldLog returns if the command should be logged.
func shouldLog(command string) bool {
	if viper.GetBool(config.SkipAudit) || viper.GetBool(config.DryRun) {
		return false
	}
	if command == "" {
		return false
	}
	return !readOnly[command]
}
