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

package audit

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/localpath"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/out/register"
)

var (
	// fs holds the audit log, replaced in tests
	fs = afero.NewOsFs()

	// auditOverrideFilename overrides the default audit log filename, used for testing purposes
	auditOverrideFilename string
)

// appendToLog appends the row to the log file.
func appendToLog(r *row) error {
	ce := register.CloudEvent(r, r.toMap())
	bs, err := ce.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshal audit event")
	}
	if err := fs.MkdirAll(filepath.Dir(auditPath()), 0755); err != nil {
		return errors.Wrap(err, "create audit log directory")
	}
	f, err := fs.OpenFile(auditPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return errors.Wrap(err, "open the audit log")
	}
	defer f.Close()
	if _, err := f.Write(append(bs, '\n')); err != nil {
		return errors.Wrap(err, "write to audit log")
	}
	return nil
}

// readLines returns the raw lines of the audit log, none if it does not exist.
func readLines() ([]string, error) {
	data, err := afero.ReadFile(fs, auditPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "read the audit log")
	}
	var logs []string
	s := bufio.NewScanner(bytes.NewReader(data))
	for s.Scan() {
		if len(bytes.TrimSpace(s.Bytes())) == 0 {
			continue
		}
		logs = append(logs, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "scan the audit log")
	}
	return logs, nil
}

func readRows() ([]row, error) {
	logs, err := readLines()
	if err != nil {
		return nil, err
	}
	return logsToRows(logs)
}

// writeRows replaces the audit log with rows, each re-wrapped as a CloudEvent.
func writeRows(rows []row) error {
	var b bytes.Buffer
	for i := range rows {
		ce := register.CloudEvent(&rows[i], rows[i].toMap())
		bs, err := ce.MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "marshal audit event")
		}
		b.Write(bs)
		b.WriteByte('\n')
	}
	if err := afero.WriteFile(fs, auditPath(), b.Bytes(), 0600); err != nil {
		return errors.Wrap(err, "rewrite the audit log")
	}
	return nil
}

func auditPath() string {
	if auditOverrideFilename != "" {
		return auditOverrideFilename
	}
	return localpath.AuditLog()
}
