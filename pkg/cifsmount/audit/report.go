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
	"github.com/pkg/errors"
)

// RawReport contains the information required to generate formatted reports.
type RawReport struct {
	headers []string
	rows    []row
}

// Report is created using the last n rows of the log file.
func Report(lastNLines int) (*RawReport, error) {
	if lastNLines <= 0 {
		return nil, errors.New("last n lines must be 1 or greater")
	}
	logs, err := readLines()
	if err != nil {
		return nil, err
	}
	if len(logs) > lastNLines {
		logs = logs[len(logs)-lastNLines:]
	}
	rows, err := logsToRows(logs)
	if err != nil {
		return nil, errors.Wrap(err, "convert logs to rows")
	}
	return &RawReport{
		[]string{"Command", "Args", "User", "Version", "Start Time", "End Time"},
		rows,
	}, nil
}

// Len is the number of rows in the report
func (rr *RawReport) Len() int {
	return len(rr.rows)
}

// ASCIITable creates a formatted table using the headers and rows from the report.
func (rr *RawReport) ASCIITable() (string, error) {
	return rowsToTable(rr.rows, rr.headers)
}
