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

package main

import (
	"testing"
)

func TestStdLogBridge(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"d.go:23: message\n", len("d.go:23: message\n")},
		{"d.go:xx: message\n", len("d.go:xx: message\n")},
		{"no colons\n", 0},
	}
	for _, tc := range tests {
		n, err := stdLogBridge{}.Write([]byte(tc.line))
		if err != nil {
			t.Errorf("Write(%q) error: %v", tc.line, err)
		}
		if n != tc.want {
			t.Errorf("Write(%q) = %d, want %d", tc.line, n, tc.want)
		}
	}
}
