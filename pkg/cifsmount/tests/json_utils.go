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

package tests

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// CompareJSON compares two newline separated streams of JSON objects, ignoring key order
func CompareJSON(t *testing.T, actual, expected []byte) {
	t.Helper()
	got := decodeLines(t, actual)
	want := decodeLines(t, expected)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}
}

func decodeLines(t *testing.T, b []byte) []interface{} {
	t.Helper()
	var objs []interface{}
	for _, l := range bytes.Split(bytes.TrimSpace(b), []byte("\n")) {
		if len(l) == 0 {
			continue
		}
		var o interface{}
		if err := json.Unmarshal(l, &o); err != nil {
			t.Fatalf("unmarshal %q: %v", l, err)
		}
		objs = append(objs, o)
	}
	return objs
}
