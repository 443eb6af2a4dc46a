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

package retry

import (
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestExpoSucceedsAfterRetries(t *testing.T) {
	calls := 0
	err := Expo(func() error {
		calls++
		if calls < 3 {
			return errors.New("Could not get lock /var/lib/dpkg/lock-frontend")
		}
		return nil
	}, time.Millisecond, time.Second)
	if err != nil {
		t.Fatalf("Expo: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestExpoMaxRetries(t *testing.T) {
	calls := 0
	err := Expo(func() error {
		calls++
		return errors.New("always")
	}, time.Millisecond, time.Second, 2)
	if err == nil {
		t.Fatal("Expo returned nil, want error")
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestPermanentStopsRetry(t *testing.T) {
	calls := 0
	err := Local(func() error {
		calls++
		return Permanent(errors.New("not a lock error"))
	}, time.Second)
	if err == nil || err.Error() != "not a lock error" {
		t.Fatalf("Local = %v, want the permanent error", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
