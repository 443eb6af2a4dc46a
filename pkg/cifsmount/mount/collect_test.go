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

package mount

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// fakeAsker answers questions from a script keyed by the start of the question text
type fakeAsker struct {
	answers map[string][]string
	asked   []string
}

func (f *fakeAsker) next(question string) (string, error) {
	f.asked = append(f.asked, question)
	for prefix, answers := range f.answers {
		if strings.HasPrefix(question, prefix) && len(answers) > 0 {
			f.answers[prefix] = answers[1:]
			return answers[0], nil
		}
	}
	return "", errors.Errorf("unexpected question %q", question)
}

func (f *fakeAsker) AskForStaticValue(q string) (string, error) { return f.next(q) }

func (f *fakeAsker) AskForStaticValueOptional(q string, def string) (string, error) {
	v, err := f.next(q)
	if v == "" {
		return def, err
	}
	return v, err
}

func (f *fakeAsker) AskForValidatedValue(q string, def string, validate func(string) error) (string, error) {
	for {
		v, err := f.AskForStaticValueOptional(q, def)
		if err != nil {
			return "", err
		}
		if validate(v) == nil {
			return v, nil
		}
	}
}

func (f *fakeAsker) AskForPasswordValue(q string) (string, error) { return f.next(q) }

func (f *fakeAsker) AskForYesNoConfirmation(q string, def bool) (bool, error) {
	v, err := f.next(q)
	return v == "y", err
}

func defaults() Config {
	return Config{SMBVersion: "3.0", FileMode: "0755", DirMode: "0755", UID: "0", GID: "0"}
}

func TestCollectSingle(t *testing.T) {
	a := &fakeAsker{answers: map[string][]string{
		"Remote share":      {"nas/data", "//nas/data"},
		"Local mount point": {"/mnt/data"},
		"Username":          {"alice"},
		"Password":          {"s3cret"},
		"Domain":            {""},
		"SMB version":       {""},
	}}
	got, err := Collect(a, Request{Defaults: defaults(), Interactive: true})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	want := Config{
		Name:       "mnt-data",
		Share:      "//nas/data",
		MountPoint: "/mnt/data",
		Username:   "alice",
		Password:   "s3cret",
		SMBVersion: "3.0",
		UID:        "0",
		GID:        "0",
		FileMode:   "0755",
		DirMode:    "0755",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Collect() mismatch (-want +got):\n%s", diff)
	}
	for _, q := range a.asked {
		if strings.HasPrefix(q, "Mount name") || strings.HasPrefix(q, "Extra mount options") {
			t.Errorf("single mount asked %q", q)
		}
	}
}

func TestCollectNamedWithPresets(t *testing.T) {
	a := &fakeAsker{answers: map[string][]string{
		"Mount name":          {"media"},
		"Password":            {"pw"},
		"Domain":              {"CORP"},
		"SMB version":         {"3.1.1"},
		"Extra mount options": {"ro"},
	}}
	req := Request{
		Preset:      Config{Share: "//nas/media", MountPoint: "/srv/media", Username: "bob"},
		Defaults:    defaults(),
		Named:       true,
		Interactive: true,
	}
	got, err := Collect(a, req)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if got.Name != "media" || got.Domain != "CORP" || got.SMBVersion != "3.1.1" || got.Options != "ro" || !got.Wrapper {
		t.Errorf("Collect() = %+v", got)
	}
	for _, q := range a.asked {
		if strings.HasPrefix(q, "Remote share") || strings.HasPrefix(q, "Username") {
			t.Errorf("preset answer asked again: %q", q)
		}
	}
}

func TestCollectInvalidPreset(t *testing.T) {
	req := Request{Preset: Config{Share: "nas/media"}, Defaults: defaults(), Interactive: true}
	_, err := Collect(&fakeAsker{}, req)
	if err == nil || !strings.Contains(err.Error(), "--share") {
		t.Errorf("Collect() = %v, want an error naming --share", err)
	}
}

func TestCollectNonInteractive(t *testing.T) {
	req := Request{
		Preset:   Config{Share: "//nas/media", MountPoint: "/srv/media", Username: "bob", Password: "pw"},
		Defaults: defaults(),
	}
	got, err := Collect(&fakeAsker{}, req)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if got.SMBVersion != "3.0" || got.Name != "srv-media" {
		t.Errorf("Collect() = %+v", got)
	}

	req.Preset.Password = ""
	_, err = Collect(&fakeAsker{}, req)
	if err == nil || !strings.Contains(err.Error(), "--password-file") {
		t.Errorf("Collect() without password = %v, want an error naming --password-file", err)
	}
}

func TestCompleteCleansMountPoint(t *testing.T) {
	for _, mp := range []string{"/mnt//data", "/mnt/data/", "/mnt/./data"} {
		c, err := Complete(Config{Share: "//nas/data", MountPoint: mp, Username: "bob", Password: "pw"}, defaults())
		if err != nil {
			t.Fatalf("Complete(%q): %v", mp, err)
		}
		if c.MountPoint != "/mnt/data" || c.Name != "mnt-data" || c.UnitName() != "mnt-data.mount" {
			t.Errorf("Complete(%q) = mount point %q, name %q, unit %q", mp, c.MountPoint, c.Name, c.UnitName())
		}
	}
}

func TestCompleteDerivesValidName(t *testing.T) {
	c, err := Complete(Config{Share: "//nas/backup", MountPoint: "/_backup", Username: "bob", Password: "pw"}, defaults())
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if c.Name != "backup" {
		t.Errorf("Name = %q, want backup", c.Name)
	}
}
