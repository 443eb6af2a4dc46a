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

package unit

import (
	"bytes"
	"strings"

	sdunit "github.com/coreos/go-systemd/v22/unit"
	"github.com/pkg/errors"
)

// Info is what cifsmount reads back from a unit file it wrote
type Info struct {
	Name        string
	Description string
	Credentials string
	What        string
	Where       string
	Type        string
	Options     string
	Requires    string
}

// Managed reports whether the unit carries the cifsmount name key
func (i Info) Managed() bool {
	return i.Name != ""
}

// Parse reads the keys cifsmount cares about from a unit file
func Parse(data []byte) (Info, error) {
	opts, err := sdunit.DeserializeOptions(bytes.NewReader(data))
	if err != nil {
		return Info{}, errors.Wrap(err, "deserialize unit")
	}

	var i Info
	for _, o := range opts {
		v := unspecifier(o.Value)
		switch o.Section + "." + o.Name {
		case "Unit.Description":
			i.Description = v
		case "Unit." + KeyName:
			i.Name = v
		case "Unit." + KeyCredentials:
			i.Credentials = v
		case "Unit.Requires":
			i.Requires = v
		case "Mount.What":
			i.What = v
		case "Mount.Where":
			i.Where = v
		case "Mount.Type":
			i.Type = v
		case "Mount.Options":
			i.Options = v
		}
	}
	return i, nil
}

func unspecifier(s string) string {
	return strings.ReplaceAll(s, "%%", "%")
}
