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

// Package unit renders and parses the systemd unit files cifsmount manages.
package unit

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	sdunit "github.com/coreos/go-systemd/v22/unit"
	"github.com/pkg/errors"
)

// Header is the first line of every file cifsmount writes
const Header = "# Managed by cifsmount"

// Custom keys that tie a unit back to its mount
const (
	KeyName        = "X-CifsMount-Name"
	KeyCredentials = "X-CifsMount-Credentials"
)

// WrapperPrefix is prepended to the mount name to form the wrapper service name
const WrapperPrefix = "cifs-"

// SystemctlPath is the absolute path wrapper services invoke
const SystemctlPath = "/bin/systemctl"

// Mount describes a .mount unit
type Mount struct {
	// Name is the cifsmount name of the mount
	Name string
	// What is the //server/share path
	What string
	// Where is the absolute mount point
	Where string
	// Options is the rendered, comma separated mount option list
	Options string
	// Credentials is the path of the credentials file
	Credentials string
}

// Wrapper describes the friendly service wrapping a .mount unit
type Wrapper struct {
	Name  string
	What  string
	Where string
}

// MountName returns the unit name systemd expects for a mount point,
// e.g. /mnt/data => mnt-data.mount
func MountName(where string) string {
	return sdunit.UnitNamePathEscape(where) + ".mount"
}

// WrapperName returns the wrapper service name of a mount name
func WrapperName(name string) string {
	return WrapperPrefix + name + ".service"
}

// RenderMount renders the .mount unit file
func RenderMount(m Mount) ([]byte, error) {
	opts := []*sdunit.UnitOption{
		sdunit.NewUnitOption("Unit", "Description", specifier(fmt.Sprintf("CIFS share %s at %s", m.What, m.Where))),
		sdunit.NewUnitOption("Unit", "Documentation", "man:mount.cifs(8)"),
		sdunit.NewUnitOption("Unit", "Wants", "network-online.target"),
		sdunit.NewUnitOption("Unit", "After", "network-online.target"),
		sdunit.NewUnitOption("Unit", KeyName, m.Name),
		sdunit.NewUnitOption("Unit", KeyCredentials, specifier(m.Credentials)),
		sdunit.NewUnitOption("Mount", "What", specifier(m.What)),
		sdunit.NewUnitOption("Mount", "Where", specifier(m.Where)),
		sdunit.NewUnitOption("Mount", "Type", "cifs"),
		sdunit.NewUnitOption("Mount", "Options", specifier(m.Options)),
		sdunit.NewUnitOption("Mount", "TimeoutSec", "30"),
		sdunit.NewUnitOption("Install", "WantedBy", "multi-user.target"),
	}
	return serialize(opts)
}

// RenderWrapper renders the wrapper .service unit file
func RenderWrapper(w Wrapper) ([]byte, error) {
	mu := MountName(w.Where)
	opts := []*sdunit.UnitOption{
		sdunit.NewUnitOption("Unit", "Description", specifier(fmt.Sprintf("CIFS mount %s (%s at %s)", w.Name, w.What, w.Where))),
		sdunit.NewUnitOption("Unit", "Requires", mu),
		sdunit.NewUnitOption("Unit", "After", mu),
		sdunit.NewUnitOption("Unit", KeyName, w.Name),
		sdunit.NewUnitOption("Service", "Type", "oneshot"),
		sdunit.NewUnitOption("Service", "RemainAfterExit", "yes"),
		sdunit.NewUnitOption("Service", "ExecStart", execLine(SystemctlPath, "start", mu)),
		sdunit.NewUnitOption("Service", "ExecStop", execLine(SystemctlPath, "stop", mu)),
		sdunit.NewUnitOption("Install", "WantedBy", "multi-user.target"),
	}
	return serialize(opts)
}

func serialize(opts []*sdunit.UnitOption) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(Header + "\n")
	if _, err := io.Copy(&buf, sdunit.Serialize(opts)); err != nil {
		return nil, errors.Wrap(err, "serialize unit")
	}
	return buf.Bytes(), nil
}

// specifier escapes % so systemd does not expand it as a specifier
func specifier(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

// execLine escapes arguments for Exec*= lines, where systemd also
// interprets C-style backslash escapes such as the \x2d of escaped unit names.
func execLine(args ...string) string {
	escaped := make([]string, len(args))
	for i, a := range args {
		escaped[i] = specifier(strings.ReplaceAll(a, `\`, `\\`))
	}
	return strings.Join(escaped, " ")
}
