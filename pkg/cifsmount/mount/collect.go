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
	"path"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/prompt"
)

// Request describes how to gather one Config
type Request struct {
	// Preset holds answers given up front, which are validated but not asked for
	Preset Config
	// Defaults are offered at the prompt and fill settings that are never asked for
	Defaults Config
	// Named asks for a mount name and extra options and adds the wrapper service
	Named bool
	// Interactive allows asking questions, otherwise every required answer must be preset
	Interactive bool
}

type question struct {
	field    string
	flag     string
	text     string
	value    func(*Config) *string
	def      func(Config) string
	optional bool
	secret   bool
	named    bool
}

func noDefault(Config) string { return "" }

var questions = []question{
	{field: "name", flag: "name", text: "Mount name (e.g. media):", named: true,
		value: func(c *Config) *string { return &c.Name }, def: noDefault},
	{field: "share", flag: "share", text: "Remote share (//server/share):",
		value: func(c *Config) *string { return &c.Share }, def: noDefault},
	{field: "mountPoint", flag: "mount-point", text: "Local mount point (e.g. /mnt/share):",
		value: func(c *Config) *string { return &c.MountPoint }, def: noDefault},
	{field: "username", flag: "username", text: "Username:",
		value: func(c *Config) *string { return &c.Username }, def: noDefault},
	{field: "password", flag: "password-file", text: "Password:", secret: true,
		value: func(c *Config) *string { return &c.Password }, def: noDefault},
	{field: "domain", flag: "domain", text: "Domain (leave empty for none):", optional: true,
		value: func(c *Config) *string { return &c.Domain }, def: func(d Config) string { return d.Domain }},
	{field: "smbVersion", flag: "smb-version", text: "SMB version:",
		value: func(c *Config) *string { return &c.SMBVersion }, def: func(d Config) string { return d.SMBVersion }},
	{field: "options", flag: "options", text: "Extra mount options (comma separated, leave empty for none):", optional: true, named: true,
		value: func(c *Config) *string { return &c.Options }, def: func(d Config) string { return d.Options }},
}

// Collect asks for every answer missing from the request and returns a validated Config
func Collect(a prompt.Asker, req Request) (Config, error) {
	c := req.Preset
	c.Wrapper = req.Named

	for _, q := range questions {
		if q.named && !req.Named {
			continue
		}
		v := q.value(&c)
		if *v != "" {
			if err := ValidateField(q.field, *v); err != nil {
				return c, errors.Wrapf(err, "--%s", q.flag)
			}
			continue
		}
		def := q.def(req.Defaults)
		if !req.Interactive {
			if def == "" && !q.optional {
				return c, errors.Errorf("%s is required: pass --%s or run interactively", q.field, q.flag)
			}
			*v = def
			continue
		}

		answer, err := ask(a, q, def)
		if err != nil {
			return c, err
		}
		*v = answer
	}

	return Complete(c, req.Defaults)
}

// Complete fills the settings c leaves empty from d, cleans the mount point,
// derives a missing name from it and validates the result.
func Complete(c Config, d Config) (Config, error) {
	fillDefaults(&c, d)
	if c.MountPoint != "" {
		c.MountPoint = path.Clean(c.MountPoint)
	}
	if c.Name == "" {
		c.Name = NameFromMountPoint(c.MountPoint)
		klog.Infof("mount name %q derived from %s", c.Name, c.MountPoint)
	}

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func ask(a prompt.Asker, q question, def string) (string, error) {
	validate := func(s string) error {
		if s == "" && q.optional {
			return nil
		}
		return ValidateField(q.field, s)
	}
	if q.secret {
		p, err := a.AskForPasswordValue(q.text)
		if err != nil {
			return "", err
		}
		return p, validate(p)
	}
	return a.AskForValidatedValue(q.text, def, validate)
}

func fillDefaults(c *Config, d Config) {
	if c.Domain == "" {
		c.Domain = d.Domain
	}
	if c.SMBVersion == "" {
		c.SMBVersion = d.SMBVersion
	}
	if c.Options == "" {
		c.Options = d.Options
	}
	uid, gid := DefaultOwner()
	if c.UID == "" {
		c.UID = d.UID
	}
	if c.UID == "" {
		c.UID = uid
	}
	if c.GID == "" {
		c.GID = d.GID
	}
	if c.GID == "" {
		c.GID = gid
	}
	if c.FileMode == "" {
		c.FileMode = d.FileMode
	}
	if c.DirMode == "" {
		c.DirMode = d.DirMode
	}
}
