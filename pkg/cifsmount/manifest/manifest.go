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

// Package manifest reads the YAML file given to "cifsmount apply".
//
// Example:
//
//	defaults:
//	  domain: CORP
//	  smbVersion: "3.1.1"
//	mounts:
//	- name: media
//	  share: //nas/media
//	  mountPoint: /srv/media
//	  username: alice
//	  passwordFile: media.pass
package manifest

import (
	"fmt"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/mount"
)

// Defaults apply to every mount that leaves the setting empty
type Defaults struct {
	Domain     string `json:"domain,omitempty"`
	SMBVersion string `json:"smbVersion,omitempty"`
	UID        string `json:"uid,omitempty"`
	GID        string `json:"gid,omitempty"`
	FileMode   string `json:"fileMode,omitempty"`
	DirMode    string `json:"dirMode,omitempty"`
	Options    string `json:"options,omitempty"`
}

// Mount is one entry of the manifest
type Mount struct {
	Name       string `json:"name"`
	Share      string `json:"share"`
	MountPoint string `json:"mountPoint"`
	Username   string `json:"username"`
	// Password and PasswordFile are mutually exclusive
	Password     string `json:"password,omitempty"`
	PasswordFile string `json:"passwordFile,omitempty"`
	Domain       string `json:"domain,omitempty"`
	SMBVersion   string `json:"smbVersion,omitempty"`
	UID          string `json:"uid,omitempty"`
	GID          string `json:"gid,omitempty"`
	FileMode     string `json:"fileMode,omitempty"`
	DirMode      string `json:"dirMode,omitempty"`
	Options      string `json:"options,omitempty"`
}

// Manifest lists the mounts to apply
type Manifest struct {
	Defaults Defaults `json:"defaults,omitempty"`
	Mounts   []Mount  `json:"mounts"`

	// dir resolves relative password files
	dir string
}

// Parse decodes a manifest, rejecting unknown keys
func Parse(data []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.UnmarshalStrict(data, m); err != nil {
		return nil, errors.Wrap(err, "parse manifest")
	}
	if err := checkKeys(data); err != nil {
		return nil, errors.Wrap(err, "parse manifest")
	}
	if len(m.Mounts) == 0 {
		return nil, errors.New("manifest lists no mounts")
	}
	return m, nil
}

// checkKeys rejects keys that differ from a field name only in case, which
// the JSON decoder behind yaml.UnmarshalStrict accepts.
func checkKeys(data []byte) error {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := matchKeys("manifest", raw, Manifest{}); err != nil {
		return err
	}
	if d, ok := raw["defaults"].(map[string]interface{}); ok {
		if err := matchKeys("defaults", d, Defaults{}); err != nil {
			return err
		}
	}
	ms, _ := raw["mounts"].([]interface{})
	for i, e := range ms {
		if em, ok := e.(map[string]interface{}); ok {
			if err := matchKeys(fmt.Sprintf("mounts[%d]", i), em, Mount{}); err != nil {
				return err
			}
		}
	}
	return nil
}

func matchKeys(where string, raw map[string]interface{}, v interface{}) error {
	known := map[string]bool{}
	t := reflect.TypeOf(v)
	for i := 0; i < t.NumField(); i++ {
		name := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
		if name != "" && name != "-" {
			known[name] = true
		}
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !known[k] {
			return errors.Errorf("unknown field %q in %s", k, where)
		}
	}
	return nil
}

// Load reads and parses the manifest at path
func Load(fs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrap(err, "read manifest")
	}
	m, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	m.dir = filepath.Dir(path)
	return m, nil
}

// Configs returns one validated named mount per entry. Settings an entry and
// the manifest defaults leave empty are taken from base.
func (m *Manifest) Configs(fs afero.Fs, base mount.Config) ([]mount.Config, error) {
	d := m.Defaults.merge(base)

	names := map[string]int{}
	points := map[string]int{}
	var cs []mount.Config
	for i, e := range m.Mounts {
		where := func(err error) error {
			return errors.Wrapf(err, "mounts[%d] (%s)", i, e.label())
		}

		pw, err := e.password(fs, m.dir)
		if err != nil {
			return nil, where(err)
		}
		c, err := mount.Complete(mount.Config{
			Name:       e.Name,
			Share:      e.Share,
			MountPoint: e.MountPoint,
			Username:   e.Username,
			Password:   pw,
			Domain:     e.Domain,
			SMBVersion: e.SMBVersion,
			UID:        e.UID,
			GID:        e.GID,
			FileMode:   e.FileMode,
			DirMode:    e.DirMode,
			Options:    e.Options,
			Wrapper:    true,
		}, d)
		if err != nil {
			return nil, where(err)
		}

		if j, ok := names[c.Name]; ok {
			return nil, where(errors.Errorf("name %q is also used by mounts[%d]", c.Name, j))
		}
		mp := filepath.Clean(c.MountPoint)
		if j, ok := points[mp]; ok {
			return nil, where(errors.Errorf("mount point %s is also used by mounts[%d]", mp, j))
		}
		names[c.Name] = i
		points[mp] = i
		cs = append(cs, c)
	}
	return cs, nil
}

func (d Defaults) merge(base mount.Config) mount.Config {
	pick := func(a, b string) string {
		if a != "" {
			return a
		}
		return b
	}
	return mount.Config{
		Domain:     pick(d.Domain, base.Domain),
		SMBVersion: pick(d.SMBVersion, base.SMBVersion),
		UID:        pick(d.UID, base.UID),
		GID:        pick(d.GID, base.GID),
		FileMode:   pick(d.FileMode, base.FileMode),
		DirMode:    pick(d.DirMode, base.DirMode),
		Options:    pick(d.Options, base.Options),
	}
}

func (e Mount) label() string {
	if e.Name != "" {
		return e.Name
	}
	if e.MountPoint != "" {
		return e.MountPoint
	}
	return "unnamed"
}

func (e Mount) password(fs afero.Fs, dir string) (string, error) {
	switch {
	case e.Password != "" && e.PasswordFile != "":
		return "", errors.New("password and passwordFile are mutually exclusive")
	case e.Password != "":
		return e.Password, nil
	case e.PasswordFile == "":
		return "", errors.New("password or passwordFile is required")
	}

	p := e.PasswordFile
	if !filepath.IsAbs(p) && dir != "" {
		p = filepath.Join(dir, p)
	}
	return ReadPasswordFile(fs, p)
}

// ReadPasswordFile returns the first line of the file at path
func ReadPasswordFile(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", errors.Wrap(err, "read password file")
	}
	pw := strings.SplitN(string(data), "\n", 2)[0]
	pw = strings.TrimSuffix(pw, "\r")
	if pw == "" {
		return "", errors.Errorf("password file %s is empty", path)
	}
	return pw, nil
}
