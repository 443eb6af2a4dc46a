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

// Package inventory reads back the mounts cifsmount manages from the unit directory.
package inventory

import (
	"os"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"k8s.io/klog/v2"

	"github.com/cifsmount/cifsmount/pkg/cifsmount/mount"
	"github.com/cifsmount/cifsmount/pkg/cifsmount/unit"
)

var (
	// ErrNotFound is returned when no managed mount matches
	ErrNotFound = errors.New("mount not found")
	// ErrNameConflict is returned when a name or mount point is already taken by another mount
	ErrNameConflict = errors.New("name conflict")
)

// Entry is a managed mount as found on disk
type Entry struct {
	Name        string
	Share       string
	MountPoint  string
	Options     string
	Credentials string
	// Unit is the .mount unit name
	Unit string
	// Wrapper is the friendly service name, empty if it has none
	Wrapper string
}

// Config returns the fields of the mount needed to operate on its units and files
func (e Entry) Config() mount.Config {
	return mount.Config{
		Name:       e.Name,
		Share:      e.Share,
		MountPoint: e.MountPoint,
		Wrapper:    e.Wrapper != "",
	}
}

// Units returns the unit names of the entry, the mount unit first
func (e Entry) Units() []string {
	u := []string{e.Unit}
	if e.Wrapper != "" {
		u = append(u, e.Wrapper)
	}
	return u
}

// List returns the managed mounts found in dir, sorted by name
func List(fs afero.Fs, dir string) ([]Entry, error) {
	files, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "read %s", dir)
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".mount") {
			continue
		}
		p := path.Join(dir, f.Name())
		data, err := afero.ReadFile(fs, p)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", p)
		}
		info, err := unit.Parse(data)
		if err != nil {
			klog.Warningf("skipping %s: %v", p, err)
			continue
		}
		if !info.Managed() {
			continue
		}
		e := Entry{
			Name:        info.Name,
			Share:       info.What,
			MountPoint:  info.Where,
			Options:     info.Options,
			Credentials: info.Credentials,
			Unit:        f.Name(),
		}
		w := unit.WrapperName(info.Name)
		if ok, _ := afero.Exists(fs, path.Join(dir, w)); ok {
			e.Wrapper = w
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Find returns the entry matching key, which may be a mount name, a mount
// point or one of its unit names.
func Find(entries []Entry, key string) (Entry, error) {
	for _, e := range entries {
		if e.Name == key || e.Unit == key || (e.Wrapper != "" && e.Wrapper == key) {
			return e, nil
		}
	}
	if strings.HasPrefix(key, "/") {
		mp := path.Clean(key)
		for _, e := range entries {
			if path.Clean(e.MountPoint) == mp {
				return e, nil
			}
		}
	}
	return Entry{}, errors.Wrap(ErrNotFound, key)
}

// CheckConflict fails when c would take over the name or the mount point of
// another managed mount. Reconfiguring the same name at the same mount point
// is allowed.
func CheckConflict(entries []Entry, c mount.Config) error {
	mp := path.Clean(c.MountPoint)
	for _, e := range entries {
		same := path.Clean(e.MountPoint) == mp
		switch {
		case e.Name == c.Name && !same:
			return errors.Wrapf(ErrNameConflict, "%q already mounts %s at %s", e.Name, e.Share, e.MountPoint)
		case e.Name != c.Name && same:
			return errors.Wrapf(ErrNameConflict, "%s is already managed as %q", e.MountPoint, e.Name)
		}
	}
	return nil
}

// KeepWrapper turns on the wrapper service of c when the mount it reconfigures
// already has one, so the old service is rewritten rather than orphaned.
func KeepWrapper(entries []Entry, c mount.Config) mount.Config {
	mp := path.Clean(c.MountPoint)
	for _, e := range entries {
		if e.Name == c.Name && path.Clean(e.MountPoint) == mp && e.Wrapper != "" {
			if !c.Wrapper {
				klog.Infof("keeping %s of %q", e.Wrapper, e.Name)
			}
			c.Wrapper = true
		}
	}
	return c
}
