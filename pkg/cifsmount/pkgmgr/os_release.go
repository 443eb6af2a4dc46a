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

package pkgmgr

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"k8s.io/klog/v2"
)

// The /etc/os-release file contains operating system identification data
// See http://www.freedesktop.org/software/systemd/man/os-release.html for more details
var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// OsRelease reflects values in /etc/os-release
// Values in this struct must always be string
// or the reflection will not work properly.
type OsRelease struct {
	Name       string `osr:"NAME"`
	Version    string `osr:"VERSION"`
	ID         string `osr:"ID"`
	IDLike     string `osr:"ID_LIKE"`
	PrettyName string `osr:"PRETTY_NAME"`
	VersionID  string `osr:"VERSION_ID"`
	HomeURL    string `osr:"HOME_URL"`
}

// String returns the most readable name of the distribution
func (osr *OsRelease) String() string {
	if osr.PrettyName != "" {
		return osr.PrettyName
	}
	if osr.Name != "" {
		return strings.TrimSpace(osr.Name + " " + osr.Version)
	}
	return "unknown Linux"
}

func stripQuotes(val string) string {
	if len(val) > 1 && (val[0] == '"' || val[0] == '\'') && val[len(val)-1] == val[0] {
		return val[1 : len(val)-1]
	}
	return val
}

func (osr *OsRelease) setIfPossible(key, val string) error {
	v := reflect.ValueOf(osr).Elem()
	for i := 0; i < v.NumField(); i++ {
		fieldValue := v.Field(i)
		fieldType := v.Type().Field(i)
		originalName := fieldType.Tag.Get("osr")
		if key == originalName && fieldValue.Kind() == reflect.String {
			fieldValue.SetString(val)
			return nil
		}
	}
	return fmt.Errorf("couldn't set key %s, no corresponding struct field found", key)
}

func parseLine(osrLine string) (string, string, error) {
	osrLine = strings.TrimSpace(osrLine)
	if osrLine == "" || strings.HasPrefix(osrLine, "#") {
		return "", "", nil
	}

	vals := strings.SplitN(osrLine, "=", 2)
	if len(vals) != 2 {
		return "", "", fmt.Errorf("expected %s to split by '=' char into two strings, instead got %d strings", osrLine, len(vals))
	}
	key := vals[0]
	val := stripQuotes(vals[1])
	return key, val, nil
}

// ParseOsRelease fills osr from the contents of an os-release file
func (osr *OsRelease) ParseOsRelease(osReleaseContents []byte) error {
	r := bytes.NewReader(osReleaseContents)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, val, err := parseLine(scanner.Text())
		if err != nil {
			klog.Warningf("got an invalid line error parsing os-release: %s", err)
			continue
		}
		if key == "" {
			continue
		}
		if err := osr.setIfPossible(key, val); err != nil {
			klog.V(3).Info(err)
		}
	}
	return scanner.Err()
}

// NewOsRelease parses the contents of an os-release file
func NewOsRelease(contents []byte) (*OsRelease, error) {
	osr := &OsRelease{}
	if err := osr.ParseOsRelease(contents); err != nil {
		return nil, err
	}
	return osr, nil
}

// ReadOsRelease reads the first os-release file present on fs
func ReadOsRelease(fs afero.Fs) (*OsRelease, error) {
	for _, p := range osReleasePaths {
		b, err := afero.ReadFile(fs, p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "read %s", p)
		}
		return NewOsRelease(b)
	}
	return nil, errors.Errorf("none of %s exist", strings.Join(osReleasePaths, ", "))
}
