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
	"fmt"
	"sort"
	"strings"
)

// ParseOptions splits a key[=value],... list into a map. Keys without a value map to "".
func ParseOptions(s string) map[string]string {
	opts := map[string]string{}
	for _, o := range strings.Split(s, ",") {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		kv := strings.SplitN(o, "=", 2)
		if len(kv) == 1 {
			opts[kv[0]] = ""
			continue
		}
		opts[kv[0]] = kv[1]
	}
	return opts
}

// Options returns the mount option string of c, given the path of its credentials file
func Options(c Config, credentials string) string {
	options := map[string]string{
		"credentials": credentials,
		"iocharset":   "utf8",
		"file_mode":   c.FileMode,
		"dir_mode":    c.DirMode,
		"_netdev":     "",
		"nofail":      "",
	}
	if c.UID != "" {
		options["uid"] = c.UID
	}
	if c.GID != "" {
		options["gid"] = c.GID
	}
	if c.SMBVersion != "" && c.SMBVersion != "default" {
		options["vers"] = c.SMBVersion
	}

	// Copy in all of the user-supplied keys and values
	for k, v := range ParseOptions(c.Options) {
		if reservedOptions[strings.ToLower(k)] {
			continue
		}
		options[k] = v
	}

	// Convert everything into a sorted list so the unit renders the same every time
	opts := []string{}
	for k, v := range options {
		// Mount option with no value, such as "nofail"
		if v == "" {
			opts = append(opts, k)
			continue
		}
		opts = append(opts, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(opts)
	return strings.Join(opts, ",")
}
