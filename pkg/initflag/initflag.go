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

// Package initflag registers klog's flags and marks the go flag set parsed.
// Only main imports it: a parsed flag set stops "go test" from reading its own flags.
package initflag

import (
	"flag"

	"k8s.io/klog/v2"
)

func init() {
	klog.InitFlags(nil)
	// Workaround for "ERROR: logging before flag.Parse"
	if err := flag.CommandLine.Parse([]string{}); err != nil {
		klog.Warningf("failed to parse go flags: %v", err)
	}
}
