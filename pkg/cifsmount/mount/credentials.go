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
	"bytes"
	"fmt"
)

// Credentials renders the file mount.cifs reads through the credentials= option
func Credentials(c Config) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "username=%s\n", c.Username)
	fmt.Fprintf(&b, "password=%s\n", c.Password)
	if c.Domain != "" {
		fmt.Fprintf(&b, "domain=%s\n", c.Domain)
	}
	return b.Bytes()
}
