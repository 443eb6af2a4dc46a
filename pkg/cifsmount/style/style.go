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

// Package style provides the console prefixes used by cifsmount output.
package style

import (
	"strings"
)

var (
	// LowBullet is a bullet-point prefix for Low-fi mode
	LowBullet = "* "
	// LowIndent is an indented prefix for Low-fi mode
	LowIndent = "  - "
	// LowWarning is a warning prefix for Low-fi mode
	LowWarning = "! "
	// LowError is an error prefix for Low-fi mode
	LowError = "X "
	// Indented is how far to indent unstyled text
	Indented = "    "
)

// Options describes a style
type Options struct {
	// Prefix is a string to place in the beginning of a message
	Prefix string
	// LowPrefix is the 7-bit compatible prefix we fallback to for less-awesome terminals
	LowPrefix string
	// OmitNewline omits a newline at the end of a message.
	OmitNewline bool
}

// Config is a map of style name to style struct
// For consistency, ensure that emojis added render with the same width across platforms.
var Config = map[Enum]Options{
	Celebrate:     {Prefix: "🎉  "},
	Check:         {Prefix: "✅  "},
	Command:       {Prefix: "    ▪ ", LowPrefix: LowIndent},
	Confused:      {Prefix: "😕  "},
	Deleted:       {Prefix: "💀  "},
	Documentation: {Prefix: "📘  "},
	DryRun:        {Prefix: "🌵  "},
	Empty:         {Prefix: "", LowPrefix: ""},
	Enabling:      {Prefix: "🔌  "},
	Failure:       {Prefix: "❌  ", LowPrefix: LowError},
	Fatal:         {Prefix: "💣  ", LowPrefix: LowError},
	Happy:         {Prefix: "😄  "},
	Issue:         {Prefix: "    ▪ ", LowPrefix: LowIndent},
	Issues:        {Prefix: "⁉️   "},
	KnownIssue:    {Prefix: "🧯  ", LowPrefix: LowError},
	LogEntry:      {Prefix: "    "},
	Notice:        {Prefix: "📌  "},
	Option:        {Prefix: "    ▪ ", LowPrefix: LowIndent},
	Permissions:   {Prefix: "🔑  "},
	Ready:         {Prefix: "🏄  "},
	Sad:           {Prefix: "😿  "},
	Shrug:         {Prefix: "🤷  "},
	Sparkle:       {Prefix: "✨  "},
	Stopped:       {Prefix: "🛑  "},
	Success:       {Prefix: "✅  "},
	ThumbsUp:      {Prefix: "👍  "},
	Tip:           {Prefix: "💡  "},
	URL:           {Prefix: "👉  ", LowPrefix: LowIndent},
	Usage:         {Prefix: "💡  "},
	Waiting:       {Prefix: "⌛  "},
	Warning:       {Prefix: "❗  ", LowPrefix: LowWarning},

	// Specialized purpose styles
	Copying:      {Prefix: "✨  "},
	Installing:   {Prefix: "📦  "},
	MountOptions: {Prefix: "💾  "},
	Mounting:     {Prefix: "📁  "},
	Prompt:       {Prefix: "❓  ", LowPrefix: "? "},
	Provisioner:  {Prefix: "ℹ️  "},
	Unmount:      {Prefix: "🔥  "},
	Verifying:    {Prefix: "🤔  "},
}

// LowPrefix returns a 7-bit compatible prefix for a style
func LowPrefix(s Options) string {
	if s.LowPrefix != "" {
		return s.LowPrefix
	}
	if strings.HasPrefix(s.Prefix, "  ") {
		return LowIndent
	}
	return LowBullet
}
