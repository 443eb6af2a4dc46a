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

// Package assets describes files cifsmount places on the host.
package assets

import (
	"bytes"
	"io"
	"path"
)

// CopyableFile is something that can be copied onto the host
type CopyableFile interface {
	io.Reader
	GetLength() int
	GetSourcePath() string
	GetTargetDir() string
	GetTargetName() string
	GetPermissions() string
	// Sensitive files never have their contents echoed to the console
	Sensitive() bool
}

// BaseAsset is the base asset class
type BaseAsset struct {
	SourcePath  string
	TargetDir   string
	TargetName  string
	Permissions string
	Secret      bool
}

// GetSourcePath returns asset name
func (b *BaseAsset) GetSourcePath() string {
	return b.SourcePath
}

// GetTargetDir returns target dir
func (b *BaseAsset) GetTargetDir() string {
	return b.TargetDir
}

// GetTargetName returns target name
func (b *BaseAsset) GetTargetName() string {
	return b.TargetName
}

// GetPermissions returns permissions
func (b *BaseAsset) GetPermissions() string {
	return b.Permissions
}

// Sensitive reports whether the contents are secret
func (b *BaseAsset) Sensitive() bool {
	return b.Secret
}

// TargetPath returns the full destination of a file
func TargetPath(f CopyableFile) string {
	return path.Join(f.GetTargetDir(), f.GetTargetName())
}

// MemoryAsset is a memory-based asset
type MemoryAsset struct {
	BaseAsset
	reader io.Reader
	data   []byte
	length int
}

// GetLength returns length
func (m *MemoryAsset) GetLength() int {
	return m.length
}

// Read reads the asset
func (m *MemoryAsset) Read(p []byte) (int, error) {
	return m.reader.Read(p)
}

// Bytes returns the full contents regardless of how much has been read
func (m *MemoryAsset) Bytes() []byte {
	return m.data
}

// NewMemoryAssetTarget creates a new MemoryAsset, with target
func NewMemoryAssetTarget(d []byte, targetPath, permissions string) *MemoryAsset {
	return NewMemoryAsset(d, path.Dir(targetPath), path.Base(targetPath), permissions)
}

// NewMemoryAsset creates a new MemoryAsset
func NewMemoryAsset(d []byte, targetDir, targetName, permissions string) *MemoryAsset {
	return &MemoryAsset{
		BaseAsset: BaseAsset{
			SourcePath:  "memory",
			TargetDir:   targetDir,
			TargetName:  targetName,
			Permissions: permissions,
		},
		reader: bytes.NewReader(d),
		data:   d,
		length: len(d),
	}
}

// NewSecretAssetTarget creates a MemoryAsset whose contents must not be displayed
func NewSecretAssetTarget(d []byte, targetPath, permissions string) *MemoryAsset {
	m := NewMemoryAssetTarget(d, targetPath, permissions)
	m.Secret = true
	return m
}
