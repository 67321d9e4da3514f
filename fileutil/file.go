// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package fileutil

import (
	"os"
	"path/filepath"
)

// File is a path value. It names a location without touching the file
// system, so a File may refer to something that does not exist yet.
type File string

// Path returns the path as a plain string.
func (f File) Path() string {
	return string(f)
}

// String implements fmt.Stringer.
func (f File) String() string {
	return string(f)
}

// Exists reports whether the path currently names anything on disk.
func (f File) Exists() bool {
	_, err := os.Stat(string(f))
	return err == nil
}

// Open opens the file for reading.
func (f File) Open() (*os.File, error) {
	return os.Open(string(f))
}

// Create creates or truncates the file.
func (f File) Create() (*os.File, error) {
	return os.Create(string(f))
}

// Dir returns the parent directory.
func (f File) Dir() File {
	return File(filepath.Dir(string(f)))
}

// Base returns the last element of the path.
func (f File) Base() string {
	return filepath.Base(string(f))
}
