// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loam

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotLoaded occurs when any accessor runs before the store has been
// attached to a parameter file. It marks a usage error, distinct from a
// parameter simply being undefined.
var ErrNotLoaded = errors.New("loam: no parameter file has been loaded")

// FileNotFoundError occurs when the root parameter file does not exist. A
// missing included file is reported as the underlying I/O error instead.
type FileNotFoundError struct {
	Path string

	cause error
}

// Error implements the error interface.
func (e FileNotFoundError) Error() string {
	return fmt.Sprintf("parameter file %s was not found", e.Path)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e FileNotFoundError) Unwrap() error {
	return e.cause
}

// UndefinedParameterError occurs when a key has no value and no default
// was supplied.
type UndefinedParameterError struct {
	// Key is the lookup string exactly as the caller passed it, any
	// trailing description included.
	Key string

	// RootFile is always the root parameter file, even when the key was
	// expected to come from an included file.
	RootFile string
}

// Error implements the error interface.
func (e UndefinedParameterError) Error() string {
	return fmt.Sprintf("parameter %q is undefined in %s", e.Key, e.RootFile)
}

// MalformedValueError occurs when a defined value does not parse as the
// requested type. It is never converted into an UndefinedParameterError,
// so a supplied default covers absence only.
type MalformedValueError struct {
	Key   string
	Value string

	Cause error
}

// Error implements the error interface.
func (e MalformedValueError) Error() string {
	return fmt.Sprintf("parameter %q has malformed value %q: %s", e.Key, e.Value, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e MalformedValueError) Unwrap() error {
	return e.Cause
}

// DuplicateFileError occurs when LoadFirst finds the same file name in
// more than one candidate directory.
type DuplicateFileError struct {
	Name string
	Dirs []string
}

// Error implements the error interface.
func (e DuplicateFileError) Error() string {
	return fmt.Sprintf("parameter file %s occurs in more than one folder: %s", e.Name, strings.Join(e.Dirs, ", "))
}

// MissingParametersError aggregates every required parameter found
// undefined by a single Require call.
type MissingParametersError struct {
	RootFile string

	// Specs holds the failing requirement strings in full, descriptions
	// included, so the report stays readable.
	Specs []string
}

// Error implements the error interface.
func (e MissingParametersError) Error() string {
	var sb strings.Builder
	sb.WriteString("the following parameters are undefined in ")
	sb.WriteString(e.RootFile)
	for _, spec := range e.Specs {
		sb.WriteString("\n       ")
		sb.WriteString(spec)
	}
	return sb.String()
}
