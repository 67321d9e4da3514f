// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try provides helpers for composing deferred error handling.
package try

import (
	"errors"
	"fmt"
	"io"
)

// PanicError wraps a non-error value recovered from a panic.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// Recover recovers any panic in the surrounding function and joins it, as an
// error, with the error the surrounding function is already returning.
func Recover(err *error) {
	v := recover()
	if v == nil {
		return
	}

	rerr, ok := v.(error)
	if !ok {
		rerr = PanicError{Value: v}
	}
	*err = errors.Join(*err, rerr)
}

// CloseError wraps any error returned while closing a resource.
type CloseError struct {
	Cause error
}

// Error implements the error interface.
func (e CloseError) Error() string {
	return fmt.Sprintf("failed to close: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e CloseError) Unwrap() error {
	return e.Cause
}

// Close closes c and joins any close failure with the error the surrounding
// function is returning. A nil c is ignored, which keeps call sites free of
// their own nil checks.
func Close(err *error, c io.Closer) {
	if c == nil {
		return
	}

	cerr := c.Close()
	if cerr == nil {
		return
	}
	*err = errors.Join(*err, CloseError{Cause: cerr})
}
