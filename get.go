// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loam

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/z5labs/loam/fileutil"
)

// Get returns the raw string value for key. With no default, an absent key
// is an UndefinedParameterError naming the root parameter file. With a
// default, the default stands in for an absent key.
//
// The key may carry a trailing description after its first space, which is
// ignored for the lookup but kept in error messages, so the same string
// can drive lookups, validation and prompting.
func (s *Store) Get(key string, def ...string) (string, error) {
	if s.entries == nil {
		return "", ErrNotLoaded
	}
	v, ok := s.entries[keyOf(key)]
	if !ok {
		if len(def) > 0 {
			return def[0], nil
		}
		return "", UndefinedParameterError{Key: key, RootFile: s.rootFile}
	}
	return v, nil
}

// defaulted runs the raw lookup, substituting the default only when the
// key is undefined. Malformed values keep failing even with a default.
func defaulted[T any](s *Store, key string, def []T, parse func(string) (T, error)) (T, error) {
	var zero T
	v, err := s.Get(key)
	if err != nil {
		var uerr UndefinedParameterError
		if errors.As(err, &uerr) && len(def) > 0 {
			return def[0], nil
		}
		return zero, err
	}

	t, perr := parse(v)
	if perr != nil {
		return zero, MalformedValueError{Key: key, Value: v, Cause: perr}
	}
	return t, nil
}

// GetInt returns the value for key parsed as an int.
func (s *Store) GetInt(key string, def ...int) (int, error) {
	return defaulted(s, key, def, strconv.Atoi)
}

// GetFloat32 returns the value for key parsed as a float32.
func (s *Store) GetFloat32(key string, def ...float32) (float32, error) {
	return defaulted(s, key, def, func(v string) (float32, error) {
		f, err := strconv.ParseFloat(v, 32)
		return float32(f), err
	})
}

// GetFloat64 returns the value for key parsed as a float64.
func (s *Store) GetFloat64(key string, def ...float64) (float64, error) {
	return defaulted(s, key, def, func(v string) (float64, error) {
		return strconv.ParseFloat(v, 64)
	})
}

// negatives holds the words read as false. Every other value, recognized
// or not, is true.
var negatives = map[string]struct{}{
	"inactive": {},
	"off":      {},
	"false":    {},
	"no":       {},
	"none":     {},
}

// GetBool returns the value for key read as a boolean. Only the fixed
// negative word set {inactive, off, false, no, none}, compared case
// insensitively, is false.
func (s *Store) GetBool(key string, def ...bool) (bool, error) {
	sdef := make([]string, 0, 1)
	if len(def) > 0 {
		if def[0] {
			sdef = append(sdef, "yes")
		} else {
			sdef = append(sdef, "no")
		}
	}

	v, err := s.Get(key, sdef...)
	if err != nil {
		return false, err
	}
	_, negative := negatives[strings.ToLower(v)]
	return !negative, nil
}

var listSeparator = regexp.MustCompile(`\s*,\s*`)

// GetList returns the value for key split on commas with optional
// surrounding whitespace. An undefined key yields a nil slice with a nil
// error, the "no list" answer, which is distinct from a defined empty
// value yielding one empty element.
func (s *Store) GetList(key string) ([]string, error) {
	if s.entries == nil {
		return nil, ErrNotLoaded
	}
	if !s.IsDefined(key) {
		return nil, nil
	}

	v, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	if v == "" {
		return []string{""}, nil
	}

	parts := listSeparator.Split(v, -1)
	// Trailing empty fields are dropped, matching the splitting the store
	// always had.
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts, nil
}

// GetPath returns the value for key rewritten against the local root.
// With no local root configured this is identical to Get. A supplied
// default is returned as is, never rewritten.
//
// The "./" form is replaced by the local root plus the value minus its
// first three bytes; the "../" form keeps its prefix and is merely
// prepended with the local root.
func (s *Store) GetPath(key string, def ...string) (string, error) {
	v, err := s.Get(key)
	if err != nil {
		var uerr UndefinedParameterError
		if errors.As(err, &uerr) && len(def) > 0 {
			return def[0], nil
		}
		return "", err
	}
	return s.rewritePath(v), nil
}

func (s *Store) rewritePath(p string) string {
	if s.localRoot == "" {
		return p
	}
	switch {
	case strings.HasPrefix(p, "./"):
		if len(p) < 3 {
			return s.localRoot
		}
		return s.localRoot + p[3:]
	case strings.HasPrefix(p, "../"):
		return s.localRoot + p
	}
	return p
}

// GetFile returns the value for key as a fileutil.File. The path is
// rewritten like GetPath; whether anything exists there is not checked.
func (s *Store) GetFile(key string, def ...string) (fileutil.File, error) {
	p, err := s.GetPath(key, def...)
	if err != nil {
		return "", err
	}
	return fileutil.File(p), nil
}
