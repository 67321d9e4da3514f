// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package fileutil provides the small file helpers the rest of the module
// leans on: a path value type, line readers with transparent gzip and
// charset decoding, whole-file string I/O and a couple of checks over
// line-oriented data files.
package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/z5labs/loam/internal/try"
)

// ReadString returns the whole content of the named file. Line breaks are
// normalized to "\n" and, unless the file is empty, the result ends in
// exactly one "\n".
func ReadString(path string) (s string, err error) {
	r, err := Open(path)
	if err != nil {
		return "", err
	}
	defer try.Close(&err, r)

	var sb strings.Builder
	for r.Scan() {
		sb.WriteString(r.Text())
		sb.WriteByte('\n')
	}
	return sb.String(), r.Err()
}

// WriteString writes content to the named file, replacing anything there.
func WriteString(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

// OrderViolation reports the first out-of-order line of a file checked
// with VerifySorted.
type OrderViolation struct {
	// Line is the 1-based number of the offending line.
	Line int

	Previous string
	Current  string
}

// VerifySorted checks that the lines of the named file are in lexicographic
// order, descending instead of ascending when descending is set. It returns
// a nil violation when the file is ordered.
func VerifySorted(path string, descending bool) (v *OrderViolation, err error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer try.Close(&err, r)

	var prev string
	for n := 1; r.Scan(); n++ {
		curr := r.Text()
		if n > 1 {
			if (!descending && prev > curr) || (descending && prev < curr) {
				return &OrderViolation{Line: n, Previous: prev, Current: curr}, nil
			}
		}
		prev = curr
	}
	return nil, r.Err()
}

// AllFiles lists every regular file below root, walking directories
// recursively in lexical order.
func AllFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
