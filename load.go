// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loam

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/z5labs/loam/fileutil"
	"github.com/z5labs/loam/internal/ini"
	"github.com/z5labs/loam/internal/try"
)

// Load returns a new Store attached to the named parameter file.
func Load(path string, opts ...Option) (*Store, error) {
	s := New(opts...)
	if err := s.Load(path); err != nil {
		return nil, err
	}
	return s, nil
}

// Load attaches the store to the named root parameter file, replacing
// whatever was loaded before. Loading the same root path again is a no-op.
//
// Assignments are installed in file order, descending inline into files
// named by the reserved include key, so for duplicate keys the last
// definition of the depth-first traversal wins. A missing root file is a
// FileNotFoundError; a missing included file surfaces as the underlying
// I/O error. On failure the store is left unattached.
func (s *Store) Load(path string) (err error) {
	if s.entries != nil && filepath.Clean(path) == filepath.Clean(s.rootFile) {
		return nil
	}

	s.entries = make(map[string]string)
	s.rootFile = path
	defer func() {
		if err != nil {
			s.entries = nil
			s.rootFile = ""
		}
	}()

	r, err := fileutil.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileNotFoundError{Path: path, cause: err}
		}
		return err
	}
	defer try.Close(&err, r)

	return s.loadLines(r, filepath.Dir(path))
}

// LoadFirst searches the candidate directories for a file called name and
// attaches the store to the unique match. Finding the name in more than
// one directory is an error. Finding it nowhere is not: the store is left
// as it was and loaded reports false, so callers decide for themselves
// whether an absent file matters.
func (s *Store) LoadFirst(name string, dirs ...string) (loaded bool, err error) {
	var path string
	var foundIn []string
	for _, dir := range dirs {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			path = p
			foundIn = append(foundIn, dir)
		}
	}
	if len(foundIn) > 1 {
		return false, DuplicateFileError{Name: name, Dirs: foundIn}
	}
	if len(foundIn) == 0 {
		return false, nil
	}
	if err := s.Load(path); err != nil {
		return false, err
	}
	return true, nil
}

// load reads an included file. Unlike the root form, open failures
// propagate untouched.
func (s *Store) load(path string) (err error) {
	r, err := fileutil.Open(path)
	if err != nil {
		return err
	}
	defer try.Close(&err, r)

	return s.loadLines(r, filepath.Dir(path))
}

func (s *Store) loadLines(r *fileutil.Reader, dir string) error {
	for r.Scan() {
		key, value, ok := ini.Parse(r.Text())
		if !ok {
			continue
		}
		if !strings.EqualFold(key, "include") {
			s.entries[strings.ToLower(key)] = value
			continue
		}

		inc := value
		if !filepath.IsAbs(inc) {
			inc = filepath.Join(dir, inc)
		}
		// Including the root again short-circuits. Deeper cycles are the
		// file author's problem, as they always were.
		if filepath.Clean(inc) == filepath.Clean(s.rootFile) {
			continue
		}
		if err := s.load(inc); err != nil {
			return err
		}
	}
	return r.Err()
}
