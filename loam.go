// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loam

import (
	"os"
	"sort"
	"strings"

	"github.com/z5labs/loam/console"
	"github.com/z5labs/loam/internal/ini"
	"github.com/z5labs/loam/internal/try"
)

// Store holds the run parameters of a process as a flat mapping from
// lower-cased keys to raw string values.
//
// A Store is plain mutable state with no internal locking. Every operation
// blocks its caller and concurrent use is unsupported.
type Store struct {
	rootFile  string
	localRoot string

	// nil until the first successful Load attaches the store.
	entries map[string]string

	console      console.Console
	requestLimit int
}

// Option configures a Store.
type Option func(*Store)

// WithLocalRoot sets the root path that relative path values are rewritten
// against. A trailing separator is ensured. An empty path leaves the store
// without a local root.
func WithLocalRoot(path string) Option {
	return func(s *Store) {
		if path == "" {
			return
		}
		if !strings.HasSuffix(path, "/") {
			path += "/"
		}
		s.localRoot = path
	}
}

// WithConsole sets the console the request accessors prompt through.
// The default is console.Stdio().
func WithConsole(c console.Console) Option {
	return func(s *Store) {
		s.console = c
	}
}

// WithRequestLimit bounds the retry loops of the request accessors to n
// attempts. The default of 0 retries forever, which suits interactive use
// but not automation.
func WithRequestLimit(n int) Option {
	return func(s *Store) {
		s.requestLimit = n
	}
}

// New returns an unattached Store. Every accessor fails with ErrNotLoaded
// until Load attaches it to a parameter file.
func New(opts ...Option) *Store {
	s := &Store{
		console: console.Stdio(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// keyPart returns the text before the first space of a lookup string, which
// may carry a free-text description after it.
func keyPart(s string) string {
	if i := strings.IndexByte(s, ' '); i != -1 {
		return s[:i]
	}
	return s
}

// keyOf normalizes a lookup string to the stored key form.
func keyOf(s string) string {
	return strings.ToLower(keyPart(s))
}

func (s *Store) mustBeLoaded() {
	if s.entries == nil {
		panic(ErrNotLoaded)
	}
}

// Loaded reports whether the store is attached to a parameter file.
func (s *Store) Loaded() bool {
	return s.entries != nil
}

// Root returns the path of the root parameter file, or "" while the store
// is unattached.
func (s *Store) Root() string {
	return s.rootFile
}

// IsDefined reports whether key has a value. It panics with ErrNotLoaded
// on an unattached store.
func (s *Store) IsDefined(key string) bool {
	s.mustBeLoaded()
	_, ok := s.entries[keyOf(key)]
	return ok
}

// Set installs value for key, overwriting any prior value. Unlike loading
// and Add, the key is stored exactly as given, without case folding. It
// panics with ErrNotLoaded on an unattached store.
func (s *Store) Set(key, value string) {
	s.mustBeLoaded()
	s.entries[key] = value
}

// Add installs value for key unless the key is already defined, in which
// case nothing happens at all. A fresh value is recorded in memory and
// appended as an assignment line to the root parameter file, the only
// durable side effect the store performs.
func (s *Store) Add(key, value string) (err error) {
	if s.entries == nil || s.rootFile == "" {
		return ErrNotLoaded
	}
	if _, ok := s.entries[keyOf(key)]; ok {
		return nil
	}
	s.entries[keyOf(key)] = value

	f, err := os.OpenFile(s.rootFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer try.Close(&err, f)

	_, err = f.WriteString(ini.Line(keyPart(key), value))
	return err
}

// Remove deletes key from memory. The backing file is never touched, so a
// removed parameter returns on the next Load. It panics with ErrNotLoaded
// on an unattached store.
func (s *Store) Remove(key string) {
	s.mustBeLoaded()
	delete(s.entries, keyOf(key))
}

// Parameters returns the defined keys in sorted order. It panics with
// ErrNotLoaded on an unattached store.
func (s *Store) Parameters() []string {
	s.mustBeLoaded()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset detaches the store, dropping all entries and the root file. The
// local root survives, so a reset store can be reloaded with the same path
// rewriting in place.
func (s *Store) Reset() {
	s.rootFile = ""
	s.entries = nil
}
