// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loam

import (
	"errors"
	"log/slog"
	"os"
)

// Require checks that every spec names a defined parameter. A spec is a
// "key description" string: only the text before the first space is looked
// up, the rest makes the report readable. All failing specs are collected
// into one MissingParametersError rather than stopping at the first.
func (s *Store) Require(specs ...string) error {
	if s.entries == nil {
		return ErrNotLoaded
	}

	var missing []string
	for _, spec := range specs {
		if !s.IsDefined(spec) {
			missing = append(missing, spec)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return MissingParametersError{RootFile: s.rootFile, Specs: missing}
}

// exit is swapped out by tests.
var exit = os.Exit

// Ensure is Require for command line entry points: when parameters are
// missing it reports the aggregated error and terminates the process,
// since such callers have no sensible continuation. Calling it on an
// unattached store panics with ErrNotLoaded.
func (s *Store) Ensure(specs ...string) {
	err := s.Require(specs...)
	if err == nil {
		return
	}
	if errors.Is(err, ErrNotLoaded) {
		panic(err)
	}

	slog.Error(err.Error())
	exit(1)
}
