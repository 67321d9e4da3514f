// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loam

import (
	"errors"
	"strconv"
	"strings"

	"github.com/z5labs/loam/fileutil"
)

// GetOrRequest returns the value for key if defined; otherwise it prompts
// with description on the store's console and returns the answer without
// persisting it anywhere.
func (s *Store) GetOrRequest(key, description string) (string, error) {
	if s.entries == nil {
		return "", ErrNotLoaded
	}
	if v, ok := s.entries[keyOf(key)]; ok {
		return v, nil
	}

	s.console.Print(description)
	return s.console.ReadLine()
}

// GetOrRequestAndAdd is GetOrRequest with the answer persisted through
// Add, so the next run no longer has to ask.
func (s *Store) GetOrRequestAndAdd(key, description string) (string, error) {
	v, err := s.GetOrRequest(key, description)
	if err != nil {
		return "", err
	}
	if err := s.Add(key, v); err != nil {
		return "", err
	}
	return v, nil
}

// exhausted reports whether the retry loops must give up after the attempt
// that just failed. A limit of 0 retries forever.
func (s *Store) exhausted(attempt int) bool {
	return s.requestLimit > 0 && attempt+1 >= s.requestLimit
}

var errNotYesOrNo = errors.New("expected one of true, yes, false or no")

// GetOrRequestBool returns the value for key as a boolean, prompting with
// description while the value at hand is none of true, yes, false or no.
// A defined value that fails this reading is removed before re-prompting,
// so a bad stored answer does not wedge the loop.
func (s *Store) GetOrRequestBool(key, description string) (bool, error) {
	for attempt := 0; ; attempt++ {
		v, err := s.GetOrRequest(key, description)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(v) {
		case "true", "yes":
			return true, nil
		case "false", "no":
			return false, nil
		}

		s.Remove(key)
		if s.exhausted(attempt) {
			return false, MalformedValueError{Key: key, Value: v, Cause: errNotYesOrNo}
		}
	}
}

// GetOrRequestAndAddBool is GetOrRequestBool with the answer persisted
// through Add, normalized to yes or no.
func (s *Store) GetOrRequestAndAddBool(key, description string) (bool, error) {
	v, err := s.GetOrRequestBool(key, description)
	if err != nil {
		return false, err
	}

	answer := "no"
	if v {
		answer = "yes"
	}
	if err := s.Add(key, answer); err != nil {
		return false, err
	}
	return v, nil
}

// GetOrRequestInt returns the value for key as an int, prompting with
// description while the value at hand does not parse. A defined value that
// fails to parse is removed before re-prompting.
func (s *Store) GetOrRequestInt(key, description string) (int, error) {
	for attempt := 0; ; attempt++ {
		v, err := s.GetOrRequest(key, description)
		if err != nil {
			return 0, err
		}

		n, perr := strconv.Atoi(v)
		if perr == nil {
			return n, nil
		}

		s.Remove(key)
		if s.exhausted(attempt) {
			return 0, MalformedValueError{Key: key, Value: v, Cause: perr}
		}
	}
}

// GetOrRequestFile returns the value for key as a fileutil.File, prompting
// with description while the named file does not exist. A defined value
// naming a missing file is removed before re-prompting.
func (s *Store) GetOrRequestFile(key, description string) (fileutil.File, error) {
	for attempt := 0; ; attempt++ {
		v, err := s.GetOrRequest(key, description)
		if err != nil {
			return "", err
		}

		f := fileutil.File(v)
		if f.Exists() {
			return f, nil
		}

		s.console.Print("File not found " + v)
		s.Remove(key)
		if s.exhausted(attempt) {
			return "", FileNotFoundError{Path: v}
		}
	}
}
