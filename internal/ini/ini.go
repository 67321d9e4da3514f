// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package ini implements the line grammar for run parameter files.
//
// A parameter file is line oriented. Each line either matches the
// assignment grammar below or is ignored entirely, which is how comments,
// section headers and blank lines are skipped without any dedicated
// syntax for them.
package ini

import (
	"regexp"
	"strings"
)

// linePattern is the assignment grammar: optional leading spaces, a key of
// word characters, spaces, '=', spaces and the rest of the line as value.
var linePattern = regexp.MustCompile(`^ *(\w+) *= *(.*)$`)

// Parse matches line against the assignment grammar. The returned value is
// trimmed and unquoted. ok reports whether the line was an assignment at all.
func Parse(line string) (key, value string, ok bool) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], Unquote(strings.TrimSpace(m[2])), true
}

// Unquote strips one pair of surrounding double quotes from s. A value with
// only a leading or only a trailing quote is returned unchanged.
func Unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

// Line renders an assignment in the canonical form written back to
// parameter files.
func Line(key, value string) string {
	return key + " = " + value + "\n"
}
