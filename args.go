// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loam

import (
	"regexp"
	"strings"
)

// BoolArg reports whether one of the named switches is turned on in a
// command line. A switch is on when it appears at all, unless it is
// directly followed by one of "off", "0" or "false", or directly preceded
// by "no".
func BoolArg(args []string, names ...string) bool {
	arg := " "
	for _, a := range args {
		arg += a + " "
	}

	pattern := `\W(` + strings.Join(names, "|") + `)\W`
	m := regexp.MustCompile(pattern).FindStringIndex(arg)
	if m == nil {
		return false
	}

	next := strings.ToLower(strings.TrimSpace(arg[m[1]:]))
	if i := strings.IndexByte(next, ' '); i != -1 {
		next = next[:i]
	}
	switch next {
	case "off", "0", "false":
		return false
	}

	previous := strings.ToLower(strings.TrimSpace(arg[:m[0]]))
	if i := strings.LastIndexByte(previous, ' '); i != -1 {
		previous = previous[i+1:]
	}
	return previous != "no"
}
