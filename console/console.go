// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package console abstracts the line-oriented prompting used when a run
// parameter is requested from the user instead of a file.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Console is the narrow surface the interactive accessors talk to.
type Console interface {
	// Print shows msg to the user, on its own line.
	Print(msg string)

	// ReadLine blocks for one line of input, returned without its
	// terminator. Closed input reports io.EOF.
	ReadLine() (string, error)
}

type readWriter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Console reading lines from r and printing to w.
func New(r io.Reader, w io.Writer) Console {
	return &readWriter{in: bufio.NewReader(r), out: w}
}

// Stdio returns a Console on the process's stdin and stdout.
func Stdio() Console {
	return New(os.Stdin, os.Stdout)
}

func (c *readWriter) Print(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *readWriter) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}

type script struct {
	answers []string
}

// Script returns a Console that answers every prompt from a fixed list and
// reports io.EOF once the answers run out. It exists for tests and other
// non-interactive callers of the request accessors.
func Script(answers ...string) Console {
	return &script{answers: answers}
}

func (c *script) Print(msg string) {}

func (c *script) ReadLine() (string, error) {
	if len(c.answers) == 0 {
		return "", io.EOF
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}
