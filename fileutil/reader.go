// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package fileutil

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/z5labs/loam/internal/try"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Lines up to 16 MiB are supported, matching the sizing of the original
// buffered tooling this package replaces.
const maxLineSize = 16 << 20

// UnknownCharsetError occurs when a charset name cannot be resolved
// against the IANA registry.
type UnknownCharsetError struct {
	Charset string

	cause error
}

// Error implements the error interface.
func (e UnknownCharsetError) Error() string {
	return fmt.Sprintf("unknown charset %q", e.Charset)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e UnknownCharsetError) Unwrap() error {
	return e.cause
}

// Reader yields the lines of a file in order. Files ending in ".gz" are
// decompressed transparently.
type Reader struct {
	scanner *bufio.Scanner
	closers []io.Closer
}

// Open opens a UTF-8 line reader for the named file.
func Open(path string) (*Reader, error) {
	return open(path, nil)
}

// OpenCharset opens a line reader decoding the named IANA charset,
// e.g. "ISO-8859-1" or "windows-1252".
func OpenCharset(path, charset string) (*Reader, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return nil, UnknownCharsetError{Charset: charset, cause: err}
	}
	return open(path, enc.NewDecoder())
}

func open(path string, dec transform.Transformer) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var src io.Reader = f
	closers := []io.Closer{f}
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(src)
		if err != nil {
			f.Close()
			return nil, err
		}
		src = gz
		closers = append(closers, gz)
	}
	if dec != nil {
		src = transform.NewReader(src, dec)
	}

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	return &Reader{scanner: scanner, closers: closers}, nil
}

// Scan advances to the next line. It returns false at end of input or on
// the first error, which Err reports.
func (r *Reader) Scan() bool {
	return r.scanner.Scan()
}

// Text returns the current line without its terminator.
func (r *Reader) Text() string {
	return r.scanner.Text()
}

// Err returns the first error encountered while scanning.
func (r *Reader) Err() error {
	return r.scanner.Err()
}

// Close releases the underlying file handles.
func (r *Reader) Close() (err error) {
	for i := len(r.closers) - 1; i >= 0; i-- {
		try.Close(&err, r.closers[i])
	}
	return err
}
