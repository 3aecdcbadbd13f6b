package lineio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
)

// ErrDecode marks a line whose bytes are not valid UTF-8.
var ErrDecode = errors.New("invalid UTF-8")

// IsGzipPath reports whether path names a gzip-compressed file by suffix.
func IsGzipPath(path string) bool {
	return strings.HasSuffix(path, ".gz")
}

// Source is a lazy, non-restartable reader of text lines. Callers loop over
// Scan, inspect Text/DecodeErr per line, and must Close when done; Close is
// also safe after a failed scan.
type Source struct {
	file    *os.File
	gz      *gzip.Reader
	reader  *bufio.Reader
	lineNum int
	text    string
	lineErr error
	err     error
	done    bool
}

// Open opens path for line reading. When gzipped is true the byte stream is
// decompressed before line splitting.
func Open(path string, gzipped bool) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	src := &Source{file: file}
	if gzipped {
		gz, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		src.gz = gz
		src.reader = bufio.NewReader(gz)
	} else {
		src.reader = bufio.NewReader(file)
	}
	return src, nil
}

// Scan advances to the next line. It returns false at end of input or on a
// stream-level read failure (see Err). A per-line decode failure still
// returns true; the failure is reported by DecodeErr.
func (s *Source) Scan() bool {
	if s.done {
		return false
	}
	raw, err := s.reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		s.err = err
		s.done = true
		return false
	}
	if err == io.EOF {
		s.done = true
		if len(raw) == 0 {
			return false
		}
	}
	raw = bytes.TrimSuffix(raw, []byte("\n"))
	s.lineNum++
	if !utf8.Valid(raw) {
		s.text = ""
		s.lineErr = fmt.Errorf("line %d: %w", s.lineNum, ErrDecode)
		return true
	}
	s.text = string(raw)
	s.lineErr = nil
	return true
}

// Text returns the current line without its trailing newline. It is empty
// when DecodeErr is non-nil.
func (s *Source) Text() string {
	return s.text
}

// DecodeErr returns the current line's decode failure, wrapping ErrDecode,
// or nil when the line decoded cleanly.
func (s *Source) DecodeErr() error {
	return s.lineErr
}

// LineNumber returns the 1-based number of the current line.
func (s *Source) LineNumber() int {
	return s.lineNum
}

// Err returns the stream-level failure that stopped scanning, if any.
func (s *Source) Err() error {
	return s.err
}

// Close releases the underlying handles. Safe to call more than once.
func (s *Source) Close() error {
	var first error
	if s.gz != nil {
		if err := s.gz.Close(); err != nil {
			first = err
		}
		s.gz = nil
	}
	if s.file != nil {
		if err := s.file.Close(); err != nil && first == nil {
			first = err
		}
		s.file = nil
	}
	return first
}
