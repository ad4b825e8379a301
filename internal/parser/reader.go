package parser

import (
	"bufio"
	"errors"
	"io"
)

// Reader is a positioned text cursor used by the parse functions.
//
// A failed parse leaves the reader in a sticky failure state: every further
// parse fails with the same error and consumes nothing until the caller
// calls Clear. The reader never recovers by itself; callers usually pair
// Clear with SkipLine to drop the rest of a malformed record.
type Reader struct {
	r    *bufio.Reader
	err  error
	line int
}

// NewReader creates a cursor positioned at the start of r
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:    bufio.NewReader(r),
		line: 1,
	}
}

// Err returns the sticky failure, if any
func (r *Reader) Err() error {
	return r.err
}

// Clear resets the failure state
func (r *Reader) Clear() {
	r.err = nil
}

// Line returns the 1-based line number of the next unread byte
func (r *Reader) Line() int {
	return r.line
}

// SkipLine discards input up to and including the next newline.
// Reaching the end of input is not an error.
func (r *Reader) SkipLine() error {
	for {
		b, err := r.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if b == '\n' {
			return nil
		}
	}
}

// fail records err as the sticky failure and returns it
func (r *Reader) fail(err error) error {
	r.err = err
	return err
}

// peek returns the next byte without consuming it
func (r *Reader) peek() (byte, error) {
	buf, err := r.r.Peek(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// next consumes one byte
func (r *Reader) next() (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, err
	}
	if b == '\n' {
		r.line++
	}
	return b, nil
}

// skipBlank consumes spaces and tabs, stopping before a newline.
// A carriage return counts as blank only when it ends the line.
func (r *Reader) skipBlank() error {
	for {
		b, err := r.peek()
		if err != nil {
			return err
		}
		switch b {
		case ' ', '\t':
		case '\r':
			ahead, err := r.r.Peek(2)
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			if len(ahead) == 2 && ahead[1] != '\n' {
				return nil
			}
		default:
			return nil
		}
		if _, err := r.next(); err != nil {
			return err
		}
	}
}

// skipSpace consumes all whitespace including newlines
func (r *Reader) skipSpace() error {
	for {
		b, err := r.peek()
		if err != nil {
			return err
		}
		if !isSpace(b) {
			return nil
		}
		if _, err := r.next(); err != nil {
			return err
		}
	}
}

// expect consumes the next byte if it equals want
func (r *Reader) expect(want byte) bool {
	b, err := r.peek()
	if err != nil || b != want {
		return false
	}
	_, err = r.next()
	return err == nil
}

// takeWhile consumes and returns the longest run of bytes accepted by ok
func (r *Reader) takeWhile(ok func(byte) bool) (string, error) {
	var buf []byte
	for {
		b, err := r.peek()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return string(buf), nil
			}
			return string(buf), err
		}
		if !ok(b) {
			return string(buf), nil
		}
		if _, err := r.next(); err != nil {
			return string(buf), err
		}
		buf = append(buf, b)
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isNumberByte(b byte) bool {
	return isDigit(b) || b == '.' || b == '-' || b == '+' || b == 'e' || b == 'E'
}
