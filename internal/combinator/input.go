// Package combinator provides the building blocks of the request-line parser:
// an immutable input cursor, primitive token matchers and the combinators that
// chain them.
//
// Every parser has the shape
//
//	func(in Input) (value T, rest Input, err error)
//
// On success rest is a suffix of in. On failure err is a *Failure that carries
// the unconsumed fragment at the point where matching stopped.
//
// All values in this package are immutable, so parsers are safe for concurrent
// use by multiple goroutines.
package combinator

import "strings"

// Input is a read-only view over the suffix of a source string.
// Copying an Input never copies the underlying text.
type Input struct {
	src string
	off int
}

// NewInput returns a cursor positioned at the start of s.
func NewInput(s string) Input {
	return Input{src: s}
}

// Rest returns the unconsumed text.
func (in Input) Rest() string { return in.src[in.off:] }

// Offset returns the byte offset of the cursor within the original text.
func (in Input) Offset() int { return in.off }

// Len returns the number of unconsumed bytes.
func (in Input) Len() int { return len(in.src) - in.off }

// Empty reports whether all input has been consumed.
func (in Input) Empty() bool { return in.off >= len(in.src) }

// Source returns the original text the cursor was created over.
func (in Input) Source() string { return in.src }

// HasPrefix reports whether the unconsumed text starts with p.
func (in Input) HasPrefix(p string) bool {
	return strings.HasPrefix(in.Rest(), p)
}

// Index returns the offset of the first occurrence of s relative to the
// cursor, or -1.
func (in Input) Index(s string) int {
	return strings.Index(in.Rest(), s)
}

// Slice returns the next n bytes without consuming them.
func (in Input) Slice(n int) string {
	return in.src[in.off : in.off+n]
}

// Advance returns a cursor n bytes further along. n is clamped to the
// remaining length.
func (in Input) Advance(n int) Input {
	if n < 0 {
		n = 0
	}
	if n > in.Len() {
		n = in.Len()
	}
	return Input{src: in.src, off: in.off + n}
}
