package combinator

import (
	"errors"
	"strconv"
)

// Parser consumes a prefix of its input and returns the extracted value and
// the remainder.
type Parser[T any] func(in Input) (T, Input, error)

// Literal matches lit exactly (case-sensitive) at the start of the input.
func Literal(lit string) Parser[string] {
	return func(in Input) (string, Input, error) {
		if !in.HasPrefix(lit) {
			return "", in, Fail(LiteralMismatch, in)
		}
		return in.Slice(len(lit)), in.Advance(len(lit)), nil
	}
}

// TakeUntil consumes everything before the first occurrence of delim. The
// delimiter itself stays in the remainder. A delimiter at offset 0 yields an
// empty value, which is a success.
func TakeUntil(delim string) Parser[string] {
	return func(in Input) (string, Input, error) {
		idx := in.Index(delim)
		if idx < 0 {
			return "", in, Fail(DelimiterNotFound, in)
		}
		return in.Slice(idx), in.Advance(idx), nil
	}
}

// Float matches the longest decimal float literal at the start of the input:
//
//	sign? (digits ('.' digits?)? | '.' digits) ([eE] sign? digits)?
//
// An exponent marker without digits is left in the remainder.
func Float() Parser[float64] {
	return func(in Input) (float64, Input, error) {
		n := FloatPrefixLen(in.Rest())
		if n == 0 {
			return 0, in, Fail(NotANumber, in)
		}
		v, err := strconv.ParseFloat(in.Slice(n), 64)
		if err != nil {
			// Out of range values still lex as floats; keep the ±Inf from ParseFloat.
			if !errors.Is(err, strconv.ErrRange) {
				return 0, in, &Failure{Kind: NotANumber, Remaining: in, Cause: err}
			}
		}
		return v, in.Advance(n), nil
	}
}

// FloatPrefixLen returns the length of the longest prefix of s accepted by the
// Float grammar, or 0.
func FloatPrefixLen(s string) int {
	var sc FloatScanner
	for i := 0; i < len(s); i++ {
		if !sc.Step(s[i]) {
			break
		}
	}
	return sc.Accepted()
}

type floatState uint8

const (
	fsStart    floatState = iota
	fsSign                // after leading sign
	fsInt                 // in integer digits (accepting)
	fsDot                 // '.' with no integer digits before it
	fsFrac                // after '.' following digits, or in fraction digits (accepting)
	fsExp                 // after 'e'
	fsExpSign             // after exponent sign
	fsExpDigit            // in exponent digits (accepting)
)

// FloatScanner recognizes the Float grammar one byte at a time. It lets
// matchers that can only peek one character ahead track the longest accepted
// prefix.
type FloatScanner struct {
	state    floatState
	n        int
	accepted int
}

// Step feeds the next byte. It returns false when c cannot extend the literal;
// the scanner is then finished and c was not counted.
func (s *FloatScanner) Step(c byte) bool {
	digit := c >= '0' && c <= '9'
	var next floatState
	switch s.state {
	case fsStart:
		switch {
		case c == '+' || c == '-':
			next = fsSign
		case digit:
			next = fsInt
		case c == '.':
			next = fsDot
		default:
			return false
		}
	case fsSign:
		switch {
		case digit:
			next = fsInt
		case c == '.':
			next = fsDot
		default:
			return false
		}
	case fsInt:
		switch {
		case digit:
			next = fsInt
		case c == '.':
			next = fsFrac
		case c == 'e' || c == 'E':
			next = fsExp
		default:
			return false
		}
	case fsDot:
		if !digit {
			return false
		}
		next = fsFrac
	case fsFrac:
		switch {
		case digit:
			next = fsFrac
		case c == 'e' || c == 'E':
			next = fsExp
		default:
			return false
		}
	case fsExp:
		switch {
		case c == '+' || c == '-':
			next = fsExpSign
		case digit:
			next = fsExpDigit
		default:
			return false
		}
	case fsExpSign, fsExpDigit:
		if !digit {
			return false
		}
		next = fsExpDigit
	}
	s.state = next
	s.n++
	if next == fsInt || next == fsFrac || next == fsExpDigit {
		s.accepted = s.n
	}
	return true
}

// Consumed returns the number of bytes fed so far.
func (s *FloatScanner) Consumed() int { return s.n }

// Accepted returns the length of the longest accepted prefix seen so far.
func (s *FloatScanner) Accepted() int { return s.accepted }
