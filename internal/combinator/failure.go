package combinator

import (
	"errors"
	"fmt"
)

// Kind identifies why a parser failed.
type Kind int

const (
	// LiteralMismatch: an expected literal is absent at the current position.
	LiteralMismatch Kind = iota + 1
	// DelimiterNotFound: the scan for a required delimiter exhausted the input.
	DelimiterNotFound
	// NotANumber: no decimal float starts at the current position.
	NotANumber
	// UnknownMethod: the method token matched none of the known methods.
	UnknownMethod
	// MissingSeparator: a structural space or slash is absent.
	MissingSeparator
	// UnterminatedTarget: no space follows the request target.
	UnterminatedTarget
	// UnterminatedProtocol: no slash follows the protocol name.
	UnterminatedProtocol
)

var kindNames = map[Kind]string{
	LiteralMismatch:      "literal mismatch",
	DelimiterNotFound:    "delimiter not found",
	NotANumber:           "not a number",
	UnknownMethod:        "unknown method",
	MissingSeparator:     "missing separator",
	UnterminatedTarget:   "unterminated target",
	UnterminatedProtocol: "unterminated protocol",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Stage identifies the field parser that was running when a failure occurred.
type Stage int

const (
	StageNone Stage = iota
	StageMethod
	StageTarget
	StageProtocol
	StageVersion
)

var stageNames = [...]string{
	StageNone:     "input",
	StageMethod:   "method",
	StageTarget:   "target",
	StageProtocol: "protocol",
	StageVersion:  "version",
}

func (s Stage) String() string {
	if s >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Failure is the error returned by every parser in this package.
type Failure struct {
	Kind      Kind
	Stage     Stage
	Remaining Input // unconsumed input at the point of failure
	Cause     error // lower-level failure, if this one was relabeled
}

// Fail builds a failure of the given kind at in.
func Fail(kind Kind, in Input) *Failure {
	return &Failure{Kind: kind, Remaining: in}
}

// Fragment returns the unconsumed text at the point of failure.
func (f *Failure) Fragment() string { return f.Remaining.Rest() }

// Offset returns the byte offset of the failure within the original text.
func (f *Failure) Offset() int { return f.Remaining.Offset() }

func (f *Failure) Error() string {
	if f.Stage != StageNone {
		return fmt.Sprintf("%s: %s at offset %d: %q", f.Stage, f.Kind, f.Offset(), f.Fragment())
	}
	return fmt.Sprintf("%s at offset %d: %q", f.Kind, f.Offset(), f.Fragment())
}

func (f *Failure) Unwrap() error { return f.Cause }

// AsFailure extracts a *Failure from err's chain.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
