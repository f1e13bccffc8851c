package reqline

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-reqline/internal/combinator"
)

// Kind identifies why parsing failed.
type Kind = combinator.Kind

const (
	KindUnknownMethod        = combinator.UnknownMethod
	KindMissingSeparator     = combinator.MissingSeparator
	KindUnterminatedTarget   = combinator.UnterminatedTarget
	KindUnterminatedProtocol = combinator.UnterminatedProtocol
	KindNotANumber           = combinator.NotANumber
)

// Stage identifies the field being parsed when a failure occurred.
type Stage = combinator.Stage

const (
	StageMethod   = combinator.StageMethod
	StageTarget   = combinator.StageTarget
	StageProtocol = combinator.StageProtocol
	StageVersion  = combinator.StageVersion
)

// Sentinel errors matched by errors.Is against a *ParseError.
var (
	ErrUnknownMethod        = errors.New("unknown method")
	ErrMissingSeparator     = errors.New("missing separator")
	ErrUnterminatedTarget   = errors.New("unterminated target")
	ErrUnterminatedProtocol = errors.New("unterminated protocol")
	ErrNotANumber           = errors.New("version is not a number")
)

var kindErrors = map[Kind]error{
	KindUnknownMethod:        ErrUnknownMethod,
	KindMissingSeparator:     ErrMissingSeparator,
	KindUnterminatedTarget:   ErrUnterminatedTarget,
	KindUnterminatedProtocol: ErrUnterminatedProtocol,
	KindNotANumber:           ErrNotANumber,
}

const maxFragment = 32

// ParseError represents a request line that could not be parsed.
type ParseError struct {
	Kind     Kind   // reason the parse failed
	Stage    Stage  // field being parsed
	Fragment string // unconsumed input at the point of failure
	Position int    // byte offset of Fragment in the input
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	frag := e.Fragment
	if len(frag) > maxFragment {
		frag = frag[:maxFragment] + "..."
	}
	return fmt.Sprintf("reqline: parse error at position %d: %s: %s near %q", e.Position, e.Stage, e.Kind, frag)
}

// Is reports whether target is the sentinel error for e.Kind.
func (e *ParseError) Is(target error) bool {
	sentinel, ok := kindErrors[e.Kind]
	return ok && sentinel == target
}

// newParseError converts an internal parse failure into a *ParseError.
// Other errors are returned unchanged.
func newParseError(err error) error {
	f, ok := combinator.AsFailure(err)
	if !ok {
		return err
	}
	return &ParseError{
		Kind:     f.Kind,
		Stage:    f.Stage,
		Fragment: f.Fragment(),
		Position: f.Offset(),
	}
}
