// Package fastparser implements the request-line parser without AST
// construction. It chains the matchers from the combinator package into four
// field parsers and runs them in a fixed order:
//
//	request-line := method SP target SP protocol-name "/" version
//
// Anything after the version (typically CRLF) is ignored.
package fastparser

import (
	"strings"

	"github.com/shapestone/shape-reqline/internal/combinator"
)

// Request is a parsed request line.
type Request struct {
	Method   string
	URL      string
	Protocol string
	Version  float64
}

var (
	sp    = combinator.Literal(" ")
	slash = combinator.Literal("/")
)

func methodLiteral(m Method) combinator.Parser[Method] {
	return combinator.Map(combinator.Literal(m.String()), func(string) Method { return m })
}

func newMethodParser() combinator.Parser[Method] {
	alts := make([]combinator.Parser[Method], 0, len(methodOrder))
	for _, m := range methodOrder {
		alts = append(alts, methodLiteral(m))
	}
	// A known method must end at a separator, so "GETX" is not read as GET.
	token := combinator.FollowedBy(combinator.Alt(alts...), combinator.Alt(sp, combinator.End()))
	return combinator.Label(token, combinator.StageMethod, combinator.UnknownMethod)
}

var (
	parseMethod = newMethodParser()

	parseTarget = combinator.Preceded(
		combinator.Label(sp, combinator.StageTarget, combinator.MissingSeparator),
		combinator.Label(combinator.TakeUntil(" "), combinator.StageTarget, combinator.UnterminatedTarget),
	)

	parseProtocolName = combinator.Preceded(
		combinator.Label(sp, combinator.StageProtocol, combinator.MissingSeparator),
		combinator.Label(combinator.TakeUntil("/"), combinator.StageProtocol, combinator.UnterminatedProtocol),
	)

	parseVersion = combinator.Preceded(
		combinator.Label(slash, combinator.StageVersion, combinator.MissingSeparator),
		combinator.Label(combinator.Float(), combinator.StageVersion, combinator.NotANumber),
	)

	requestLine = combinator.Sequence4(parseMethod, parseTarget, parseProtocolName, parseVersion)
)

// Run parses input as a request line. On failure the error is a
// *combinator.Failure naming the stage and the unconsumed fragment; no partial
// Request is returned.
func Run(input string) (Request, error) {
	v, _, err := requestLine(combinator.NewInput(input))
	if err != nil {
		return Request{}, err
	}
	return Request{
		Method:   v.V1.String(),
		URL:      strings.Clone(v.V2),
		Protocol: internProtocol(v.V3),
		Version:  v.V4,
	}, nil
}

// State is a position in the request-line automaton.
type State int

const (
	StateStart State = iota
	StateMethodParsed
	StateTargetParsed
	StateProtocolParsed
	StateAccept
	StateReject
)

var stateNames = [...]string{
	StateStart:          "Start",
	StateMethodParsed:   "MethodParsed",
	StateTargetParsed:   "TargetParsed",
	StateProtocolParsed: "ProtocolParsed",
	StateAccept:         "Accept",
	StateReject:         "Reject",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

var stateAfter = map[combinator.Stage]State{
	combinator.StageMethod:   StateMethodParsed,
	combinator.StageTarget:   StateTargetParsed,
	combinator.StageProtocol: StateProtocolParsed,
	combinator.StageVersion:  StateAccept,
}

// Trace returns the states visited while parsing input. The last element is
// StateAccept or StateReject.
func Trace(input string) []State {
	states := []State{StateStart}
	last := combinator.StageVersion

	_, err := Run(input)
	f, failed := combinator.AsFailure(err)
	if failed {
		last = f.Stage - 1
	}
	for s := combinator.StageMethod; s <= last; s++ {
		states = append(states, stateAfter[s])
	}
	if failed {
		states = append(states, StateReject)
	}
	return states
}
