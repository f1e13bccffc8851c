// Package reqline parses and renders HTTP-style request lines:
//
//	GET /home/ HTTP/1.1\r\n
//
// A request line is a method, a space, a request target, a space, a protocol
// name, a slash and a decimal version number. Anything after the version
// (normally CRLF) is ignored.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Parsing keeps no state between calls.
//
// # Parsing APIs
//
//   - ParseRequestLine/Unmarshal/UnmarshalRequestLine - direct parsing into Request
//   - Parse/ParseReader - AST-based parsing via shape-core
//   - Validate/ValidateReader - syntax check only
//   - Tokenize - lexical view of a line
package reqline

import (
	"fmt"

	"github.com/shapestone/shape-reqline/internal/fastparser"
)

// Method is a request method recognized by the parser.
type Method = fastparser.Method

const (
	MethodGET  = fastparser.MethodGET
	MethodPOST = fastparser.MethodPOST
)

// Methods returns the recognized methods in the order they are matched.
func Methods() []Method {
	return fastparser.Methods()
}

// ParseMethod returns the Method whose literal is exactly s (case-sensitive).
func ParseMethod(s string) (Method, error) {
	m, ok := fastparser.LookupMethod(s)
	if !ok {
		return 0, fmt.Errorf("reqline: %w: %q", ErrUnknownMethod, s)
	}
	return m, nil
}

// Request represents a parsed request line.
type Request struct {
	Method   string  // "GET" or "POST"
	URL      string  // request-target "/api/users?q=foo"
	Protocol string  // "HTTP"
	Version  float64 // 1.1
}

// String renders the request line without a line ending.
func (r Request) String() string {
	return r.Method + " " + r.URL + " " + r.Protocol + "/" + formatVersion(r.Version)
}

// Marshaler is the interface implemented by types that can marshal themselves
// into a request line.
type Marshaler interface {
	MarshalRequestLine() ([]byte, error)
}

// Unmarshaler is the interface implemented by types that can unmarshal a
// request line description of themselves.
type Unmarshaler interface {
	UnmarshalRequestLine([]byte) error
}
