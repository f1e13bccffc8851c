package fastparser

import (
	"fmt"
	"strings"
)

// Method is a request method the parser recognizes.
type Method int

const (
	MethodGET Method = iota + 1
	MethodPOST
)

// methodOrder is the order in which method literals are tried. Earlier
// entries win when one literal is a prefix of another.
var methodOrder = []Method{MethodGET, MethodPOST}

// String returns the exact wire literal of m.
func (m Method) String() string {
	switch m {
	case MethodGET:
		return "GET"
	case MethodPOST:
		return "POST"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Valid reports whether m is a member of the enumeration.
func (m Method) Valid() bool {
	return m == MethodGET || m == MethodPOST
}

// Methods returns the recognized methods in matching order.
func Methods() []Method {
	out := make([]Method, len(methodOrder))
	copy(out, methodOrder)
	return out
}

// LookupMethod returns the method whose literal is exactly s.
func LookupMethod(s string) (Method, bool) {
	for _, m := range methodOrder {
		if m.String() == s {
			return m, true
		}
	}
	return 0, false
}

// Protocol names seen in practice. Interning them means a parsed request does
// not keep the input buffer alive through the protocol field.
var protocols = map[string]string{
	"HTTP":  "HTTP",
	"HTTPS": "HTTPS",
	"RTSP":  "RTSP",
	"SIP":   "SIP",
}

// internProtocol returns an interned string for known protocol names and an
// owned copy otherwise.
func internProtocol(s string) string {
	if p, ok := protocols[s]; ok {
		return p
	}
	return strings.Clone(s)
}
