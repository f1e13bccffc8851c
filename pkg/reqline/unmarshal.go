package reqline

import (
	"fmt"

	"github.com/shapestone/shape-reqline/internal/fastparser"
)

// ParseRequestLine parses input as a request line.
//
// On failure the error is a *ParseError and the returned Request is the zero
// value; a partially parsed line is never returned. Trailing text after the
// version, such as "\r\n", is ignored.
func ParseRequestLine(input string) (Request, error) {
	req, err := fastparser.Run(input)
	if err != nil {
		return Request{}, newParseError(err)
	}
	return Request(req), nil
}

// Unmarshal parses the request-line data and stores the result in v.
//
// v must be a *Request or implement Unmarshaler.
func Unmarshal(data []byte, v interface{}) error {
	if v == nil {
		return fmt.Errorf("reqline: Unmarshal(nil)")
	}

	if u, ok := v.(Unmarshaler); ok {
		return u.UnmarshalRequestLine(data)
	}

	target, ok := v.(*Request)
	if !ok {
		return fmt.Errorf("reqline: Unmarshal unsupported type %T (expected *Request)", v)
	}
	if target == nil {
		return fmt.Errorf("reqline: Unmarshal(nil *Request)")
	}
	req, err := ParseRequestLine(string(data))
	if err != nil {
		return err
	}
	*target = req
	return nil
}

// UnmarshalRequestLine parses data as a request line.
func UnmarshalRequestLine(data []byte) (*Request, error) {
	req := &Request{}
	if err := Unmarshal(data, req); err != nil {
		return nil, err
	}
	return req, nil
}
