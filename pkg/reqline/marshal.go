package reqline

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Marshal returns the wire form of v followed by CRLF.
//
// v must be a Request, a *Request or implement Marshaler. The output always
// parses back to an equal Request, so Marshal rejects a method outside the
// enumeration, a URL containing a space, a protocol containing a slash and a
// version that is not a finite number.
func Marshal(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("reqline: Marshal(nil)")
	}

	if m, ok := v.(Marshaler); ok {
		return m.MarshalRequestLine()
	}

	switch req := v.(type) {
	case *Request:
		if req == nil {
			return nil, fmt.Errorf("reqline: Marshal(nil *Request)")
		}
		return AppendRequestLine(nil, *req)
	case Request:
		return AppendRequestLine(nil, req)
	default:
		return nil, fmt.Errorf("reqline: Marshal unsupported type %T (expected Request or *Request)", v)
	}
}

// AppendRequestLine appends "METHOD SP URL SP PROTOCOL/VERSION CRLF" to buf.
func AppendRequestLine(buf []byte, req Request) ([]byte, error) {
	if _, err := ParseMethod(req.Method); err != nil {
		return buf, err
	}
	if strings.Contains(req.URL, " ") {
		return buf, fmt.Errorf("reqline: Marshal: URL %q contains a space", req.URL)
	}
	if strings.Contains(req.Protocol, "/") {
		return buf, fmt.Errorf("reqline: Marshal: protocol %q contains a slash", req.Protocol)
	}
	if math.IsNaN(req.Version) || math.IsInf(req.Version, 0) {
		return buf, fmt.Errorf("reqline: Marshal: version %v is not finite", req.Version)
	}

	buf = append(buf, req.Method...)
	buf = append(buf, ' ')
	buf = append(buf, req.URL...)
	buf = append(buf, ' ')
	buf = append(buf, req.Protocol...)
	buf = append(buf, '/')
	buf = append(buf, formatVersion(req.Version)...)
	return append(buf, '\r', '\n'), nil
}

// formatVersion renders v with at least one fractional digit: 1 -> "1.0".
func formatVersion(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
