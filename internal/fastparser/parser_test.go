package fastparser

import (
	"math"
	"reflect"
	"testing"

	"github.com/shapestone/shape-reqline/internal/combinator"
)

func TestRun_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  Request
	}{
		{"GET /home/ HTTP/1.1\r\n", Request{"GET", "/home/", "HTTP", 1.1}},
		{"POST /update/ HTTP/1.1\r\n", Request{"POST", "/update/", "HTTP", 1.1}},
		{"GET /api?q=a%20b HTTP/2.0", Request{"GET", "/api?q=a%20b", "HTTP", 2.0}},
		{"GET * RTSP/1.0\n", Request{"GET", "*", "RTSP", 1.0}},
		{"POST http://example.com/x CUSTOM/0.9 trailing", Request{"POST", "http://example.com/x", "CUSTOM", 0.9}},
		{"GET  HTTP/1.1", Request{"GET", "", "HTTP", 1.1}},
		{"GET / /1.1", Request{"GET", "/", "", 1.1}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Run(tt.input)
			if err != nil {
				t.Fatalf("Run(%q) error = %v", tt.input, err)
			}
			if got.Method != tt.want.Method || got.URL != tt.want.URL || got.Protocol != tt.want.Protocol {
				t.Errorf("Run(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if math.Abs(got.Version-tt.want.Version) > 1e-9 {
				t.Errorf("Version = %v, want %v", got.Version, tt.want.Version)
			}
		})
	}
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantKind     combinator.Kind
		wantStage    combinator.Stage
		wantFragment string
	}{
		{"unknown method", "WRONG /wrong/ HTTP/1.1\r\n", combinator.UnknownMethod, combinator.StageMethod, "WRONG /wrong/ HTTP/1.1\r\n"},
		{"lowercase method", "get / HTTP/1.1", combinator.UnknownMethod, combinator.StageMethod, "get / HTTP/1.1"},
		{"method prefix of unknown", "GETS / HTTP/1.1", combinator.UnknownMethod, combinator.StageMethod, "GETS / HTTP/1.1"},
		{"method prefix of unknown post", "POSTED / HTTP/1.1", combinator.UnknownMethod, combinator.StageMethod, "POSTED / HTTP/1.1"},
		{"empty", "", combinator.UnknownMethod, combinator.StageMethod, ""},
		{"method only", "GET", combinator.MissingSeparator, combinator.StageTarget, ""},
		{"unterminated target", "GET /home/", combinator.UnterminatedTarget, combinator.StageTarget, "/home/"},
		{"target then CRLF", "GET /home/\r\n", combinator.UnterminatedTarget, combinator.StageTarget, "/home/\r\n"},
		{"unterminated protocol", "GET /home/ HTTP", combinator.UnterminatedProtocol, combinator.StageProtocol, "HTTP"},
		{"not a number", "GET /home/ HTTP/abc", combinator.NotANumber, combinator.StageVersion, "abc"},
		{"empty version", "GET / HTTP/\r\n", combinator.NotANumber, combinator.StageVersion, "\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Run(tt.input)
			if err == nil {
				t.Fatalf("Run(%q) = %+v, want error", tt.input, got)
			}
			if got != (Request{}) {
				t.Errorf("Run(%q) returned partial request %+v", tt.input, got)
			}
			f, ok := combinator.AsFailure(err)
			if !ok {
				t.Fatalf("error = %T, want *combinator.Failure", err)
			}
			if f.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", f.Kind, tt.wantKind)
			}
			if f.Stage != tt.wantStage {
				t.Errorf("Stage = %v, want %v", f.Stage, tt.wantStage)
			}
			if f.Fragment() != tt.wantFragment {
				t.Errorf("Fragment = %q, want %q", f.Fragment(), tt.wantFragment)
			}
			if f.Offset()+len(f.Fragment()) != len(tt.input) {
				t.Errorf("fragment at %d is not a suffix of the input", f.Offset())
			}
		})
	}
}

func TestRun_Generated(t *testing.T) {
	targets := []string{"/", "/home/", "/a/b?c=d", "*", "http://h:80/p"}
	protocols := []string{"HTTP", "HTTPS", "X-PROTO"}
	versions := []string{"1.0", "1.1", "2.0", "0.9", "10.25"}

	for _, m := range Methods() {
		for _, target := range targets {
			for _, p := range protocols {
				for _, v := range versions {
					input := m.String() + " " + target + " " + p + "/" + v + "\r\n"
					got, err := Run(input)
					if err != nil {
						t.Errorf("Run(%q) error = %v", input, err)
						continue
					}
					if got.Method != m.String() || got.URL != target || got.Protocol != p {
						t.Errorf("Run(%q) = %+v", input, got)
					}
				}
			}
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	for _, input := range []string{"GET /home/ HTTP/1.1\r\n", "WRONG /wrong/ HTTP/1.1\r\n"} {
		r1, err1 := Run(input)
		r2, err2 := Run(input)
		if r1 != r2 {
			t.Errorf("Run(%q) not idempotent: %+v vs %+v", input, r1, r2)
		}
		if (err1 == nil) != (err2 == nil) || (err1 != nil && err1.Error() != err2.Error()) {
			t.Errorf("Run(%q) errors differ: %v vs %v", input, err1, err2)
		}
	}
}

func TestParseVersion_MissingSlash(t *testing.T) {
	_, _, err := parseVersion(combinator.NewInput("1.1"))
	f, ok := combinator.AsFailure(err)
	if !ok {
		t.Fatalf("error = %v, want *combinator.Failure", err)
	}
	if f.Kind != combinator.MissingSeparator || f.Stage != combinator.StageVersion {
		t.Errorf("failure = %v, want version missing separator", f)
	}
}

func TestParseProtocolName_MissingSpace(t *testing.T) {
	_, _, err := parseProtocolName(combinator.NewInput("HTTP/1.1"))
	f, ok := combinator.AsFailure(err)
	if !ok {
		t.Fatalf("error = %v, want *combinator.Failure", err)
	}
	if f.Kind != combinator.MissingSeparator || f.Stage != combinator.StageProtocol {
		t.Errorf("failure = %v, want protocol missing separator", f)
	}
}

func TestParseMethod_Order(t *testing.T) {
	m, rest, err := parseMethod(combinator.NewInput("POST /"))
	if err != nil {
		t.Fatalf("parseMethod error = %v", err)
	}
	if m != MethodPOST {
		t.Errorf("method = %v, want POST", m)
	}
	if rest.Rest() != " /" {
		t.Errorf("rest = %q, want ' /'", rest.Rest())
	}
}

func TestTrace(t *testing.T) {
	tests := []struct {
		input string
		want  []State
	}{
		{"GET / HTTP/1.1", []State{StateStart, StateMethodParsed, StateTargetParsed, StateProtocolParsed, StateAccept}},
		{"WRONG / HTTP/1.1", []State{StateStart, StateReject}},
		{"GET /", []State{StateStart, StateMethodParsed, StateReject}},
		{"GET / HTTP", []State{StateStart, StateMethodParsed, StateTargetParsed, StateReject}},
		{"GET / HTTP/x", []State{StateStart, StateMethodParsed, StateTargetParsed, StateProtocolParsed, StateReject}},
	}

	for _, tt := range tests {
		got := Trace(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Trace(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMethod(t *testing.T) {
	if MethodGET.String() != "GET" || MethodPOST.String() != "POST" {
		t.Errorf("String() = %q, %q", MethodGET, MethodPOST)
	}
	if Method(0).Valid() {
		t.Error("Method(0).Valid() = true")
	}
	if got := Method(9).String(); got != "Method(9)" {
		t.Errorf("Method(9).String() = %q", got)
	}
	if m, ok := LookupMethod("POST"); !ok || m != MethodPOST {
		t.Errorf("LookupMethod(POST) = %v, %v", m, ok)
	}
	if _, ok := LookupMethod("post"); ok {
		t.Error("LookupMethod is case-insensitive, want exact")
	}

	ms := Methods()
	ms[0] = MethodPOST
	if Methods()[0] != MethodGET {
		t.Error("Methods() exposes internal order slice")
	}
}

func TestInternProtocol(t *testing.T) {
	if got := internProtocol("HTTP"); got != "HTTP" {
		t.Errorf("internProtocol(HTTP) = %q", got)
	}
	if got := internProtocol("gopher"); got != "gopher" {
		t.Errorf("internProtocol(gopher) = %q", got)
	}
}

func TestUnmarshalRequestLine(t *testing.T) {
	req, err := UnmarshalRequestLine([]byte("POST /update/ HTTP/1.1\r\n"))
	if err != nil {
		t.Fatalf("UnmarshalRequestLine() error = %v", err)
	}
	if req.Method != "POST" || req.URL != "/update/" {
		t.Errorf("req = %+v", req)
	}

	if _, err := UnmarshalRequestLine([]byte("PUT / HTTP/1.1")); err == nil {
		t.Error("UnmarshalRequestLine(PUT) error = nil, want error")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate([]byte("GET / HTTP/1.1\r\n")); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	err := Validate([]byte("GET / HTTP/abc"))
	if err == nil {
		t.Fatal("Validate() error = nil, want error")
	}
	if f, ok := combinator.AsFailure(err); !ok || f.Kind != combinator.NotANumber {
		t.Errorf("Validate() error = %v, want wrapped NotANumber", err)
	}
}
