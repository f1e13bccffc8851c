package combinator

import (
	"errors"
	"math"
	"testing"
)

func TestLiteral(t *testing.T) {
	tests := []struct {
		name     string
		lit      string
		input    string
		wantOK   bool
		wantRest string
	}{
		{"exact", "GET", "GET", true, ""},
		{"prefix", "GET", "GET /home", true, " /home"},
		{"case sensitive", "GET", "get /home", false, "get /home"},
		{"partial", "POST", "POS", false, "POS"},
		{"empty input", " ", "", false, ""},
		{"empty literal", "", "abc", true, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, rest, err := Literal(tt.lit)(NewInput(tt.input))
			if tt.wantOK {
				if err != nil {
					t.Fatalf("Literal(%q) error = %v", tt.lit, err)
				}
				if v != tt.lit {
					t.Errorf("value = %q, want %q", v, tt.lit)
				}
			} else {
				f, ok := AsFailure(err)
				if !ok {
					t.Fatalf("Literal(%q) error = %v, want *Failure", tt.lit, err)
				}
				if f.Kind != LiteralMismatch {
					t.Errorf("Kind = %v, want %v", f.Kind, LiteralMismatch)
				}
			}
			if rest.Rest() != tt.wantRest {
				t.Errorf("rest = %q, want %q", rest.Rest(), tt.wantRest)
			}
		})
	}
}

func TestTakeUntil(t *testing.T) {
	v, rest, err := TakeUntil(" ")(NewInput("/home/ HTTP/1.1"))
	if err != nil {
		t.Fatalf("TakeUntil error = %v", err)
	}
	if v != "/home/" {
		t.Errorf("value = %q, want /home/", v)
	}
	if rest.Rest() != " HTTP/1.1" {
		t.Errorf("rest = %q, want ' HTTP/1.1'", rest.Rest())
	}
	if rest.Offset() != 6 {
		t.Errorf("Offset = %d, want 6", rest.Offset())
	}
}

func TestTakeUntil_DelimiterAtStart(t *testing.T) {
	v, rest, err := TakeUntil("/")(NewInput("/1.1"))
	if err != nil {
		t.Fatalf("TakeUntil error = %v, empty match must succeed", err)
	}
	if v != "" {
		t.Errorf("value = %q, want empty", v)
	}
	if rest.Rest() != "/1.1" {
		t.Errorf("rest = %q, want /1.1", rest.Rest())
	}
}

func TestTakeUntil_NotFound(t *testing.T) {
	_, rest, err := TakeUntil(" ")(NewInput("/home/"))
	f, ok := AsFailure(err)
	if !ok {
		t.Fatalf("error = %v, want *Failure", err)
	}
	if f.Kind != DelimiterNotFound {
		t.Errorf("Kind = %v, want %v", f.Kind, DelimiterNotFound)
	}
	if f.Fragment() != "/home/" {
		t.Errorf("Fragment = %q, want /home/", f.Fragment())
	}
	if rest.Rest() != "/home/" {
		t.Errorf("rest = %q, want input unchanged", rest.Rest())
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		input    string
		want     float64
		wantRest string
	}{
		{"1.1\r\n", 1.1, "\r\n"},
		{"2", 2, ""},
		{"2.0", 2.0, ""},
		{"1.", 1, ""},
		{".5x", 0.5, "x"},
		{"-3.25", -3.25, ""},
		{"+7", 7, ""},
		{"1e3", 1000, ""},
		{"1.5E-1 ", 0.15, " "},
		{"1.1e", 1.1, "e"},
		{"1e+", 1, "e+"},
		{"10.25.3", 10.25, ".3"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, rest, err := Float()(NewInput(tt.input))
			if err != nil {
				t.Fatalf("Float(%q) error = %v", tt.input, err)
			}
			if math.Abs(v-tt.want) > 1e-12 {
				t.Errorf("value = %v, want %v", v, tt.want)
			}
			if rest.Rest() != tt.wantRest {
				t.Errorf("rest = %q, want %q", rest.Rest(), tt.wantRest)
			}
		})
	}
}

func TestFloat_NotANumber(t *testing.T) {
	for _, input := range []string{"", "abc", ".", "-", "+.", "e5", " 1.1"} {
		_, rest, err := Float()(NewInput(input))
		f, ok := AsFailure(err)
		if !ok {
			t.Errorf("Float(%q) error = %v, want *Failure", input, err)
			continue
		}
		if f.Kind != NotANumber {
			t.Errorf("Float(%q) Kind = %v, want %v", input, f.Kind, NotANumber)
		}
		if rest.Rest() != input {
			t.Errorf("Float(%q) rest = %q, want input unchanged", input, rest.Rest())
		}
	}
}

func TestFloat_OutOfRange(t *testing.T) {
	v, _, err := Float()(NewInput("1e400"))
	if err != nil {
		t.Fatalf("Float error = %v", err)
	}
	if !math.IsInf(v, 1) {
		t.Errorf("value = %v, want +Inf", v)
	}
}

func TestFloatScanner_Consumed(t *testing.T) {
	var sc FloatScanner
	for _, c := range []byte("1.1e") {
		if !sc.Step(c) {
			t.Fatalf("Step(%q) = false", c)
		}
	}
	if sc.Step('x') {
		t.Error("Step('x') = true, want false")
	}
	if sc.Consumed() != 4 {
		t.Errorf("Consumed = %d, want 4", sc.Consumed())
	}
	if sc.Accepted() != 3 {
		t.Errorf("Accepted = %d, want 3", sc.Accepted())
	}
}

func TestFailure_Error(t *testing.T) {
	f := &Failure{Kind: UnknownMethod, Stage: StageMethod, Remaining: NewInput("WRONG /")}
	want := `method: unknown method at offset 0: "WRONG /"`
	if f.Error() != want {
		t.Errorf("Error() = %q, want %q", f.Error(), want)
	}

	cause := Fail(LiteralMismatch, NewInput("x"))
	wrapped := &Failure{Kind: MissingSeparator, Cause: cause}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is(wrapped, cause) = false, want true")
	}
}

func TestKindAndStage_String(t *testing.T) {
	if got := Kind(99).String(); got != "kind(99)" {
		t.Errorf("Kind(99).String() = %q", got)
	}
	if got := StageVersion.String(); got != "version" {
		t.Errorf("StageVersion.String() = %q", got)
	}
	if got := Stage(42).String(); got != "stage(42)" {
		t.Errorf("Stage(42).String() = %q", got)
	}
}
