package reqline

import (
	"bytes"
	"io"

	"github.com/shapestone/shape-reqline/internal/fastparser"
)

// Validate checks that input starts with a syntactically valid request line.
// Returns nil if valid, or a *ParseError identifying the failing field.
func Validate(input string) error {
	if err := fastparser.Validate([]byte(input)); err != nil {
		return newParseError(err)
	}
	return nil
}

// ValidateReader reads all data from r and validates it as a request line.
// See Validate for the validation semantics.
func ValidateReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	if err := fastparser.Validate(data); err != nil {
		return newParseError(err)
	}
	return nil
}

// readAll reads all data from r.
func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
