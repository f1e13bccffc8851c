package fastparser

import (
	"fmt"
)

// UnmarshalRequestLine parses data as a request line.
func UnmarshalRequestLine(data []byte) (*Request, error) {
	req, err := Run(string(data))
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Validate checks that data starts with a valid request line without
// returning a result.
func Validate(data []byte) error {
	if _, err := Run(string(data)); err != nil {
		return fmt.Errorf("reqline: %w", err)
	}
	return nil
}
