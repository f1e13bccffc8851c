package reqline

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-reqline/internal/parser"
)

// Parse parses a request line into an AST.
//
// Returns an ast.ObjectNode with the properties
//
//	{ "type": "request-line", "method": "GET", "url": "/home/",
//	  "protocol": "HTTP", "version": 1.1 }
//
// where version is a float64 literal.
func Parse(input string) (ast.SchemaNode, error) {
	node, err := parser.NewParser(input).Parse()
	if err != nil {
		return nil, newParseError(err)
	}
	return node, nil
}

// ParseReader reads all data from r and parses it as a request line into an AST.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}
