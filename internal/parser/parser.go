// Package parser implements an AST parser for request lines.
// It produces shape-core AST nodes from request-line input.
//
// A request line is mapped to an ObjectNode with the following structure:
//
//	{ "type": "request-line", "method": "GET", "url": "/home/",
//	  "protocol": "HTTP", "version": 1.1 }
//
// The version is stored as a float64 literal.
package parser

import (
	"fmt"
	"strconv"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-reqline/internal/fastparser"
)

// NodeType is the value of the "type" property of a request-line node.
const NodeType = "request-line"

var zeroPos = ast.Position{}

// Parser produces AST nodes from request-line text.
type Parser struct {
	input string
}

// NewParser creates a new AST parser for the given input.
func NewParser(input string) *Parser {
	return &Parser{input: input}
}

// Parse parses the request line and returns an AST ObjectNode.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	req, err := fastparser.Run(p.input)
	if err != nil {
		return nil, err
	}
	return RequestToNode(&req), nil
}

// RequestToNode converts a parsed request line to an AST ObjectNode.
func RequestToNode(req *fastparser.Request) ast.SchemaNode {
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"type":     ast.NewLiteralNode(NodeType, zeroPos),
		"method":   ast.NewLiteralNode(req.Method, zeroPos),
		"url":      ast.NewLiteralNode(req.URL, zeroPos),
		"protocol": ast.NewLiteralNode(req.Protocol, zeroPos),
		"version":  ast.NewLiteralNode(req.Version, zeroPos),
	}, zeroPos)
}

// NodeToRequest converts an AST ObjectNode back to a fastparser.Request.
// Missing properties are left at their zero values.
func NodeToRequest(node ast.SchemaNode) (*fastparser.Request, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	req := &fastparser.Request{}

	if v, ok := props["method"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			req.Method, _ = lit.Value().(string)
		}
	}
	if v, ok := props["url"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			req.URL, _ = lit.Value().(string)
		}
	}
	if v, ok := props["protocol"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			req.Protocol, _ = lit.Value().(string)
		}
	}
	if v, ok := props["version"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			version, err := literalFloat(lit.Value())
			if err != nil {
				return nil, err
			}
			req.Version = version
		}
	}

	return req, nil
}

func literalFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid version %q", n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("version has unsupported type %T", v)
	}
}
