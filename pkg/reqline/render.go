package reqline

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-reqline/internal/parser"
)

// Render converts an AST node (from Parse) back to request-line bytes.
//
// The node must be an ObjectNode with a "type" property of "request-line",
// as produced by Parse() or RequestToNode().
func Render(node ast.SchemaNode) ([]byte, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("reqline: Render: expected ObjectNode, got %T", node)
	}

	typeProp, ok := obj.Properties()["type"]
	if !ok {
		return nil, fmt.Errorf("reqline: Render: missing 'type' property")
	}
	typeLit, ok := typeProp.(*ast.LiteralNode)
	if !ok {
		return nil, fmt.Errorf("reqline: Render: 'type' is not a literal")
	}
	if typeLit.Value() != parser.NodeType {
		return nil, fmt.Errorf("reqline: Render: unknown node type %v", typeLit.Value())
	}

	req, err := NodeToRequest(node)
	if err != nil {
		return nil, fmt.Errorf("reqline: Render: %w", err)
	}
	return Marshal(req)
}
