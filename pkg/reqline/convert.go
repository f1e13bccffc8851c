package reqline

import (
	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-reqline/internal/fastparser"
	"github.com/shapestone/shape-reqline/internal/parser"
)

// NodeToRequest converts an AST ObjectNode to a Request.
func NodeToRequest(node ast.SchemaNode) (*Request, error) {
	fpReq, err := parser.NodeToRequest(node)
	if err != nil {
		return nil, err
	}
	req := Request(*fpReq)
	return &req, nil
}

// RequestToNode converts a Request to an AST ObjectNode.
func RequestToNode(req *Request) ast.SchemaNode {
	fpReq := fastparser.Request(*req)
	return parser.RequestToNode(&fpReq)
}
