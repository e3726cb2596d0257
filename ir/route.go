package ir

import (
	"github.com/dropbox/babelapi/ast"
	"github.com/google/uuid"
)

// Route is a named RPC-like endpoint: a request, response, and error type,
// plus free-form attributes written one per line in the route's indented
// body (since="1.0.0").
type Route struct {
	ID        uuid.UUID
	Name      string
	Namespace *Namespace

	Request  *DataType
	Response *DataType
	Error    *DataType

	Attrs *AttributeList
	Doc   *ast.DocBlock

	Deprecated bool
}
