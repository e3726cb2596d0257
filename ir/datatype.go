// Package ir is the linked, validated intermediate representation the
// resolver ("the tower") produces from every parsed file. Unlike the
// transient syntax tree in package ast, an ir.Root is the sole long-lived
// graph: built once by Resolve, never mutated by code generators, torn down
// at process exit (§3, §9 "Global mutable compiler state").
package ir

import "github.com/dropbox/babelapi/ast"

// Kind identifies a DataType's variant. DataType is a tagged sum rather than
// a set of Go interfaces so that pattern-style switches on Kind replace the
// dynamic type checks (is_struct_type, is_list_type, ...) the design notes
// call out.
type Kind string

const (
	KindBoolean   Kind = "Boolean"
	KindInt32     Kind = "Int32"
	KindInt64     Kind = "Int64"
	KindUInt32    Kind = "UInt32"
	KindUInt64    Kind = "UInt64"
	KindFloat32   Kind = "Float32"
	KindFloat64   Kind = "Float64"
	KindString    Kind = "String"
	KindBinary    Kind = "Binary"
	KindTimestamp Kind = "Timestamp"
	KindVoid      Kind = "Void"
	KindAny       Kind = "Any"
	KindSymbol    Kind = "Symbol"
	KindList      Kind = "List"
	KindStruct    Kind = "Struct"
	KindUnion     Kind = "Union"
	KindNullable  Kind = "Nullable"
)

// primitiveNames is the reserved-type-name table from §6.2. Bool is accepted
// as a spelling alias of Boolean; the rest map one-to-one onto a Kind.
var primitiveNames = map[string]Kind{
	"Void":      KindVoid,
	"Any":       KindAny,
	"Bool":      KindBoolean,
	"Boolean":   KindBoolean,
	"Int32":     KindInt32,
	"Int64":     KindInt64,
	"UInt32":    KindUInt32,
	"UInt64":    KindUInt64,
	"Float32":   KindFloat32,
	"Float64":   KindFloat64,
	"String":    KindString,
	"Binary":    KindBinary,
	"Timestamp": KindTimestamp,
	"List":      KindList,
}

// IsPrimitiveName reports whether name is a reserved builtin type name,
// distinct from any struct/union/alias name a spec file may declare.
func IsPrimitiveName(name string) (Kind, bool) {
	k, ok := primitiveNames[name]

	return k, ok
}

// DataType is one resolved type: a primitive (optionally carrying
// constraint attributes), a List of an element type, a Struct or Union
// handle, or a Nullable wrapper around any of the above except itself and
// except Void.
type DataType struct {
	Kind Kind

	// Elem is the element type for List, and the wrapped type for Nullable.
	Elem *DataType

	// Struct / Union are populated when Kind is KindStruct / KindUnion.
	// They're handles (pointers) rather than inline structures so that
	// recursive and mutually recursive types resolve without copying (§9).
	Struct *Struct
	Union  *Union

	// Attrs holds constraint attributes for primitive instantiations:
	// min_value, max_value, min_length, max_length, pattern, format.
	Attrs map[string]ast.Literal
}

func newPrimitive(k Kind) *DataType {
	return &DataType{Kind: k}
}

// Name returns the composite type's declared name, or "" for primitives,
// List, and Nullable.
func (d *DataType) Name() string {
	switch d.Kind {
	case KindStruct:
		return d.Struct.Name
	case KindUnion:
		return d.Union.Name
	default:
		return ""
	}
}

// IsNullable reports whether d is a Nullable wrapper.
func (d *DataType) IsNullable() bool {
	return d.Kind == KindNullable
}

// Inner returns the wrapped type if d is Nullable, or d itself otherwise —
// the "strip at most one Nullable layer" operation invariant 3 guarantees
// is always a single step.
func (d *DataType) Inner() *DataType {
	if d.Kind == KindNullable {
		return d.Elem
	}

	return d
}

// IsComposite reports whether d is a Struct or Union handle.
func (d *DataType) IsComposite() bool {
	return d.Kind == KindStruct || d.Kind == KindUnion
}

// attrFloat reads a numeric attribute as a float64 regardless of whether it
// was stored as an int64 or float64 literal.
func attrFloat(lit ast.Literal) (float64, bool) {
	switch v := lit.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
