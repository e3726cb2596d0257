package ir

import (
	"github.com/dropbox/babelapi/ast"
	"github.com/google/uuid"
)

// Field is a struct field or a typed union variant: a name, a resolved
// type, and an optional default value.
type Field struct {
	Name       string
	Type       *DataType
	Default    ast.Literal
	HasDefault bool
	// Optional mirrors Type.IsNullable(), kept as its own flag since
	// generators read it far more often than they unwrap Type (§3).
	Optional bool
	Doc      *ast.DocBlock
}

func (*Field) unionMember() {}

// VoidField is a union variant with no payload; its type is conceptually
// Symbol.
type VoidField struct {
	Name     string
	CatchAll bool
	Doc      *ast.DocBlock
}

func (*VoidField) unionMember() {}

// UnionMember is either a *Field (typed payload) or a *VoidField (bare tag).
type UnionMember interface {
	unionMember()
}

// SubtypeEntry is one tag -> child-struct pair of an enumerated-subtypes
// partition.
type SubtypeEntry struct {
	Tag   string
	Child *Struct
}

// Example is one named, field-value fixture attached to a Struct.
type Example struct {
	Label      string
	Fields     map[string]ast.Literal
	FieldOrder []string
}

// Struct is a record type: an optional parent, its own fields, the
// inherited-plus-own AllFields view computed during resolution, and an
// optional enumerated-subtypes partition used for polymorphic decoding.
type Struct struct {
	ID        uuid.UUID
	Name      string
	Namespace *Namespace
	Parent    *Struct

	Fields    []*Field
	AllFields []*Field

	Subtypes           []SubtypeEntry
	SubtypesExtensible bool

	Examples     map[string]*Example
	ExampleOrder []string

	Doc          *ast.DocBlock
	Deprecated   bool
	DeprecatedBy *DataType
}

// FieldByName searches AllFields, the view codegen always wants.
func (s *Struct) FieldByName(name string) (*Field, bool) {
	for _, f := range s.AllFields {
		if f.Name == name {
			return f, true
		}
	}

	return nil, false
}

// IsLeaf reports whether s declares no enumerated-subtypes partition.
func (s *Struct) IsLeaf() bool {
	return len(s.Subtypes) == 0
}

// DecodeTag resolves a ".tag"/".tag.<field>" discriminator chain (§8
// scenario 4) to the concrete leaf Struct it denotes, starting from s as
// the declared (possibly non-leaf) static type. path is the discriminator
// values in nesting order, e.g. []string{"folder", "shared"} for the wire
// payload {".tag":"folder",".tag.folder":"shared"}.
//
// A path that names a non-leaf subtype without a further element is
// rejected: only leaf structs may be instantiated (§9 open question).
func (s *Struct) DecodeTag(path []string) (*Struct, error) {
	cur := s
	lastTag := ""

	for _, tag := range path {
		if cur.IsLeaf() {
			return nil, &UnknownSubtypeError{Tag: tag, Struct: cur.Name}
		}

		child, ok := cur.subtypeByTag(tag)
		if !ok {
			return nil, &UnknownSubtypeError{Tag: tag, Struct: cur.Name}
		}

		cur = child
		lastTag = tag
	}

	if !cur.IsLeaf() {
		return nil, &UnknownSubtypeError{Tag: lastTag, Struct: cur.Name}
	}

	return cur, nil
}

func (s *Struct) subtypeByTag(tag string) (*Struct, bool) {
	for _, e := range s.Subtypes {
		if e.Tag == tag {
			return e.Child, true
		}
	}

	return nil, false
}

// UnknownSubtypeError is returned by Struct.DecodeTag when a discriminator
// chain names a tag that doesn't exist, or stops short of a leaf.
type UnknownSubtypeError struct {
	Tag    string
	Struct string
}

func (e *UnknownSubtypeError) Error() string {
	if e.Tag == "" {
		return "unknown subtype: '" + e.Struct + "' has no leaf selected"
	}

	return "unknown subtype '" + e.Tag + "'"
}
