// Copyright 2021 Torben Schinke
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ast holds the syntax tree produced by package parser: one ordered
// sequence of top-level declarations per source file. Nodes are transient —
// they exist only from parse to resolve, after which package ir's linked
// representation is the sole long-lived graph.
package ast

import "github.com/dropbox/babelapi/token"

// Decl is any top-level declaration a file may contain.
type Decl interface {
	token.Node
	declNode()
}

// NamespaceDecl declares or extends the namespace a file belongs to.
// Docstrings from multiple files sharing the same name are concatenated by
// the resolver in declaration order.
type NamespaceDecl struct {
	token.Position
	Name string
	Doc  *DocBlock
}

func (*NamespaceDecl) declNode() {}

// ImportDecl brings another namespace's declarations into scope for TypeRef
// resolution.
type ImportDecl struct {
	token.Position
	Name string
}

func (*ImportDecl) declNode() {}

// AliasDecl gives a second name to a TypeRef. Attribute values (min_length,
// pattern, ...) may only be set at the original instantiation; an alias of
// an alias, or of a composite type, cannot re-specify them (invariant 8).
type AliasDecl struct {
	token.Position
	Name string
	Type *TypeRef
	Doc  *DocBlock
}

func (*AliasDecl) declNode() {}

// StructDecl declares a record type: an optional parent, an optional
// enumerated-subtypes partition, an ordered field list, and named examples.
type StructDecl struct {
	token.Position
	Name     string
	Extends  *TypeRef
	Subtypes *SubtypesBlock
	Fields   []*Field
	Examples []*Example
	Doc      *DocBlock

	Deprecated   bool
	DeprecatedBy *TypeRef
}

func (*StructDecl) declNode() {}

// UnionMember is either a *Field (typed payload) or a *VoidField (bare tag).
type UnionMember interface {
	token.Node
	unionMember()
}

func (*Field) unionMember()     {}
func (*VoidField) unionMember() {}

// UnionDecl declares a tagged-sum type. Members preserves declaration order
// across typed and void members, matching the grammar's single ordered list.
type UnionDecl struct {
	token.Position
	Name    string
	Extends *TypeRef
	Members []UnionMember
	Doc     *DocBlock

	Deprecated   bool
	DeprecatedBy *TypeRef
}

func (*UnionDecl) declNode() {}

// RouteDecl declares a named RPC-like endpoint.
type RouteDecl struct {
	token.Position
	Name     string
	Request  *TypeRef
	Response *TypeRef
	Error    *TypeRef
	Attrs    *AttrList
	Doc      *DocBlock

	Deprecated bool
}

func (*RouteDecl) declNode() {}

// SubtypesBlock is a struct's enumerated-subtypes partition: "union" followed
// by an optional '*' (meaning the partition is still open/extensible to
// future files) and a list of tag -> subtype-TypeRef pairs.
type SubtypesBlock struct {
	token.Position
	Extensible bool
	Tags       []*SubtypeTag
}

// SubtypeTag is one "tagName TypeRef" line inside a SubtypesBlock.
type SubtypeTag struct {
	token.Position
	Tag  string
	Type *TypeRef
}

// Field is a struct field or a typed union variant.
type Field struct {
	token.Position
	Name       string
	Type       *TypeRef
	Default    Literal
	HasDefault bool
	Doc        *DocBlock
}

// VoidField is a union variant with no payload, i.e. a bare tag.
type VoidField struct {
	token.Position
	Name     string
	CatchAll bool
	Doc      *DocBlock
}

// Example is a single named instance of a struct's fields used for fixtures
// and documentation.
type Example struct {
	token.Position
	Label  string
	Doc    *DocBlock
	Fields []ExampleField
}

// ExampleField is one "name=literal" assignment inside an Example.
type ExampleField struct {
	token.Position
	Name  string
	Value Literal
}

// AttrList is an ordered, last-write-wins set of route attributes, written
// one "key=value" per line in the route's indented body, e.g.
// allow_patch_method=true or since="1.4.0".
type AttrList struct {
	token.Position
	Entries []AttrEntry
}

// AttrEntry is one "key=value" pair inside an AttrList.
type AttrEntry struct {
	Key   string
	Value Literal
}

// Get returns the value for key and whether it was present. Later entries
// with the same key win, matching util.AttributeList's Set semantics.
func (a *AttrList) Get(key string) (Literal, bool) {
	if a == nil {
		return nil, false
	}

	var (
		val   Literal
		found bool
	)

	for _, e := range a.Entries {
		if e.Key == key {
			val, found = e.Value, true
		}
	}

	return val, found
}
