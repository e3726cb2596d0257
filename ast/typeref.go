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

package ast

import "github.com/dropbox/babelapi/token"

// Literal is a default value, example field value, attribute value, or type
// argument: one of int64, float64, string, bool, or *TagRef. It is kept as
// an untyped syntax-tree value and is checked against a concrete DataType
// only during resolution (phase 11, default-value typing).
type Literal interface{}

// TagRef is a bare identifier used as a default value or example value that
// refers to a union's void tag, e.g. "status = active" where active is a
// tag of the Status union. Resolved to a concrete union member in the
// resolver; until then it is just a name.
type TagRef struct {
	token.Position
	Name string
}

// TypeRef is a reference to a type: a symbol name, an optional namespace
// qualifier, positional and keyword type arguments (for parameterized
// primitives such as String(min_length=3) or List(UInt64)), and a nullable
// flag (the postfix '?').
type TypeRef struct {
	token.Position
	Namespace   string // empty if unqualified
	Name        string
	PosArgs     []*TypeRef
	KeywordArgs map[string]Literal
	Nullable    bool
}

// QualifiedName returns "Namespace.Name", or just "Name" if unqualified.
func (t *TypeRef) QualifiedName() string {
	if t.Namespace == "" {
		return t.Name
	}

	return t.Namespace + "." + t.Name
}
