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

import (
	"regexp"

	"github.com/dropbox/babelapi/token"
)

// roleMarker matches a doc-comment role reference like :field:`quota` or
// :route:`get_metadata`.
var roleMarker = regexp.MustCompile("(?::([a-zA-Z]+):)`([^`]+)`")

// DocBlock is a docstring attached to a namespace, alias, struct, union,
// field, route, or example. Role markers of the form :role:`name` are
// extracted eagerly (so the resolver can walk them without re-scanning the
// text) but resolved lazily, once the whole IR exists (phase 13).
type DocBlock struct {
	token.Position
	Text string
	Refs []DocRef
}

// DocRef is one :role:`name` marker found inside a DocBlock's Text.
type DocRef struct {
	Role string // e.g. "field", "route", "type"
	Name string
}

// NewDocBlock builds a DocBlock from raw docstring text, extracting role
// markers as it goes.
func NewDocBlock(pos token.Position, text string) *DocBlock {
	db := &DocBlock{Position: pos, Text: text}

	for _, m := range roleMarker.FindAllStringSubmatch(text, -1) {
		db.Refs = append(db.Refs, DocRef{Role: m[1], Name: m[2]})
	}

	return db
}
