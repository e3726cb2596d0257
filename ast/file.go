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

// File is the parser's output for a single source file: an ordered
// sequence of top-level declarations. Path is the logical path used for
// diagnostics and is also the Position.File of every node the parser built
// from this file.
type File struct {
	Path  string
	Decls []Decl
}

// Namespace returns the file's NamespaceDecl, or nil if the file declared
// none (a parse error the resolver will reject during namespace
// collection, since every file must belong to exactly one namespace).
func (f *File) Namespace() *NamespaceDecl {
	for _, d := range f.Decls {
		if n, ok := d.(*NamespaceDecl); ok {
			return n
		}
	}

	return nil
}
