// Package jsondump is a minimal codegen.CodeGenerator that renders every
// namespace's structs, unions, and routes as indented, JSON-ish text: one
// file per namespace, listing each composite type's fields/members with
// their resolved kind and each route's request/response/error types. It is
// not a real target-language generator — Babel's Non-goals exclude shipping
// one — it exists to exercise codegen/ and ir/ together end to end, the
// same role the teacher's stream-xml-encoder plays for its own parser
// output: "a consumer of the resolved result", repurposed here as a
// consumer of the linked IR instead of a syntax tree.
package jsondump

import (
	"fmt"

	"github.com/dropbox/babelapi/codegen"
	"github.com/dropbox/babelapi/ir"
)

// Generator is the jsondump codegen.CodeGenerator.
type Generator struct{}

// New returns a ready-to-use Generator.
func New() *Generator {
	return &Generator{}
}

// Language implements codegen.CodeGenerator.
func (*Generator) Language() codegen.TargetLanguage {
	return language{}
}

// Generate implements codegen.CodeGenerator: one "<namespace>.json.txt"
// file per namespace in root.
func (g *Generator) Generate(root *ir.Root, out *codegen.Output) error {
	for name, ns := range root.Namespaces {
		e := out.File(name + ".json.txt")

		e.Block("{", "}", func() {
			e.Line(`"namespace": %q,`, name)
			g.writeDataTypes(e, ns)
			g.writeRoutes(e, ns)
		})

		if err := e.Flush(); err != nil {
			return fmt.Errorf("generating %s: %w", name, err)
		}
	}

	return nil
}

func (g *Generator) writeDataTypes(e *codegen.Emitter, ns *ir.Namespace) {
	types := ns.LinearizeDataTypes()

	e.Line(`"types": [`)
	e.Indent()

	for i, dt := range types {
		g.writeDataType(e, dt, i == len(types)-1)
	}

	e.Dedent()
	e.Line("],")
}

func (g *Generator) writeDataType(e *codegen.Emitter, dt *ir.DataType, last bool) {
	sep := ","
	if last {
		sep = ""
	}

	switch dt.Kind {
	case ir.KindStruct:
		s := dt.Struct

		e.Block(fmt.Sprintf(`{"kind": "struct", "name": %q, "fields": [`, s.Name), "]}"+sep, func() {
			for i, f := range s.Fields {
				g.writeField(e, f, i == len(s.Fields)-1)
			}
		})
	case ir.KindUnion:
		u := dt.Union

		e.Block(fmt.Sprintf(`{"kind": "union", "name": %q, "members": [`, u.Name), "]}"+sep, func() {
			for i, m := range u.Members {
				g.writeMember(e, m, i == len(u.Members)-1)
			}
		})
	}
}

func (g *Generator) writeField(e *codegen.Emitter, f *ir.Field, last bool) {
	sep := ","
	if last {
		sep = ""
	}

	e.Line(`{"name": %q, "type": %q, "optional": %t}%s`, f.Name, TypeName(f.Type), f.Optional, sep)
}

func (g *Generator) writeMember(e *codegen.Emitter, m ir.UnionMember, last bool) {
	sep := ","
	if last {
		sep = ""
	}

	switch mv := m.(type) {
	case *ir.Field:
		e.Line(`{"name": %q, "type": %q}%s`, mv.Name, TypeName(mv.Type), sep)
	case *ir.VoidField:
		e.Line(`{"name": %q, "void": true, "catchAll": %t}%s`, mv.Name, mv.CatchAll, sep)
	}
}

func (g *Generator) writeRoutes(e *codegen.Emitter, ns *ir.Namespace) {
	items := make([]string, 0, len(ns.Routes))

	for _, rt := range ns.Routes {
		items = append(items, fmt.Sprintf(`{"name": %q, "request": %q, "response": %q, "error": %q}`,
			rt.Name, TypeName(rt.Request), TypeName(rt.Response), TypeName(rt.Error)))
	}

	e.Raw(`"routes": `)
	codegen.MultilineList{Open: "[", Close: "]", Items: items, SkipLastSep: true}.Render(e)
	e.Blank()
}

// TypeName renders dt as a short textual name suitable for a generated
// file: the declared name for a Struct/Union, "T?" for Nullable, "[T]" for
// List, and the Kind string itself for every primitive.
func TypeName(dt *ir.DataType) string {
	if dt == nil {
		return ""
	}

	switch dt.Kind {
	case ir.KindNullable:
		return TypeName(dt.Elem) + "?"
	case ir.KindList:
		return "[" + TypeName(dt.Elem) + "]"
	case ir.KindStruct, ir.KindUnion:
		return dt.Name()
	default:
		return string(dt.Kind)
	}
}
