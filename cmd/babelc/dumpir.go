package main

import "github.com/dropbox/babelapi/ir"

// irDump is a plain, cycle-free snapshot of a resolved Root, built
// specifically for --dump-ir=yaml rather than marshaling ir.Root directly:
// ir.Namespace/ir.Struct/ir.Union hold pointers back to their owning
// Namespace (and onward through Parent/Imports), which would send a
// generic reflection-based marshaler into an infinite walk.
type irDump struct {
	Namespaces []namespaceDump `yaml:"namespaces"`
}

type namespaceDump struct {
	Name    string      `yaml:"name"`
	Types   []typeDump  `yaml:"types"`
	Routes  []routeDump `yaml:"routes"`
	Imports []string    `yaml:"imports,omitempty"`
}

type typeDump struct {
	Kind    string       `yaml:"kind"`
	Name    string       `yaml:"name"`
	Extends string       `yaml:"extends,omitempty"`
	Fields  []fieldDump  `yaml:"fields,omitempty"`
	Members []fieldDump  `yaml:"members,omitempty"`
	Tags    []subtypeDump `yaml:"subtypes,omitempty"`
}

type fieldDump struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type,omitempty"`
	Optional bool   `yaml:"optional,omitempty"`
	Void     bool   `yaml:"void,omitempty"`
	CatchAll bool   `yaml:"catchAll,omitempty"`
}

type subtypeDump struct {
	Tag   string `yaml:"tag"`
	Child string `yaml:"child"`
}

type routeDump struct {
	Name     string `yaml:"name"`
	Request  string `yaml:"request"`
	Response string `yaml:"response"`
	Error    string `yaml:"error"`
}

func buildIRDump(root *ir.Root) irDump {
	var dump irDump

	for name, ns := range root.Namespaces {
		nd := namespaceDump{Name: name}

		for imp := range ns.Imports {
			nd.Imports = append(nd.Imports, imp)
		}

		for _, dt := range ns.LinearizeDataTypes() {
			nd.Types = append(nd.Types, buildTypeDump(dt))
		}

		for _, rt := range ns.Routes {
			nd.Routes = append(nd.Routes, routeDump{
				Name:     rt.Name,
				Request:  typeName(rt.Request),
				Response: typeName(rt.Response),
				Error:    typeName(rt.Error),
			})
		}

		dump.Namespaces = append(dump.Namespaces, nd)
	}

	return dump
}

func buildTypeDump(dt *ir.DataType) typeDump {
	switch dt.Kind {
	case ir.KindStruct:
		s := dt.Struct
		td := typeDump{Kind: "struct", Name: s.Name}

		if s.Parent != nil {
			td.Extends = s.Parent.Name
		}

		for _, f := range s.Fields {
			td.Fields = append(td.Fields, fieldDump{Name: f.Name, Type: typeName(f.Type), Optional: f.Optional})
		}

		for _, e := range s.Subtypes {
			td.Tags = append(td.Tags, subtypeDump{Tag: e.Tag, Child: e.Child.Name})
		}

		return td
	case ir.KindUnion:
		u := dt.Union
		td := typeDump{Kind: "union", Name: u.Name}

		if u.Parent != nil {
			td.Extends = u.Parent.Name
		}

		for _, m := range u.Members {
			switch mv := m.(type) {
			case *ir.Field:
				td.Members = append(td.Members, fieldDump{Name: mv.Name, Type: typeName(mv.Type)})
			case *ir.VoidField:
				td.Members = append(td.Members, fieldDump{Name: mv.Name, Void: true, CatchAll: mv.CatchAll})
			}
		}

		return td
	default:
		return typeDump{}
	}
}

func typeName(dt *ir.DataType) string {
	if dt == nil {
		return ""
	}

	switch dt.Kind {
	case ir.KindNullable:
		return typeName(dt.Elem) + "?"
	case ir.KindList:
		return "[" + typeName(dt.Elem) + "]"
	case ir.KindStruct, ir.KindUnion:
		return dt.Name()
	default:
		return string(dt.Kind)
	}
}
