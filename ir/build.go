package ir

import (
	"github.com/dropbox/babelapi/ast"
	"github.com/google/uuid"
)

// resolveStructs fills in every struct placeholder's parent, fields,
// enumerated-subtypes partition, and examples — the composite half of
// phase 4.
func (r *resolver) resolveStructs() {
	for ns, decls := range r.structDecls {
		for name, decl := range decls {
			dt, _ := ns.DataTypeByName(name)
			s := dt.Struct

			if decl.Extends != nil {
				parentDT, _, err := r.resolveTypeRef(ns, decl.Extends)
				switch {
				case err != nil:
					r.errs = append(r.errs, err)
				case parentDT.IsNullable():
					r.errorf(decl.Extends, "a struct cannot extend a nullable type")
				case parentDT.Kind != KindStruct:
					r.errorf(decl.Extends, "a struct can only extend another struct")
				default:
					s.Parent = parentDT.Struct
				}
			}

			for _, f := range decl.Fields {
				ft, _, err := r.resolveTypeRef(ns, f.Type)
				if err != nil {
					r.errs = append(r.errs, err)

					continue
				}

				s.Fields = append(s.Fields, &Field{
					Name:       f.Name,
					Type:       ft,
					Default:    f.Default,
					HasDefault: f.HasDefault,
					Optional:   ft.IsNullable(),
					Doc:        f.Doc,
				})
			}

			if decl.Subtypes != nil {
				s.SubtypesExtensible = decl.Subtypes.Extensible

				for _, tag := range decl.Subtypes.Tags {
					childDT, _, err := r.resolveTypeRef(ns, tag.Type)
					if err != nil {
						r.errs = append(r.errs, err)

						continue
					}

					if childDT.Kind != KindStruct {
						r.errorf(tag, "enumerated subtype '"+tag.Tag+"' must be a struct")

						continue
					}

					s.Subtypes = append(s.Subtypes, SubtypeEntry{Tag: tag.Tag, Child: childDT.Struct})
				}
			}

			for _, ex := range decl.Examples {
				fields := map[string]ast.Literal{}

				var order []string

				for _, ef := range ex.Fields {
					if _, exists := fields[ef.Name]; !exists {
						order = append(order, ef.Name)
					}

					fields[ef.Name] = ef.Value
				}

				s.Examples[ex.Label] = &Example{Label: ex.Label, Fields: fields, FieldOrder: order}
				s.ExampleOrder = append(s.ExampleOrder, ex.Label)
			}

			s.Doc = decl.Doc
			s.Deprecated = decl.Deprecated

			if decl.DeprecatedBy != nil {
				if dbDT, _, err := r.resolveTypeRef(ns, decl.DeprecatedBy); err == nil {
					s.DeprecatedBy = dbDT
				}
			}
		}
	}
}

// resolveUnions fills in every union placeholder's parent and members.
func (r *resolver) resolveUnions() {
	for ns, decls := range r.unionDecls {
		for name, decl := range decls {
			dt, _ := ns.DataTypeByName(name)
			u := dt.Union

			if decl.Extends != nil {
				parentDT, _, err := r.resolveTypeRef(ns, decl.Extends)
				switch {
				case err != nil:
					r.errs = append(r.errs, err)
				case parentDT.IsNullable():
					r.errorf(decl.Extends, "a union cannot extend a nullable type")
				case parentDT.Kind != KindUnion:
					r.errorf(decl.Extends, "a union can only extend another union")
				default:
					u.Parent = parentDT.Union
				}
			}

			for _, m := range decl.Members {
				switch mv := m.(type) {
				case *ast.Field:
					ft, _, err := r.resolveTypeRef(ns, mv.Type)
					if err != nil {
						r.errs = append(r.errs, err)

						continue
					}

					u.Members = append(u.Members, &Field{
						Name:       mv.Name,
						Type:       ft,
						Default:    mv.Default,
						HasDefault: mv.HasDefault,
						Optional:   ft.IsNullable(),
						Doc:        mv.Doc,
					})
				case *ast.VoidField:
					u.Members = append(u.Members, &VoidField{Name: mv.Name, CatchAll: mv.CatchAll, Doc: mv.Doc})
				}
			}

			u.Doc = decl.Doc
			u.Deprecated = decl.Deprecated
		}
	}
}

// resolveRoutes fills in every route's request/response/error types and
// its attribute list, validating the "since" attribute as a semantic
// version via golang.org/x/mod/semver.
func (r *resolver) resolveRoutes(files []*ast.File) {
	for _, f := range files {
		ns, ok := r.fileNamespace[f]
		if !ok {
			continue
		}

		for _, d := range f.Decls {
			rt, ok := d.(*ast.RouteDecl)
			if !ok {
				continue
			}

			req, _, err1 := r.resolveTypeRef(ns, rt.Request)
			resp, _, err2 := r.resolveTypeRef(ns, rt.Response)
			errT, _, err3 := r.resolveTypeRef(ns, rt.Error)

			if err1 != nil {
				r.errs = append(r.errs, err1)
			}

			if err2 != nil {
				r.errs = append(r.errs, err2)
			}

			if err3 != nil {
				r.errs = append(r.errs, err3)
			}

			if err1 != nil || err2 != nil || err3 != nil {
				continue
			}

			route := &Route{
				ID:         uuid.New(),
				Name:       rt.Name,
				Namespace:  ns,
				Request:    req,
				Response:   resp,
				Error:      errT,
				Doc:        rt.Doc,
				Deprecated: rt.Deprecated,
			}

			if rt.Attrs != nil {
				attrs := NewAttributeList()

				for _, e := range rt.Attrs.Entries {
					if e.Key == "since" {
						s, ok := e.Value.(string)
						if !ok || !validSemver(s) {
							r.errorf(rt.Attrs, "attribute 'since' must be a valid semantic version")

							continue
						}
					}

					attrs.Set(e.Key, e.Value)
				}

				route.Attrs = attrs
			}

			ns.Routes = append(ns.Routes, route)
		}
	}
}
