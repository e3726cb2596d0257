package ir

import "github.com/dropbox/babelapi/ast"

// typeCheckDefaults implements phase 11: every field's default value, where
// present, must match its declared type. A *ast.TagRef default is checked
// against the referenced union's AllMembers rather than a literal kind.
func (r *resolver) typeCheckDefaults() {
	for _, ns := range r.root.Namespaces {
		for _, name := range ns.typeOrder {
			dt := ns.dataTypes[name]

			switch dt.Kind {
			case KindStruct:
				for _, f := range dt.Struct.Fields {
					r.typeCheckDefault(r.structDeclFor(dt.Struct), f)
				}
			case KindUnion:
				for _, m := range dt.Union.Members {
					if f, ok := m.(*Field); ok {
						r.typeCheckDefault(r.unionDeclFor(dt.Union), f)
					}
				}
			}
		}
	}
}

func (r *resolver) typeCheckDefault(owner ast.Decl, f *Field) {
	if !f.HasDefault {
		return
	}

	if tagRef, ok := f.Default.(*ast.TagRef); ok {
		inner := f.Type.Inner()
		if inner.Kind != KindUnion {
			r.errorf(owner, "field '"+f.Name+"' default '"+tagRef.Name+"' names a tag, but the field's type is not a union")

			return
		}

		if _, ok := inner.Union.MemberByName(tagRef.Name); !ok {
			r.errorf(owner, "field '"+f.Name+"' default refers to unknown tag '"+tagRef.Name+"' of union '"+inner.Union.Name+"'")
		}

		return
	}

	if !literalMatchesKind(f.Default, f.Type.Inner().Kind) {
		r.errorf(owner, "field '"+f.Name+"' default value does not match its declared type")
	}
}

func literalMatchesKind(lit ast.Literal, k Kind) bool {
	switch k {
	case KindBoolean:
		_, ok := lit.(bool)

		return ok
	case KindInt32, KindInt64, KindUInt32, KindUInt64:
		n, ok := lit.(int64)

		if ok && (k == KindUInt32 || k == KindUInt64) && n < 0 {
			return false
		}

		return ok
	case KindFloat32, KindFloat64:
		switch lit.(type) {
		case int64, float64:
			return true
		default:
			return false
		}
	case KindString, KindBinary, KindTimestamp:
		_, ok := lit.(string)

		return ok
	case KindSymbol:
		_, ok := lit.(*ast.TagRef)

		return ok
	default:
		return false
	}
}

// validateExamples implements phase 12: every named example on a struct
// must assign each required field, using a value matching the field's
// type, and must name no field the struct doesn't have. A field assigned
// twice is not reported; the last value is the one kept.
func (r *resolver) validateExamples() {
	for _, ns := range r.root.Namespaces {
		for _, name := range ns.typeOrder {
			dt := ns.dataTypes[name]
			if dt.Kind != KindStruct {
				continue
			}

			s := dt.Struct
			decl := r.structDeclFor(s)

			for _, label := range s.ExampleOrder {
				ex := s.Examples[label]

				seen := map[string]bool{}

				for _, fname := range ex.FieldOrder {
					seen[fname] = true

					f, ok := s.FieldByName(fname)
					if !ok {
						r.errorf(decl, "example '"+label+"' of '"+s.Name+"' assigns unknown field '"+fname+"'")

						continue
					}

					val := ex.Fields[fname]

					if tagRef, ok := val.(*ast.TagRef); ok {
						inner := f.Type.Inner()
						if inner.Kind != KindUnion {
							r.errorf(decl, "example '"+label+"' field '"+fname+"' names a tag but the field is not a union")

							continue
						}

						if _, ok := inner.Union.MemberByName(tagRef.Name); !ok {
							r.errorf(decl, "example '"+label+"' field '"+fname+"' refers to unknown tag '"+tagRef.Name+"'")
						}

						continue
					}

					if !literalMatchesKind(val, f.Type.Inner().Kind) {
						r.errorf(decl, "example '"+label+"' field '"+fname+"' value does not match its declared type")
					}
				}

				for _, f := range s.AllFields {
					if !seen[f.Name] && !f.HasDefault && !f.Optional {
						r.errorf(decl, "example '"+label+"' of '"+s.Name+"' is missing required field '"+f.Name+"'")
					}
				}

				if err := ValidateExampleJSON(s, ex); err != nil {
					r.errorf(decl, "example '"+label+"' of '"+s.Name+"' fails schema validation: "+err.Error())
				}
			}
		}
	}
}

// resolveDocRefs implements phase 13: every :role:`name` marker collected
// into a DocBlock's Refs is checked against the finished IR. Unknown roles
// are left alone; unresolvable names under a known role are reported.
func (r *resolver) resolveDocRefs() {
	for _, ns := range r.root.Namespaces {
		r.checkDocRefs(ns.Doc, ns, nil)

		for _, name := range ns.typeOrder {
			dt := ns.dataTypes[name]

			switch dt.Kind {
			case KindStruct:
				r.checkDocRefs(dt.Struct.Doc, ns, dt.Struct)

				for _, f := range dt.Struct.Fields {
					r.checkDocRefs(f.Doc, ns, dt.Struct)
				}
			case KindUnion:
				r.checkDocRefs(dt.Union.Doc, ns, nil)
			}
		}

		for _, rt := range ns.Routes {
			r.checkDocRefs(rt.Doc, ns, nil)
		}
	}
}

// checkDocRefs validates the doc block's role markers. scopeStruct, when
// non-nil, is the struct whose fields (inherited ones included) ":field:"
// markers resolve against.
func (r *resolver) checkDocRefs(doc *ast.DocBlock, ns *Namespace, scopeStruct *Struct) {
	if doc == nil {
		return
	}

	for _, ref := range doc.Refs {
		switch ref.Role {
		case "field":
			if scopeStruct == nil {
				r.errorf(doc, "unresolved doc reference :field:`"+ref.Name+"`: no enclosing struct")

				continue
			}

			if _, ok := scopeStruct.FieldByName(ref.Name); !ok {
				r.errorf(doc, "unresolved doc reference :field:`"+ref.Name+"`")
			}
		case "route":
			found := false

			for _, rt := range ns.Routes {
				if rt.Name == ref.Name {
					found = true

					break
				}
			}

			if !found {
				r.errorf(doc, "unresolved doc reference :route:`"+ref.Name+"`")
			}
		case "type":
			if _, ok := ns.DataTypeByName(ref.Name); !ok {
				r.errorf(doc, "unresolved doc reference :type:`"+ref.Name+"`")
			}
		}
	}
}
