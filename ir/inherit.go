package ir

import "github.com/dropbox/babelapi/ast"

// structDeclFor recovers the ast.StructDecl s was built from, for error
// node positions.
func (r *resolver) structDeclFor(s *Struct) *ast.StructDecl {
	return r.structDecls[s.Namespace][s.Name]
}

func (r *resolver) unionDeclFor(u *Union) *ast.UnionDecl {
	return r.unionDecls[u.Namespace][u.Name]
}

// detectStructCycles implements phase 7 for structs: a DFS over Parent
// edges. Any struct on a cycle, or whose parent chain runs into one, is
// marked so computeAllFields can skip recursing into it (§8 scenario 5).
func (r *resolver) detectStructCycles() map[*Struct]bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := map[*Struct]int{}
	cyclic := map[*Struct]bool{}

	var visit func(s *Struct)

	visit = func(s *Struct) {
		if color[s] == black {
			return
		}

		if color[s] == gray {
			cyclic[s] = true

			return
		}

		color[s] = gray

		if s.Parent != nil {
			visit(s.Parent)

			if cyclic[s.Parent] {
				cyclic[s] = true
			}
		}

		color[s] = black
	}

	for _, ns := range r.root.Namespaces {
		for _, name := range ns.typeOrder {
			dt := ns.dataTypes[name]
			if dt.Kind == KindStruct {
				visit(dt.Struct)
			}
		}
	}

	for s := range cyclic {
		r.errorf(r.structDeclFor(s), "Unresolvable circular reference: '"+s.Name+"' extends itself, directly or indirectly")
	}

	return cyclic
}

// detectUnionCycles mirrors detectStructCycles for union inheritance.
func (r *resolver) detectUnionCycles() map[*Union]bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := map[*Union]int{}
	cyclic := map[*Union]bool{}

	var visit func(u *Union)

	visit = func(u *Union) {
		if color[u] == black {
			return
		}

		if color[u] == gray {
			cyclic[u] = true

			return
		}

		color[u] = gray

		if u.Parent != nil {
			visit(u.Parent)

			if cyclic[u.Parent] {
				cyclic[u] = true
			}
		}

		color[u] = black
	}

	for _, ns := range r.root.Namespaces {
		for _, name := range ns.typeOrder {
			dt := ns.dataTypes[name]
			if dt.Kind == KindUnion {
				visit(dt.Union)
			}
		}
	}

	for u := range cyclic {
		r.errorf(r.unionDeclFor(u), "Unresolvable circular reference: '"+u.Name+"' extends itself, directly or indirectly")
	}

	return cyclic
}

// computeAllFields implements phase 8: a struct's AllFields is its parent's
// AllFields followed by its own Fields, rejecting a field name that
// collides with one already contributed by an ancestor (invariant 2).
// Cyclic structs are left with AllFields == Fields to avoid infinite
// recursion; their cycle was already reported by detectStructCycles.
func (r *resolver) computeAllFields(cyclicStructs map[*Struct]bool) {
	done := map[*Struct]bool{}

	var compute func(s *Struct)

	compute = func(s *Struct) {
		if done[s] || cyclicStructs[s] {
			return
		}

		done[s] = true

		if s.Parent != nil {
			compute(s.Parent)

			seen := map[string]bool{}

			for _, f := range s.Parent.AllFields {
				seen[f.Name] = true
			}

			s.AllFields = append(s.AllFields, s.Parent.AllFields...)

			for _, f := range s.Fields {
				if seen[f.Name] {
					r.errorf(r.structDeclFor(s), "field '"+f.Name+"' is already declared by an ancestor of '"+s.Name+"'")

					continue
				}

				s.AllFields = append(s.AllFields, f)
			}
		} else {
			s.AllFields = append(s.AllFields, s.Fields...)
		}
	}

	for _, ns := range r.root.Namespaces {
		for _, name := range ns.typeOrder {
			dt := ns.dataTypes[name]
			if dt.Kind == KindStruct {
				compute(dt.Struct)
			}
		}
	}

	for s := range cyclicStructs {
		s.AllFields = s.Fields
	}
}

// computeAllMembers implements phase 8 for unions: AllMembers accumulates
// down the inheritance chain, and at most one catch-all void tag may exist
// across the whole chain (invariant 4).
func (r *resolver) computeAllMembers(cyclicUnions map[*Union]bool) {
	done := map[*Union]bool{}

	var compute func(u *Union)

	compute = func(u *Union) {
		if done[u] || cyclicUnions[u] {
			return
		}

		done[u] = true

		var inheritedCatchAll *VoidField

		if u.Parent != nil {
			compute(u.Parent)

			u.AllMembers = append(u.AllMembers, u.Parent.AllMembers...)
			inheritedCatchAll = u.Parent.CatchAll
		}

		u.CatchAll = inheritedCatchAll

		for _, m := range u.Members {
			u.AllMembers = append(u.AllMembers, m)

			if vf, ok := m.(*VoidField); ok && vf.CatchAll {
				if u.CatchAll != nil {
					r.errorf(r.unionDeclFor(u), "union '"+u.Name+"' has more than one catch-all tag across its inheritance chain")

					continue
				}

				u.CatchAll = vf
			}
		}
	}

	for _, ns := range r.root.Namespaces {
		for _, name := range ns.typeOrder {
			dt := ns.dataTypes[name]
			if dt.Kind == KindUnion {
				compute(dt.Union)
			}
		}
	}

	for u := range cyclicUnions {
		u.AllMembers = u.Members
	}
}

// validateSubtypes implements phase 9 (invariant 5): every struct with at
// least one direct child in the corpus must itself declare a non-empty,
// exhaustive (unless marked extensible) Subtypes partition naming exactly
// its direct children, and no tag name may collide with an inherited field
// name.
func (r *resolver) validateSubtypes() {
	children := map[*Struct][]*Struct{}

	for _, ns := range r.root.Namespaces {
		for _, name := range ns.typeOrder {
			dt := ns.dataTypes[name]
			if dt.Kind != KindStruct || dt.Struct.Parent == nil {
				continue
			}

			children[dt.Struct.Parent] = append(children[dt.Struct.Parent], dt.Struct)
		}
	}

	for _, ns := range r.root.Namespaces {
		for _, name := range ns.typeOrder {
			dt := ns.dataTypes[name]
			if dt.Kind != KindStruct {
				continue
			}

			s := dt.Struct
			kids := children[s]

			if len(kids) == 0 {
				continue
			}

			if len(s.Subtypes) == 0 {
				r.errorf(r.structDeclFor(s), "'"+s.Name+"' has subtypes but declares no enumerated-subtypes partition")

				continue
			}

			declared := map[string]*Struct{}
			tagOf := map[*Struct]string{}

			for _, e := range s.Subtypes {
				if _, dup := declared[e.Tag]; dup {
					r.errorf(r.structDeclFor(s), "duplicate subtype tag '"+e.Tag+"' in '"+s.Name+"'")

					continue
				}

				declared[e.Tag] = e.Child

				if prev, ok := tagOf[e.Child]; ok {
					r.errorf(r.structDeclFor(s), "'"+e.Child.Name+"' is listed under more than one tag ('"+prev+"', '"+e.Tag+"') in '"+s.Name+"'")

					continue
				}

				tagOf[e.Child] = e.Tag

				if e.Child.Parent != s {
					r.errorf(r.structDeclFor(s), "'"+e.Child.Name+"' is listed as a subtype of '"+s.Name+"' but does not extend it")
				}

				if f, ok := s.FieldByName(e.Tag); ok {
					_ = f

					r.errorf(r.structDeclFor(s), "subtype tag '"+e.Tag+"' collides with a field of the same name")
				}
			}

			if !s.SubtypesExtensible {
				for _, child := range kids {
					if _, ok := tagOf[child]; !ok {
						r.errorf(r.structDeclFor(s), "direct subtype '"+child.Name+"' of '"+s.Name+"' is missing from its enumerated-subtypes partition")
					}
				}
			}
		}
	}
}
