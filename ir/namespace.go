package ir

import (
	"sort"

	"github.com/dropbox/babelapi/ast"
	"github.com/google/uuid"
)

// Namespace is a top-level grouping of types and routes, merged across
// every file that declares it by name.
type Namespace struct {
	ID   uuid.UUID
	Name string
	Doc  *ast.DocBlock

	dataTypes map[string]*DataType
	typeOrder []string

	Routes  []*Route
	Imports map[string]*Namespace
}

func newNamespace(name string) *Namespace {
	return &Namespace{
		ID:        uuid.New(),
		Name:      name,
		dataTypes: map[string]*DataType{},
		Imports:   map[string]*Namespace{},
	}
}

// DataTypeByName looks up a struct, union, or alias target registered
// directly in this namespace (not through imports).
func (n *Namespace) DataTypeByName(name string) (*DataType, bool) {
	dt, ok := n.dataTypes[name]

	return dt, ok
}

func (n *Namespace) register(name string, dt *DataType) {
	if _, exists := n.dataTypes[name]; !exists {
		n.typeOrder = append(n.typeOrder, name)
	}

	n.dataTypes[name] = dt
}

// LinearizeDataTypes returns this namespace's composite (Struct/Union) data
// types in topological order: parent before child, referent before
// referrer, cross-namespace edges ignored. Ties (no structural dependency
// either way) are broken by declaration order, so mutually recursive types
// come out deterministically (§4.3 "Outputs consumed by generators").
func (n *Namespace) LinearizeDataTypes() []*DataType {
	var composites []*DataType

	for _, name := range n.typeOrder {
		dt := n.dataTypes[name]
		if dt.IsComposite() {
			composites = append(composites, dt)
		}
	}

	visited := map[*DataType]int{} // 0 unvisited, 1 in-progress, 2 done
	var order []*DataType

	var visit func(dt *DataType)

	visit = func(dt *DataType) {
		if visited[dt] == 2 || visited[dt] == 1 {
			return
		}

		visited[dt] = 1

		for _, dep := range structuralDeps(dt, n) {
			visit(dep)
		}

		visited[dt] = 2
		order = append(order, dt)
	}

	for _, dt := range composites {
		visit(dt)
	}

	return order
}

// structuralDeps returns dt's same-namespace structural dependencies: its
// parent, and its own fields' composite types (for unions, those of its
// typed members). Enumerated subtype children are not dependencies.
func structuralDeps(dt *DataType, n *Namespace) []*DataType {
	var deps []*DataType

	addIfLocal := func(other *DataType) {
		if other == nil || !other.IsComposite() {
			return
		}

		if owner := ownerNamespace(other); owner == n {
			deps = append(deps, other)
		}
	}

	switch dt.Kind {
	case KindStruct:
		s := dt.Struct
		if s.Parent != nil {
			addIfLocal(wrapStruct(s.Parent))
		}

		for _, f := range s.Fields {
			addIfLocal(f.Type.Inner())
		}
	case KindUnion:
		u := dt.Union
		if u.Parent != nil {
			addIfLocal(wrapUnion(u.Parent))
		}

		for _, m := range u.Members {
			if f, ok := m.(*Field); ok {
				addIfLocal(f.Type.Inner())
			}
		}
	}

	return deps
}

func ownerNamespace(dt *DataType) *Namespace {
	switch dt.Kind {
	case KindStruct:
		return dt.Struct.Namespace
	case KindUnion:
		return dt.Union.Namespace
	default:
		return nil
	}
}

// wrapStruct returns s's own canonical placeholder *DataType, the same
// pointer registered in s.Namespace at phase 2 — never a fresh wrapper, so
// pointer-identity dedup (LinearizeDataTypes, DistinctRouteIODataTypes)
// sees one *DataType per Struct no matter how many edges lead to it.
func wrapStruct(s *Struct) *DataType {
	if dt, ok := s.Namespace.DataTypeByName(s.Name); ok {
		return dt
	}

	return &DataType{Kind: KindStruct, Struct: s}
}

func wrapUnion(u *Union) *DataType {
	if dt, ok := u.Namespace.DataTypeByName(u.Name); ok {
		return dt
	}

	return &DataType{Kind: KindUnion, Union: u}
}

// DistinctRouteIODataTypes returns the set of user-defined composites
// transitively reachable through this namespace's routes' request,
// response, and error types — what a generator must know how to
// (de)serialize.
func (n *Namespace) DistinctRouteIODataTypes() []*DataType {
	seen := map[*DataType]bool{}
	var order []string
	byKey := map[string]*DataType{}

	var walk func(dt *DataType)

	walk = func(dt *DataType) {
		if dt == nil {
			return
		}

		switch dt.Kind {
		case KindNullable, KindList:
			walk(dt.Elem)
		case KindStruct:
			if seen[dt] {
				return
			}

			seen[dt] = true
			key := dt.Struct.Namespace.Name + "." + dt.Struct.Name
			byKey[key] = dt
			order = append(order, key)

			if dt.Struct.Parent != nil {
				walk(wrapStruct(dt.Struct.Parent))
			}

			for _, f := range dt.Struct.Fields {
				walk(f.Type)
			}

			for _, sub := range dt.Struct.Subtypes {
				walk(wrapStruct(sub.Child))
			}
		case KindUnion:
			if seen[dt] {
				return
			}

			seen[dt] = true
			key := dt.Union.Namespace.Name + "." + dt.Union.Name
			byKey[key] = dt
			order = append(order, key)

			if dt.Union.Parent != nil {
				walk(wrapUnion(dt.Union.Parent))
			}

			for _, m := range dt.Union.Members {
				if f, ok := m.(*Field); ok {
					walk(f.Type)
				}
			}
		}
	}

	for _, r := range n.Routes {
		walk(r.Request)
		walk(r.Response)
		walk(r.Error)
	}

	sort.Strings(order)

	out := make([]*DataType, 0, len(order))
	for _, k := range order {
		out = append(out, byKey[k])
	}

	return out
}

// Root is the resolver's complete output: every namespace declared across
// the input files, keyed by name.
type Root struct {
	Namespaces map[string]*Namespace
}

// Namespace looks up one of the root's namespaces by name.
func (r *Root) Namespace(name string) (*Namespace, bool) {
	ns, ok := r.Namespaces[name]

	return ns, ok
}
