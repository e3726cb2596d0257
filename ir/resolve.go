package ir

import (
	"sort"

	"github.com/dropbox/babelapi/ast"
	"github.com/dropbox/babelapi/token"
	"github.com/google/uuid"
)

// resolver owns all intermediate bookkeeping needed to turn a set of parsed
// files into a Root; it is never exposed, matching the design note that
// resolution is a single pure function and the resolver does not outlive
// the call.
type resolver struct {
	root *Root

	fileNamespace map[*ast.File]*Namespace
	nameOwner     map[*Namespace]map[string]ast.Decl

	structDecls map[*Namespace]map[string]*ast.StructDecl
	unionDecls  map[*Namespace]map[string]*ast.UnionDecl
	aliasDecls  map[*Namespace]map[string]*ast.AliasDecl

	errs []*token.PosError
}

// Resolve consumes every parsed file and produces a single linked,
// validated IR, running the thirteen phases of §4.3 in order. It refuses
// to proceed past a phase that logged an error, since later phases
// presuppose earlier invariants; it always returns whatever diagnostics
// were collected, sorted by (file, line) for deterministic output.
func Resolve(files []*ast.File) (*Root, []*token.PosError) {
	r := &resolver{
		root:          &Root{Namespaces: map[string]*Namespace{}},
		fileNamespace: map[*ast.File]*Namespace{},
		nameOwner:     map[*Namespace]map[string]ast.Decl{},
		structDecls:   map[*Namespace]map[string]*ast.StructDecl{},
		unionDecls:    map[*Namespace]map[string]*ast.UnionDecl{},
		aliasDecls:    map[*Namespace]map[string]*ast.AliasDecl{},
	}

	r.collectNamespaces(files)
	if r.failed() {
		return r.finish()
	}

	r.registerDeclsAndPlaceholders(files)
	if r.failed() {
		return r.finish()
	}

	r.linkImports(files)
	if r.failed() {
		return r.finish()
	}

	r.resolveAliases()
	if r.failed() {
		return r.finish()
	}

	r.resolveStructs()
	r.resolveUnions()
	r.resolveRoutes(files)
	if r.failed() {
		return r.finish()
	}

	cyclicStructs := r.detectStructCycles()
	cyclicUnions := r.detectUnionCycles()
	if r.failed() {
		return r.finish()
	}

	r.computeAllFields(cyclicStructs)
	r.computeAllMembers(cyclicUnions)
	if r.failed() {
		return r.finish()
	}

	r.validateSubtypes()
	if r.failed() {
		return r.finish()
	}

	r.typeCheckDefaults()
	r.validateExamples()
	r.resolveDocRefs()

	return r.finish()
}

func (r *resolver) failed() bool {
	return len(r.errs) > 0
}

func (r *resolver) finish() (*Root, []*token.PosError) {
	sort.SliceStable(r.errs, func(i, j int) bool {
		a, b := r.errs[i], r.errs[j]
		if len(a.Details) == 0 || len(b.Details) == 0 || a.Details[0].Node == nil || b.Details[0].Node == nil {
			return false
		}

		pa, pb := a.Details[0].Node.Begin(), b.Details[0].Node.Begin()
		if pa.File != pb.File {
			return pa.File < pb.File
		}

		return pa.Line < pb.Line
	})

	return r.root, r.errs
}

func (r *resolver) errorf(node token.Node, msg string, details ...token.ErrDetail) {
	r.errs = append(r.errs, token.NewPosError(node, msg, details...))
}

// collectNamespaces implements phase 1: every file's namespace declaration
// resolves to a Namespace, with same-name docstrings concatenated in input
// order.
func (r *resolver) collectNamespaces(files []*ast.File) {
	for _, f := range files {
		nsDecl := f.Namespace()
		if nsDecl == nil {
			r.errorf(token.NewNode(token.Pos{File: f.Path}, token.Pos{File: f.Path}), "file declares no namespace")

			continue
		}

		ns, ok := r.root.Namespaces[nsDecl.Name]
		if !ok {
			ns = newNamespace(nsDecl.Name)
			r.root.Namespaces[nsDecl.Name] = ns
		}

		if nsDecl.Doc != nil {
			if ns.Doc == nil {
				ns.Doc = nsDecl.Doc
			} else {
				ns.Doc = ast.NewDocBlock(ns.Doc.Position, ns.Doc.Text+"\n"+nsDecl.Doc.Text)
			}
		}

		r.fileNamespace[f] = ns
	}
}

// registerDeclsAndPlaceholders implements phase 2 (declaration
// registration) and the first half of phase 4 (name-only placeholders for
// every struct and union, so forward and mutually recursive references
// resolve in the pass that follows).
func (r *resolver) registerDeclsAndPlaceholders(files []*ast.File) {
	for _, f := range files {
		ns, ok := r.fileNamespace[f]
		if !ok {
			continue
		}

		if r.nameOwner[ns] == nil {
			r.nameOwner[ns] = map[string]ast.Decl{}
			r.structDecls[ns] = map[string]*ast.StructDecl{}
			r.unionDecls[ns] = map[string]*ast.UnionDecl{}
			r.aliasDecls[ns] = map[string]*ast.AliasDecl{}
		}

		for _, d := range f.Decls {
			switch decl := d.(type) {
			case *ast.StructDecl:
				if !r.registerName(ns, decl.Name, decl) {
					continue
				}

				r.structDecls[ns][decl.Name] = decl
				s := &Struct{Name: decl.Name, Namespace: ns, Examples: map[string]*Example{}}
				s.ID = uuid.New()
				ns.register(decl.Name, &DataType{Kind: KindStruct, Struct: s})
			case *ast.UnionDecl:
				if !r.registerName(ns, decl.Name, decl) {
					continue
				}

				r.unionDecls[ns][decl.Name] = decl
				u := &Union{Name: decl.Name, Namespace: ns}
				u.ID = uuid.New()
				ns.register(decl.Name, &DataType{Kind: KindUnion, Union: u})
			case *ast.AliasDecl:
				if !r.registerName(ns, decl.Name, decl) {
					continue
				}

				r.aliasDecls[ns][decl.Name] = decl
			}
		}
	}
}

func (r *resolver) registerName(ns *Namespace, name string, decl ast.Decl) bool {
	if existing, taken := r.nameOwner[ns][name]; taken {
		r.errorf(decl, "'"+name+"' is already declared in namespace '"+ns.Name+"'",
			token.NewErrDetail(existing, "first declared here"))

		return false
	}

	r.nameOwner[ns][name] = decl

	return true
}

// linkImports implements phase 3: every import resolves to an existing
// namespace; self-imports and imports of undefined namespaces are
// rejected.
func (r *resolver) linkImports(files []*ast.File) {
	for _, f := range files {
		ns, ok := r.fileNamespace[f]
		if !ok {
			continue
		}

		for _, d := range f.Decls {
			imp, ok := d.(*ast.ImportDecl)
			if !ok {
				continue
			}

			if imp.Name == ns.Name {
				r.errorf(imp, "namespace '"+ns.Name+"' cannot import itself")

				continue
			}

			other, ok := r.root.Namespaces[imp.Name]
			if !ok {
				r.errorf(imp, "import of undefined namespace '"+imp.Name+"'")

				continue
			}

			ns.Imports[imp.Name] = other
		}
	}
}
