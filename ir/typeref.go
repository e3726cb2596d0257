package ir

import (
	"regexp"

	"github.com/dropbox/babelapi/ast"
	"github.com/dropbox/babelapi/ir/literal"
	"github.com/dropbox/babelapi/token"
	"golang.org/x/mod/semver"
)

// resolveAliases finishes phase 4 for AliasDecls: aliases may reference
// other aliases, so they're resolved by repeated passes until a fixed
// point; any name still unresolved once no pass makes progress is part of
// an alias cycle.
func (r *resolver) resolveAliases() {
	for ns, decls := range r.aliasDecls {
		pending := map[string]*ast.AliasDecl{}
		for name, decl := range decls {
			pending[name] = decl
		}

		for len(pending) > 0 {
			progressed := false

			for name, decl := range pending {
				dt, notReady, err := r.resolveTypeRef(ns, decl.Type)
				if notReady {
					continue
				}

				delete(pending, name)
				progressed = true

				if err != nil {
					r.errs = append(r.errs, err)

					continue
				}

				ns.register(name, dt)
			}

			if !progressed {
				for name, decl := range pending {
					r.errorf(decl, "Unresolvable circular reference")

					delete(pending, name)
				}

				break
			}
		}
	}
}

// resolveTypeRef resolves a TypeRef in the scope of ns: {ns itself ∪ ns's
// imports ∪ builtin primitives} (invariant 1). notReady is true only while
// ref names an alias still being resolved by resolveAliases — callers
// outside that loop never see it set.
func (r *resolver) resolveTypeRef(ns *Namespace, ref *ast.TypeRef) (*DataType, bool, *token.PosError) {
	target := ns

	if ref.Namespace != "" && ref.Namespace != ns.Name {
		other, ok := ns.Imports[ref.Namespace]
		if !ok {
			return nil, false, token.NewPosError(ref, "reference to unimported namespace '"+ref.Namespace+"'")
		}

		target = other
	}

	if k, ok := IsPrimitiveName(ref.Name); ok && ref.Namespace == "" {
		return r.resolvePrimitive(ns, ref, k)
	}

	if dt, ok := target.DataTypeByName(ref.Name); ok {
		if len(ref.PosArgs) > 0 || len(ref.KeywordArgs) > 0 {
			return nil, false, token.NewPosError(ref,
				"alias target type attributes may only be set on the original instantiation")
		}

		return r.wrapNullable(ref, dt)
	}

	if ref.Namespace == "" {
		if _, pending := r.aliasDecls[ns][ref.Name]; pending {
			if _, resolved := ns.DataTypeByName(ref.Name); !resolved {
				return nil, true, nil
			}
		}
	}

	return nil, false, token.NewPosError(ref, "undefined type reference '"+ref.QualifiedName()+"'")
}

func (r *resolver) resolvePrimitive(ns *Namespace, ref *ast.TypeRef, k Kind) (*DataType, bool, *token.PosError) {
	dt := newPrimitive(k)

	if k == KindList {
		if len(ref.PosArgs) != 1 || len(ref.KeywordArgs) > 0 {
			return nil, false, token.NewPosError(ref, "List takes exactly one positional type argument")
		}

		elem, notReady, err := r.resolveTypeRef(ns, ref.PosArgs[0])
		if notReady || err != nil {
			return nil, notReady, err
		}

		dt.Elem = elem

		return r.wrapNullable(ref, dt)
	}

	if len(ref.PosArgs) > 0 {
		return nil, false, token.NewPosError(ref, "'"+ref.Name+"' does not accept positional type arguments")
	}

	if len(ref.KeywordArgs) > 0 {
		attrs, err := r.validateAttrs(ref, k, ref.KeywordArgs)
		if err != nil {
			return nil, false, err
		}

		dt.Attrs = attrs
	}

	return r.wrapNullable(ref, dt)
}

// wrapNullable applies phase 6: a nullable flag may appear at most once
// along any path, and Void may never be nullable.
func (r *resolver) wrapNullable(ref *ast.TypeRef, dt *DataType) (*DataType, bool, *token.PosError) {
	if !ref.Nullable {
		return dt, false, nil
	}

	if dt.Kind == KindVoid {
		return nil, false, token.NewPosError(ref, "Void types may never be nullable")
	}

	if dt.Kind == KindNullable {
		return nil, false, token.NewPosError(ref, "Cannot mark reference to nullable type as nullable.")
	}

	return &DataType{Kind: KindNullable, Elem: dt}, false, nil
}

var numericKinds = map[Kind]bool{
	KindInt32: true, KindInt64: true, KindUInt32: true, KindUInt64: true,
	KindFloat32: true, KindFloat64: true,
}

var unsignedKinds = map[Kind]bool{KindUInt32: true, KindUInt64: true}

// validateAttrs implements phase 5: constraint-attribute arguments are
// checked against the primitive's domain. Numeric bound attributes are
// cross-checked a second time through the literal package's independent
// grammar, mirroring the teacher's habit of re-validating a captured
// literal rather than trusting the first parse.
func (r *resolver) validateAttrs(ref *ast.TypeRef, k Kind, kwargs map[string]ast.Literal) (map[string]ast.Literal, *token.PosError) {
	out := map[string]ast.Literal{}

	for key, val := range kwargs {
		switch key {
		case "min_value", "max_value":
			if !numericKinds[k] {
				return nil, token.NewPosError(ref, "'"+key+"' does not apply to "+string(k))
			}

			n, ok := attrFloat(val)
			if !ok {
				return nil, token.NewPosError(ref, "'"+key+"' must be a numeric literal")
			}

			if unsignedKinds[k] && n < 0 {
				return nil, token.NewPosError(ref, string(k)+"("+key+"="+literal.Format(val)+") is out of range for an unsigned type")
			}

			if _, err := literal.Parse(literal.Format(val)); err != nil {
				return nil, token.NewPosError(ref, "malformed '"+key+"' literal").SetCause(err)
			}
		case "min_length", "max_length":
			if k != KindString && k != KindBinary {
				return nil, token.NewPosError(ref, "'"+key+"' does not apply to "+string(k))
			}

			n, ok := val.(int64)
			if !ok || n < 0 {
				return nil, token.NewPosError(ref, "'"+key+"' must be a non-negative integer literal")
			}
		case "pattern":
			if k != KindString {
				return nil, token.NewPosError(ref, "'pattern' only applies to String")
			}

			s, ok := val.(string)
			if !ok {
				return nil, token.NewPosError(ref, "'pattern' must be a string literal")
			}

			if _, err := regexp.Compile(s); err != nil {
				return nil, token.NewPosError(ref, "invalid 'pattern' regular expression").SetCause(err)
			}
		case "format":
			if k != KindTimestamp {
				return nil, token.NewPosError(ref, "'format' only applies to Timestamp")
			}

			if _, ok := val.(string); !ok {
				return nil, token.NewPosError(ref, "'format' must be a string literal")
			}
		default:
			return nil, token.NewPosError(ref, "unknown attribute '"+key+"'")
		}

		out[key] = val
	}

	if (k == KindUInt32 || k == KindInt32) && crossesInt32Bounds(k, out) {
		return nil, token.NewPosError(ref, "attribute bounds exceed the storage range of "+string(k))
	}

	return out, nil
}

// crossesInt32Bounds reports whether a min_value/max_value attribute lies
// outside the storage range of the 32-bit kind k (Int32 or UInt32).
func crossesInt32Bounds(k Kind, attrs map[string]ast.Literal) bool {
	lo, hi := float64(-2147483648), float64(2147483647)
	if k == KindUInt32 {
		lo, hi = 0, 4294967295
	}

	for _, key := range []string{"min_value", "max_value"} {
		if v, ok := attrs[key]; ok {
			if n, ok := attrFloat(v); ok && (n < lo || n > hi) {
				return true
			}
		}
	}

	return false
}

// normalizeSemver adapts Babel's bare "1.4.0" attribute spelling to the
// "v1.4.0" form golang.org/x/mod/semver requires.
func normalizeSemver(s string) string {
	if len(s) > 0 && s[0] == 'v' {
		return s
	}

	return "v" + s
}

func validSemver(s string) bool {
	return semver.IsValid(normalizeSemver(s))
}
