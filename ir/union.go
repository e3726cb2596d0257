package ir

import (
	"github.com/dropbox/babelapi/ast"
	"github.com/google/uuid"
)

// Union is a tagged-sum type: an optional parent, its own members
// (typed Fields and void tags), and at most one catch-all void tag across
// the whole inheritance chain.
type Union struct {
	ID        uuid.UUID
	Name      string
	Namespace *Namespace
	Parent    *Union

	Members    []UnionMember
	AllMembers []UnionMember
	CatchAll   *VoidField

	Doc        *ast.DocBlock
	Deprecated bool
}

// MemberByName searches AllMembers.
func (u *Union) MemberByName(name string) (UnionMember, bool) {
	for _, m := range u.AllMembers {
		if memberName(m) == name {
			return m, true
		}
	}

	return nil, false
}

func memberName(m UnionMember) string {
	switch v := m.(type) {
	case *Field:
		return v.Name
	case *VoidField:
		return v.Name
	default:
		return ""
	}
}
