package ir

import "github.com/dropbox/babelapi/ast"

// Attribute is a single key/value pair attached to a Route.
type Attribute struct {
	Key   string
	Value ast.Literal
}

// AttributeList is an ordered, last-write-wins collection of route
// attributes (style="rpc" on its own line in a route's body), adapted from the
// teacher's util.AttributeList but carrying a typed ast.Literal value
// instead of a raw string.
type AttributeList struct {
	attrs []Attribute
}

// NewAttributeList creates an empty AttributeList.
func NewAttributeList() *AttributeList {
	return &AttributeList{}
}

// Len returns the number of attributes in the list.
func (l *AttributeList) Len() int {
	if l == nil {
		return 0
	}

	return len(l.attrs)
}

// Add appends an attribute unconditionally, permitting duplicate keys; Get
// returns the last one written.
func (l *AttributeList) Add(key string, val ast.Literal) {
	l.attrs = append(l.attrs, Attribute{Key: key, Value: val})
}

// Set overwrites the first existing attribute with key, or appends a new
// one. Returns true if an existing attribute was overwritten.
func (l *AttributeList) Set(key string, val ast.Literal) bool {
	for i := range l.attrs {
		if l.attrs[i].Key == key {
			l.attrs[i].Value = val

			return true
		}
	}

	l.Add(key, val)

	return false
}

// Get returns the value for key and whether it was present. Later entries
// with the same key win.
func (l *AttributeList) Get(key string) (ast.Literal, bool) {
	if l == nil {
		return nil, false
	}

	var (
		val   ast.Literal
		found bool
	)

	for _, a := range l.attrs {
		if a.Key == key {
			val, found = a.Value, true
		}
	}

	return val, found
}

// Merge combines l with other, with other's attributes taking priority on
// key collisions.
func (l *AttributeList) Merge(other *AttributeList) *AttributeList {
	result := NewAttributeList()

	for _, a := range l.attrs {
		result.Set(a.Key, a.Value)
	}

	if other != nil {
		for _, a := range other.attrs {
			result.Set(a.Key, a.Value)
		}
	}

	return result
}

// All returns the attributes in declaration order.
func (l *AttributeList) All() []Attribute {
	if l == nil {
		return nil
	}

	return l.attrs
}
