// Package literal is a small, self-contained participle grammar for the
// literal values Babel's primitive constraint attributes and field
// defaults carry (min_value=-3, max_value=3.2e1, pattern="[0-9]+"). It is
// not on the compiler's hot path — the lexer and parser already tokenize
// and convert these values directly — it exists as an independent,
// second grammar the resolver's attribute validation phase uses to
// re-validate a literal's textual shape, the same way the teacher's
// ast.Bool and ast.SemVer are small standalone capture grammars layered
// on top of its own lexer rather than trusted blindly.
package literal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer/stateful"
)

// Literal is exactly one of Int, Float, Str, or Bool.
type Literal struct {
	Int   *int64   `parser:"( @Int"`
	Float *float64 `parser:"| @Float"`
	Str   *string  `parser:"| @String"`
	Bool  *bool    `parser:"| @Bool )"`
}

var grammar = participle.MustBuild[Literal](
	participle.Lexer(stateful.MustSimple([]stateful.Rule{
		{Name: "Bool", Pattern: `true|false`},
		{Name: "Float", Pattern: `[-+]?\d+(\.\d+)?[eE][-+]?\d+|[-+]?\d+\.\d+`},
		{Name: "Int", Pattern: `[-+]?\d+`},
		{Name: "String", Pattern: `"(\\.|[^"])*"`},
		{Name: "whitespace", Pattern: `\s+`},
	})),
	participle.Unquote("String"),
)

// Parse parses the raw textual form of a single literal — as it appears
// after "=" in a field default or a type argument — into a Literal.
func Parse(raw string) (*Literal, error) {
	lit, err := grammar.ParseString("", strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("malformed literal %q: %w", raw, err)
	}

	return lit, nil
}

// Format renders v back into the Babel source syntax a re-parse of it via
// Parse would accept, the inverse operation used by the resolver's
// round-trip attribute cross-check.
func Format(v interface{}) string {
	switch n := v.(type) {
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case string:
		return strconv.Quote(n)
	case bool:
		return strconv.FormatBool(n)
	default:
		return fmt.Sprintf("%v", n)
	}
}
