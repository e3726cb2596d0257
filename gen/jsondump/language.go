package jsondump

import (
	"fmt"

	"github.com/dropbox/babelapi/codegen"
	"github.com/dropbox/babelapi/ir"
)

// language is jsondump's codegen.TargetLanguage. jsondump isn't a real
// target language, but it still has to satisfy the contract every
// generator module declares: a name/extension pair, identifier casing
// (the Generator's own listings print every name exactly as written, but
// Identifier converts on request), a literal formatter, and the TypeName
// mapping the Generator already needed for its field listings.
type language struct{}

func (language) Name() string {
	return "jsondump"
}

func (language) Extension() string {
	return ".json.txt"
}

// Identifier delegates to codegen.FormatIdentifier. jsondump's own field
// listings always use the name exactly as declared (ir.Field.Name), but
// the method still has to perform real case conversion: anything built
// against the TargetLanguage interface, including future tests, may ask
// jsondump to render a name in a casing other than the one it was
// declared in.
func (language) Identifier(name string, c codegen.IdentifierCase) string {
	return codegen.FormatIdentifier(name, c)
}

// Literal renders a string as a Go-quoted string and any other value with
// %v. The Generator's own listings print no literal values.
func (language) Literal(v interface{}) string {
	switch val := v.(type) {
	case string:
		return fmt.Sprintf("%q", val)
	case bool, int64, float64:
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func (language) TypeName(dt *ir.DataType) string {
	return TypeName(dt)
}
