package codegen

import "github.com/dropbox/babelapi/ir"

// IdentifierCase names a target language's preferred casing for a kind of
// identifier (a field name, a type name, a constant name, ...).
type IdentifierCase int

const (
	// CamelCase lowercases the first word and capitalizes the rest, with
	// no separators: "fileMetadata".
	CamelCase IdentifierCase = iota
	// PascalCase capitalizes every word, with no separators:
	// "FileMetadata".
	PascalCase
	// SnakeCase lowercases every word, joined by underscores:
	// "file_metadata".
	SnakeCase
	// ScreamingSnakeCase uppercases every word, joined by underscores:
	// "FILE_METADATA".
	ScreamingSnakeCase
)

// TargetLanguage declares a generated-code target's file extension and the
// naming/formatting conventions every generator for that target reuses:
// how to case an identifier, how to render a literal value in the target's
// own syntax, and how a resolved DataType maps onto the target's type
// system. A generator module is the pair of this and a CodeGenerator; the
// runtime discovers both by the explicit module name given on the CLI,
// never by scanning installed packages.
type TargetLanguage interface {
	// Name identifies this language for diagnostics and the CLI's
	// generator-module argument, e.g. "swift", "python".
	Name() string

	// Extension returns the file suffix (including the leading dot) this
	// language's generated files use, e.g. ".swift".
	Extension() string

	// Identifier converts name, as written in a .babel source file, to c's
	// casing convention for this language.
	Identifier(name string, c IdentifierCase) string

	// Literal renders a Go value decoded from a Babel literal (bool,
	// int64, float64, or string) the way this language's syntax spells it.
	Literal(v interface{}) string

	// TypeName maps a resolved DataType onto this language's own type
	// syntax, e.g. Babel's UInt64 to Swift's "UInt64" or Python's "int".
	TypeName(dt *ir.DataType) string
}

// CodeGenerator turns a resolved, validated IR into one or more output
// files for the TargetLanguage it declares. Implementations are expected
// to be pure functions of root: no generator may mutate the IR it's
// handed, matching §9's "generators are read-only consumers of the
// tower's output" design note.
type CodeGenerator interface {
	// Language identifies the target this generator produces and supplies
	// its naming/formatting/type-mapping conventions.
	Language() TargetLanguage

	// Generate renders every namespace in root into out. A non-nil error
	// aborts the whole compile; Output's buffer-then-flush design means
	// nothing has been written to disk yet when that happens.
	Generate(root *ir.Root, out *Output) error
}
