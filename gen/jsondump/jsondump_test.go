package jsondump

import (
	"strings"
	"testing"

	"github.com/dropbox/babelapi/ast"
	"github.com/dropbox/babelapi/codegen"
	"github.com/dropbox/babelapi/ir"
	"github.com/dropbox/babelapi/parser"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, src string) *ir.Root {
	t.Helper()

	file, errs := parser.Parse("t.babel", src)
	require.Empty(t, errs)

	root, errs := ir.Resolve([]*ast.File{file})
	require.Empty(t, errs)

	return root
}

func TestGenerateStructAndUnion(t *testing.T) {
	root := resolve(t, "namespace files\n"+
		"struct Metadata\n"+
		"    name String\n"+
		"    size UInt64 = 0\n"+
		"union Error\n"+
		"    not_found\n"+
		"    other*\n"+
		"route get_metadata(String, Metadata, Error)\n")

	out := codegen.NewOutput()
	require.NoError(t, New().Generate(root, out))

	files := out.Files()
	text, ok := files["files.json.txt"]
	require.True(t, ok)

	require.Contains(t, text, `"namespace": "files"`)
	require.Contains(t, text, `"name": "Metadata"`)
	require.Contains(t, text, `"name": "Error"`)
	require.Contains(t, text, `"name": "get_metadata"`)
	require.Contains(t, text, `"catchAll": true`)
}

func TestLanguageIdentifierAndTypeName(t *testing.T) {
	lang := New().Language()

	require.Equal(t, "jsondump", lang.Name())
	require.Equal(t, ".json.txt", lang.Extension())
	require.Equal(t, "file_metadata", lang.Identifier("FileMetadata", codegen.SnakeCase))
	require.Equal(t, `"hi"`, lang.Literal("hi"))
	require.Equal(t, "String?", lang.TypeName(&ir.DataType{Kind: ir.KindNullable, Elem: &ir.DataType{Kind: ir.KindString}}))
}

func TestTypeNameRendersNullableAndList(t *testing.T) {
	root := resolve(t, "namespace files\n"+
		"struct Box\n"+
		"    tags List(String)\n"+
		"    note String?\n")

	ns, ok := root.Namespace("files")
	require.True(t, ok)

	dt, ok := ns.DataTypeByName("Box")
	require.True(t, ok)

	tags, ok := dt.Struct.FieldByName("tags")
	require.True(t, ok)
	require.Equal(t, "[String]", TypeName(tags.Type))

	note, ok := dt.Struct.FieldByName("note")
	require.True(t, ok)
	require.Equal(t, "String?", TypeName(note.Type))
}

func TestGenerateIsDeterministicAcrossRuns(t *testing.T) {
	src := "namespace files\n" +
		"struct A\n" +
		"    union\n" +
		"        b B\n" +
		"    x String\n" +
		"struct B extends A\n" +
		"    y String\n"

	root1 := resolve(t, src)
	root2 := resolve(t, src)

	out1 := codegen.NewOutput()
	out2 := codegen.NewOutput()

	require.NoError(t, New().Generate(root1, out1))
	require.NoError(t, New().Generate(root2, out2))

	require.Equal(t, out1.Files()["files.json.txt"], out2.Files()["files.json.txt"])
	require.True(t, strings.Contains(out1.Files()["files.json.txt"], `"name": "B"`))
}
