package ir

import (
	"testing"

	"github.com/dropbox/babelapi/ast"
	"github.com/dropbox/babelapi/parser"
	"github.com/dropbox/babelapi/token"
	"github.com/stretchr/testify/require"
)

func mustResolve(t *testing.T, sources map[string]string) *Root {
	t.Helper()

	var files []*ast.File

	for path, src := range sources {
		f, errs := parser.Parse(path, src)
		require.Empty(t, errs, "unexpected parse errors in %s", path)

		files = append(files, f)
	}

	root, errs := Resolve(files)
	require.Empty(t, errs, "unexpected resolve errors")

	return root
}

func resolveErrs(t *testing.T, sources map[string]string) []*token.PosError {
	t.Helper()

	var files []*ast.File

	for path, src := range sources {
		f, errs := parser.Parse(path, src)
		require.Empty(t, errs, "unexpected parse errors in %s", path)

		files = append(files, f)
	}

	_, errs := Resolve(files)

	return errs
}

func TestResolveMinimalNamespace(t *testing.T) {
	root := mustResolve(t, map[string]string{
		"t.babel": "namespace files\n",
	})

	ns, ok := root.Namespace("files")
	require.True(t, ok)
	require.Equal(t, "files", ns.Name)
}

func TestResolveStructDefaultAndNullable(t *testing.T) {
	root := mustResolve(t, map[string]string{
		"t.babel": "namespace files\n" +
			"struct Metadata\n" +
			"    name String\n" +
			"    size UInt64 = 0\n" +
			"    rev String?\n",
	})

	ns, _ := root.Namespace("files")
	dt, ok := ns.DataTypeByName("Metadata")
	require.True(t, ok)
	require.Equal(t, KindStruct, dt.Kind)

	s := dt.Struct
	require.Len(t, s.AllFields, 3)

	size, ok := s.FieldByName("size")
	require.True(t, ok)
	require.True(t, size.HasDefault)
	require.Equal(t, int64(0), size.Default)

	rev, ok := s.FieldByName("rev")
	require.True(t, ok)
	require.True(t, rev.Optional)
	require.Equal(t, KindNullable, rev.Type.Kind)
	require.Equal(t, KindString, rev.Type.Inner().Kind)
}

func TestResolveUnionCatchAll(t *testing.T) {
	root := mustResolve(t, map[string]string{
		"t.babel": "namespace files\n" +
			"union Error\n" +
			"    not_found\n" +
			"    other*\n",
	})

	ns, _ := root.Namespace("files")
	dt, ok := ns.DataTypeByName("Error")
	require.True(t, ok)
	require.NotNil(t, dt.Union.CatchAll)
	require.Equal(t, "other", dt.Union.CatchAll.Name)
}

func TestResolveEnumeratedSubtypeLeafDispatch(t *testing.T) {
	root := mustResolve(t, map[string]string{
		"t.babel": "namespace files\n" +
			"struct Resource\n" +
			"    union\n" +
			"        file File\n" +
			"        folder BaseFolder\n" +
			"struct File extends Resource\n" +
			"struct BaseFolder extends Resource\n" +
			"    union\n" +
			"        shared SharedFolder\n" +
			"struct SharedFolder extends BaseFolder\n",
	})

	ns, _ := root.Namespace("files")
	resourceDT, _ := ns.DataTypeByName("Resource")
	resource := resourceDT.Struct

	leaf, err := resource.DecodeTag([]string{"folder", "shared"})
	require.NoError(t, err)
	require.Equal(t, "SharedFolder", leaf.Name)

	_, err = resource.DecodeTag([]string{"folder"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "folder")
}

func TestResolveCyclicInheritanceRejected(t *testing.T) {
	errs := resolveErrs(t, map[string]string{
		"t.babel": "namespace files\n" +
			"struct A extends B\n" +
			"struct B extends A\n",
	})

	require.NotEmpty(t, errs)

	found := false

	for _, e := range errs {
		if containsAny(e.Error(), "circular") {
			found = true
		}
	}

	require.True(t, found, "expected a circular reference diagnostic, got %v", errs)
}

func TestResolveStackedNullableRejected(t *testing.T) {
	errs := resolveErrs(t, map[string]string{
		"t.babel": "namespace files\n" +
			"alias MaybeString = String?\n" +
			"struct S\n" +
			"    x MaybeString?\n",
	})

	require.NotEmpty(t, errs)
}

func TestResolveAliasOfAliasChain(t *testing.T) {
	root := mustResolve(t, map[string]string{
		"t.babel": "namespace files\n" +
			"alias Id = String\n" +
			"alias UserId = Id\n" +
			"struct User\n" +
			"    id UserId\n",
	})

	ns, _ := root.Namespace("files")
	dt, _ := ns.DataTypeByName("User")

	id, ok := dt.Struct.FieldByName("id")
	require.True(t, ok)
	require.Equal(t, KindString, id.Type.Kind)
}

func TestResolveFieldNameCollisionAcrossInheritanceRejected(t *testing.T) {
	errs := resolveErrs(t, map[string]string{
		"t.babel": "namespace files\n" +
			"struct Base\n" +
			"    name String\n" +
			"struct Derived extends Base\n" +
			"    name String\n",
	})

	require.NotEmpty(t, errs)
}

func TestResolveMissingEnumeratedSubtypeEntryRejected(t *testing.T) {
	errs := resolveErrs(t, map[string]string{
		"t.babel": "namespace files\n" +
			"struct Resource\n" +
			"    union\n" +
			"        file File\n" +
			"struct File extends Resource\n" +
			"struct Other extends Resource\n",
	})

	require.NotEmpty(t, errs)
}

func TestResolveExampleValidation(t *testing.T) {
	root := mustResolve(t, map[string]string{
		"t.babel": "namespace files\n" +
			"struct Metadata\n" +
			"    name String\n" +
			"    size UInt64 = 0\n" +
			"    example default\n" +
			"        name = \"report.pdf\"\n",
	})

	ns, _ := root.Namespace("files")
	dt, _ := ns.DataTypeByName("Metadata")
	require.Len(t, dt.Struct.Examples, 1)
}

func TestResolveExampleMissingRequiredFieldRejected(t *testing.T) {
	errs := resolveErrs(t, map[string]string{
		"t.babel": "namespace files\n" +
			"struct Metadata\n" +
			"    name String\n" +
			"    rev String?\n" +
			"    example default\n" +
			"        rev = \"abc\"\n",
	})

	require.NotEmpty(t, errs)
}

func containsAny(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}

	return false
}
