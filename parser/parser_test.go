// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"testing"

	"github.com/dropbox/babelapi/ast"
)

func mustParse(t *testing.T, src string) *ast.File {
	t.Helper()

	file, errs := Parse("t.babel", src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	return file
}

func TestParseMinimalNamespace(t *testing.T) {
	file := mustParse(t, "namespace files\n")

	if len(file.Decls) != 1 {
		t.Fatalf("got %d decls, want 1", len(file.Decls))
	}

	ns, ok := file.Decls[0].(*ast.NamespaceDecl)
	if !ok {
		t.Fatalf("decl 0 is %T, want *ast.NamespaceDecl", file.Decls[0])
	}

	if ns.Name != "files" {
		t.Fatalf("got namespace %q, want files", ns.Name)
	}
}

func TestParseStructWithDefaultAndNullable(t *testing.T) {
	src := "namespace files\n" +
		"struct Metadata\n" +
		"    name String\n" +
		"    size UInt64 = 0\n" +
		"    rev String?\n"

	file := mustParse(t, src)

	st, ok := file.Decls[1].(*ast.StructDecl)
	if !ok {
		t.Fatalf("decl 1 is %T, want *ast.StructDecl", file.Decls[1])
	}

	if st.Name != "Metadata" {
		t.Fatalf("got struct name %q", st.Name)
	}

	if len(st.Fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(st.Fields))
	}

	if st.Fields[0].Type.Name != "String" {
		t.Fatalf("field 0 type = %q, want String", st.Fields[0].Type.Name)
	}

	if !st.Fields[1].HasDefault {
		t.Fatalf("field 1 expected a default value")
	}

	if n, ok := st.Fields[1].Default.(int64); !ok || n != 0 {
		t.Fatalf("field 1 default = %v, want int64(0)", st.Fields[1].Default)
	}

	if !st.Fields[2].Type.Nullable {
		t.Fatalf("field 2 expected Nullable")
	}
}

func TestParseStructExtendsAndDoc(t *testing.T) {
	src := "namespace files\n" +
		"struct Metadata\n" +
		"    \"Metadata about one file.\"\n" +
		"    name String\n" +
		"struct FileMetadata extends Metadata\n" +
		"    id UInt64\n"

	file := mustParse(t, src)

	base := file.Decls[1].(*ast.StructDecl)
	if base.Doc == nil || base.Doc.Text != "Metadata about one file." {
		t.Fatalf("got doc %+v", base.Doc)
	}

	derived := file.Decls[2].(*ast.StructDecl)
	if derived.Extends == nil || derived.Extends.Name != "Metadata" {
		t.Fatalf("got extends %+v", derived.Extends)
	}
}

func TestParseUnionCatchAll(t *testing.T) {
	src := "namespace files\n" +
		"union Error\n" +
		"    not_found\n" +
		"    conflict String\n" +
		"    other*\n"

	file := mustParse(t, src)

	un := file.Decls[1].(*ast.UnionDecl)

	if len(un.Members) != 3 {
		t.Fatalf("got %d members, want 3", len(un.Members))
	}

	if _, ok := un.Members[0].(*ast.VoidField); !ok {
		t.Fatalf("member 0 is %T, want *ast.VoidField", un.Members[0])
	}

	fld, ok := un.Members[1].(*ast.Field)
	if !ok {
		t.Fatalf("member 1 is %T, want *ast.Field", un.Members[1])
	}

	if fld.Type.Name != "String" {
		t.Fatalf("member 1 type = %q, want String", fld.Type.Name)
	}

	vf, ok := un.Members[2].(*ast.VoidField)
	if !ok || !vf.CatchAll {
		t.Fatalf("member 2 expected a catch-all void field, got %+v", un.Members[2])
	}
}

func TestParseEnumeratedSubtypes(t *testing.T) {
	src := "namespace files\n" +
		"struct Metadata\n" +
		"    union\n" +
		"        file FileMetadata\n" +
		"        folder FolderMetadata\n" +
		"struct FileMetadata extends Metadata\n" +
		"    size UInt64\n" +
		"struct FolderMetadata extends Metadata\n"

	file := mustParse(t, src)

	base := file.Decls[1].(*ast.StructDecl)
	if base.Subtypes == nil {
		t.Fatalf("expected a subtypes block")
	}

	if len(base.Subtypes.Tags) != 2 {
		t.Fatalf("got %d subtype tags, want 2", len(base.Subtypes.Tags))
	}

	if base.Subtypes.Tags[0].Tag != "file" || base.Subtypes.Tags[0].Type.Name != "FileMetadata" {
		t.Fatalf("got tag 0 = %+v", base.Subtypes.Tags[0])
	}
}

func TestParseRouteWithAttrsAndDoc(t *testing.T) {
	src := "namespace files\n" +
		"route get_metadata(String, Metadata, Error)\n" +
		"    \"Looks up metadata for a path.\"\n" +
		"    since=\"1.0.0\"\n" +
		"    allow_patch_method=true\n"

	file := mustParse(t, src)

	rt := file.Decls[1].(*ast.RouteDecl)

	if rt.Request.Name != "String" || rt.Response.Name != "Metadata" || rt.Error.Name != "Error" {
		t.Fatalf("got route signature %+v/%+v/%+v", rt.Request, rt.Response, rt.Error)
	}

	if rt.Doc == nil || rt.Doc.Text != "Looks up metadata for a path." {
		t.Fatalf("got doc %+v", rt.Doc)
	}

	since, ok := rt.Attrs.Get("since")
	if !ok || since != "1.0.0" {
		t.Fatalf("got since attr %v, ok=%v", since, ok)
	}

	allowPatch, ok := rt.Attrs.Get("allow_patch_method")
	if !ok || allowPatch != true {
		t.Fatalf("got allow_patch_method attr %v, ok=%v", allowPatch, ok)
	}
}

func TestParseExample(t *testing.T) {
	src := "namespace files\n" +
		"struct Metadata\n" +
		"    name String\n" +
		"    size UInt64\n" +
		"    example default\n" +
		"        name=\"/Homework/math.docx\"\n" +
		"        size=1024\n"

	file := mustParse(t, src)

	st := file.Decls[1].(*ast.StructDecl)

	if len(st.Examples) != 1 {
		t.Fatalf("got %d examples, want 1", len(st.Examples))
	}

	ex := st.Examples[0]
	if ex.Label != "default" {
		t.Fatalf("got example label %q", ex.Label)
	}

	if len(ex.Fields) != 2 || ex.Fields[0].Name != "name" || ex.Fields[1].Name != "size" {
		t.Fatalf("got example fields %+v", ex.Fields)
	}
}

func TestParseAliasWithTypeArgs(t *testing.T) {
	file := mustParse(t, "namespace files\nalias Rev = String(min_length=1, pattern=\"[0-9a-f]+\")\n")

	al := file.Decls[1].(*ast.AliasDecl)
	if al.Type.Name != "String" {
		t.Fatalf("got alias type %q", al.Type.Name)
	}

	minLen, ok := al.Type.KeywordArgs["min_length"]
	if !ok || minLen != int64(1) {
		t.Fatalf("got min_length %v, ok=%v", minLen, ok)
	}
}

func TestParseImport(t *testing.T) {
	file := mustParse(t, "namespace files\nimport users\nalias Owner = users.User\n")

	imp := file.Decls[1].(*ast.ImportDecl)
	if imp.Name != "users" {
		t.Fatalf("got import %q", imp.Name)
	}

	al := file.Decls[2].(*ast.AliasDecl)
	if al.Type.Namespace != "users" || al.Type.Name != "User" {
		t.Fatalf("got alias type %+v", al.Type)
	}
}

func TestParseErrorRecoversAtNextDecl(t *testing.T) {
	src := "namespace files\n" +
		"struct Broken\n" +
		"    ???\n" +
		"struct Metadata\n" +
		"    name String\n"

	file, errs := Parse("t.babel", src)
	if len(errs) == 0 {
		t.Fatalf("expected at least one error")
	}

	var names []string

	for _, d := range file.Decls {
		if st, ok := d.(*ast.StructDecl); ok {
			names = append(names, st.Name)
		}
	}

	found := false

	for _, n := range names {
		if n == "Metadata" {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected recovery to still parse struct Metadata, got decls %v", names)
	}
}
