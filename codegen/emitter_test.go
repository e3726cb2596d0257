package codegen

import (
	"bytes"
	"testing"
)

func TestEmitterLineIndentBlock(t *testing.T) {
	var buf bytes.Buffer

	e := NewEmitter(&buf)
	e.Block("struct Foo {", "}", func() {
		e.Line("a int")
		e.Line("b string")
	})

	if err := e.Flush(); err != nil {
		t.Fatalf("unexpected flush error: %v", err)
	}

	want := "struct Foo {\n    a int\n    b string\n}\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestEmitterDedentPastZeroClamps(t *testing.T) {
	var buf bytes.Buffer

	e := NewEmitter(&buf)
	e.Dedent()
	e.Dedent()
	e.Line("x")

	if err := e.Flush(); err != nil {
		t.Fatalf("unexpected flush error: %v", err)
	}

	if buf.String() != "x\n" {
		t.Fatalf("got %q, want %q", buf.String(), "x\n")
	}
}

func TestEmitterParagraphWraps(t *testing.T) {
	var buf bytes.Buffer

	e := NewEmitter(&buf)
	e.Paragraph("the quick brown fox jumps over the lazy dog", 15, "// ", "", "")

	if err := e.Flush(); err != nil {
		t.Fatalf("unexpected flush error: %v", err)
	}

	want := "// the quick\n// brown fox\n// jumps over\n// the lazy dog\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestEmitterParagraphInitialAndSubsequentPrefix(t *testing.T) {
	var buf bytes.Buffer

	e := NewEmitter(&buf)
	e.Paragraph("one two three four", 9, "", "- ", "  ")

	if err := e.Flush(); err != nil {
		t.Fatalf("unexpected flush error: %v", err)
	}

	want := "- one two\n  three\n  four\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestEmitterParagraphRespectsIndentLevel(t *testing.T) {
	var buf bytes.Buffer

	e := NewEmitter(&buf)
	e.Indent()
	e.Paragraph("a b c d e f", 6, "", "", "")

	if err := e.Flush(); err != nil {
		t.Fatalf("unexpected flush error: %v", err)
	}

	want := "    a b c\n    d e f\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
