package codegen

import "strings"

// MultilineList renders a delimited, comma-separated sequence of items —
// an argument list, a struct literal's fields, a route's parameter list —
// either compactly (continuation lines aligned to the opening delimiter) or
// wrapped one item per indented line, the same
// choice the teacher's XML encoder makes implicitly for attribute lists,
// made explicit and reusable here since every generator in gen/ needs the
// same rendering for struct fields, union members, and route parameters.
type MultilineList struct {
	// Before is written immediately before Open, e.g. "return " or a
	// function name; After is written immediately after Close, e.g. ";".
	Before, After string

	// Open, Close are the delimiter pair, e.g. "(", ")" or "[", "]".
	Open, Close string

	Items []string

	// Compact selects the rendering: true aligns continuation lines to the
	// column right after Before+Open (f(a,\n  b)); false puts every item on
	// its own line at the emitter's current indent level plus one.
	Compact bool

	// SkipLastSep omits the separator after the last item in non-compact
	// mode. Ignored in Compact mode, where the last item never takes a
	// trailing separator (there is nothing after it on its own line to
	// need one).
	SkipLastSep bool
}

// Render writes the list to e at the emitter's current indent level.
func (l MultilineList) Render(e *Emitter) {
	if len(l.Items) == 0 {
		e.writeRaw(l.Before)
		e.writeRaw(l.Open)
		e.writeRaw(l.Close)
		e.writeRaw(l.After)

		return
	}

	if l.Compact {
		l.renderCompact(e)

		return
	}

	l.renderWrapped(e)
}

// renderCompact aligns every continuation line under the column where the
// first item starts, i.e. right after Before+Open.
func (l MultilineList) renderCompact(e *Emitter) {
	e.writeRaw(l.Before)
	e.writeRaw(l.Open)

	pad := strings.Repeat(" ", e.level*len(indentUnit)+len(l.Before)+len(l.Open))

	for i, item := range l.Items {
		if i > 0 {
			e.writeRaw(",\n")
			e.writeRaw(pad)
		}

		e.writeRaw(item)
	}

	e.writeRaw(l.Close)
	e.writeRaw(l.After)
}

// renderWrapped puts every item on its own indented line, trailing each
// with a separator unless it's the last item and SkipLastSep is set.
func (l MultilineList) renderWrapped(e *Emitter) {
	e.writeRaw(l.Before)
	e.writeRaw(l.Open)
	e.writeRaw("\n")
	e.Indent()

	for i, item := range l.Items {
		e.writeIndent()
		e.writeRaw(item)

		if i < len(l.Items)-1 || !l.SkipLastSep {
			e.writeRaw(",")
		}

		e.writeRaw("\n")
	}

	e.Dedent()
	e.writeIndent()
	e.writeRaw(l.Close)
	e.writeRaw(l.After)
}
