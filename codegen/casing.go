package codegen

import "strings"

// splitWords breaks name into its constituent words, recognizing both
// underscore separators and camel/Pascal-case boundaries, the way
// compileCamelIdentifier/compileSnakeIdentifier do for a FIDL-style
// multi-target codegen: a single word list that every IdentifierCase
// rendering is built from.
func splitWords(name string) []string {
	var words []string

	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}

	runes := []rune(name)

	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case i > 0 && isUpper(r) && !isUpper(runes[i-1]):
			flush()

			cur = append(cur, r)
		case i > 0 && isUpper(r) && isUpper(runes[i-1]) && i+1 < len(runes) && !isUpper(runes[i+1]):
			// "ID" followed by "Ref" in "IDRef": split before the last
			// capital of a run when it starts a new capitalized word.
			flush()

			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}

	flush()

	return words
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// FormatIdentifier renders words (as produced by splitWords, or any other
// word list) in the given IdentifierCase. TargetLanguage implementations
// call this from their own Identifier method; it's exported so a
// generator needing a one-off rendering (e.g. a synthesized helper name)
// can reuse it without going through a TargetLanguage value.
func FormatIdentifier(name string, c IdentifierCase) string {
	words := splitWords(name)
	if len(words) == 0 {
		return ""
	}

	switch c {
	case PascalCase:
		var b strings.Builder

		for _, w := range words {
			b.WriteString(titleWord(w))
		}

		return b.String()
	case CamelCase:
		var b strings.Builder

		b.WriteString(strings.ToLower(words[0]))

		for _, w := range words[1:] {
			b.WriteString(titleWord(w))
		}

		return b.String()
	case SnakeCase:
		lower := make([]string, len(words))
		for i, w := range words {
			lower[i] = strings.ToLower(w)
		}

		return strings.Join(lower, "_")
	case ScreamingSnakeCase:
		upper := make([]string, len(words))
		for i, w := range words {
			upper[i] = strings.ToUpper(w)
		}

		return strings.Join(upper, "_")
	default:
		return name
	}
}

func titleWord(w string) string {
	if w == "" {
		return ""
	}

	r := []rune(w)

	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
