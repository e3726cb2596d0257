package main

import (
	"fmt"
	"sort"

	"github.com/dropbox/babelapi/codegen"
	"github.com/dropbox/babelapi/gen/jsondump"
)

// generators is the set of codegen.CodeGenerator implementations babelc
// knows how to drive, keyed by the name passed as <generator-module> on
// the command line. Real target-language generators are out of scope
// (spec Non-goals); jsondump is the one reference implementation that
// exercises codegen/ and ir/ together.
var generators = map[string]codegen.CodeGenerator{
	"jsondump": jsondump.New(),
}

func lookupGenerator(name string) (codegen.CodeGenerator, error) {
	g, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator module %q (known: %s)", name, knownGeneratorNames())
	}

	return g, nil
}

func knownGeneratorNames() string {
	names := make([]string, 0, len(generators))
	for n := range generators {
		names = append(names, n)
	}

	sort.Strings(names)

	out := ""

	for i, n := range names {
		if i > 0 {
			out += ", "
		}

		out += n
	}

	return out
}
