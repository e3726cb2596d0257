package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dropbox/babelapi/ast"
	"github.com/dropbox/babelapi/codegen"
	"github.com/dropbox/babelapi/ir"
	"github.com/dropbox/babelapi/parser"
	"github.com/dropbox/babelapi/token"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// compileOptions holds the compile subcommand's parsed arguments and flags.
type compileOptions struct {
	generatorName string
	specFiles     []string
	outDir        string
	dumpIR        string
	log           zerolog.Logger
	stdout        io.Writer
	stderr        io.Writer
}

// runCompile implements §6.4's collaborator contract: parse every spec
// file, resolve the combined set, optionally dump the resolved IR, then
// hand it to the requested generator. It writes no partial output: a
// generator's Output buffers everything in memory and only Flush commits
// to disk, and runCompile never calls Flush after a failed generation.
func runCompile(opts compileOptions) error {
	opts.log.Debug().Strs("files", opts.specFiles).Msg("reading spec files")

	var files []*ast.File

	for _, path := range opts.specFiles {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		file, errs := parser.Parse(path, string(src))
		if len(errs) > 0 {
			printDiagnostics(opts.stderr, errs)

			return fmt.Errorf("%d error(s) parsing %s", len(errs), path)
		}

		files = append(files, file)
	}

	opts.log.Debug().Int("files", len(files)).Msg("resolving")

	root, errs := ir.Resolve(files)
	if len(errs) > 0 {
		printDiagnostics(opts.stderr, errs)

		return fmt.Errorf("%d error(s) resolving spec", len(errs))
	}

	if opts.dumpIR != "" {
		if err := writeIRDump(opts.stdout, opts.dumpIR, root); err != nil {
			return err
		}

		return nil
	}

	gen, err := lookupGenerator(opts.generatorName)
	if err != nil {
		return err
	}

	opts.log.Info().Str("generator", gen.Language().Name()).Msg("generating")

	out := codegen.NewOutput()
	if err := gen.Generate(root, out); err != nil {
		return fmt.Errorf("generating with %s: %w", opts.generatorName, err)
	}

	if err := out.Flush(opts.outDir); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	opts.log.Info().Strs("paths", out.Paths()).Msg("wrote output")

	return nil
}

// printDiagnostics writes each diagnostic on its own "path:line: message"
// line, the wire format §6.4 specifies.
func printDiagnostics(w io.Writer, errs []*token.PosError) {
	for _, e := range errs {
		fmt.Fprintln(w, e.Diagnostic())
	}
}

func writeIRDump(w io.Writer, format string, root *ir.Root) error {
	if format != "yaml" {
		return fmt.Errorf("unsupported --dump-ir format %q (only \"yaml\" is supported)", format)
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(buildIRDump(root))
}
