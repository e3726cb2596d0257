// Command babelc is the Babel IDL compiler's CLI: it parses and resolves
// one or more .babel spec files and drives a code generator over the
// result, per §6.4's collaborator contract.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "babelc",
		Short:         "Babel IDL compiler",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newCompileCmd(func() zerolog.Logger {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}

		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
			Level(level).
			With().Timestamp().Logger()
	}))

	return root
}

func newCompileCmd(logger func() zerolog.Logger) *cobra.Command {
	var dumpIR string

	cmd := &cobra.Command{
		Use:   "compile <generator-module> <spec-file>... <output-dir>",
		Short: "validate spec files and generate code",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			generatorName := args[0]
			outDir := args[len(args)-1]
			specFiles := args[1 : len(args)-1]

			err := runCompile(compileOptions{
				generatorName: generatorName,
				specFiles:     specFiles,
				outDir:        outDir,
				dumpIR:        dumpIR,
				log:           logger(),
				stdout:        cmd.OutOrStdout(),
				stderr:        cmd.ErrOrStderr(),
			})
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}

			return err
		},
	}

	cmd.Flags().StringVar(&dumpIR, "dump-ir", "", `dump the resolved IR instead of generating ("yaml")`)

	return cmd
}
