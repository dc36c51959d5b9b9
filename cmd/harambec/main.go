// Package main provides the harambe front-end compiler entry point.
//
// The pipeline is straight-line and single-pass:
//  1. Lexical analysis (tokenization)
//  2. Syntax analysis (recursive-descent parsing)
//  3. Name analysis (scoped symbol resolution)
//  4. Annotated unparse
//
// There is no IR stage and no optimization pass: this front end stops
// at a resolved, annotated AST.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hassan/harambe/internal/diag"
	"github.com/hassan/harambe/internal/lexer"
	"github.com/hassan/harambe/internal/nameanalysis"
	"github.com/hassan/harambe/internal/obslog"
	"github.com/hassan/harambe/internal/parser"
	"github.com/hassan/harambe/internal/unparse"
)

// badArgCount is the exit code for anything but exactly two positional
// arguments. It is deliberately distinct from cobra's own default exit
// code for a usage error.
const badArgCount = 255

var verbose bool

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "harambec <input-path> <output-path>",
		Short: "name-resolve and annotate-unparse a harambe source file",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				fmt.Fprintf(os.Stderr, "Usage: %s <input-path> <output-path>\n", cmd.Name())
				os.Exit(badArgCount)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1])
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace scope and symbol resolution to stderr")
	return cmd
}

// run drives the full pipeline for one input/output pair. Fatal errors
// (missing input, unwritable output, parse failure) are reported and
// terminate the process with a non-zero exit; once past parsing, the
// process always exits 0 and the annotated unparse is always written,
// whether or not name analysis found anything to report.
func run(inputPath, outputPath string) error {
	log, err := obslog.New(verbose)
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	defer log.Sync()

	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "File %s not found.\n", inputPath)
		os.Exit(1)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "File %s could not be opened for writing.\n", outputPath)
		os.Exit(1)
	}
	defer out.Close()

	log.Debugw("lexing", "file", inputPath, "bytes", len(source))
	lex := lexer.New(string(source), inputPath)
	p := parser.New(lex)

	prog, parseErrs := p.ParseProgram()
	if len(parseErrs) > 0 {
		fmt.Fprintf(os.Stderr, "Exception occured during parse: %s\n", joinErrors(parseErrs))
		os.Exit(1)
	}
	log.Debugw("parsed", "decls", len(prog.Decls))

	sink := diag.New()
	analyzer := nameanalysis.New(sink, nameanalysis.WithLogger(log))
	analyzer.Analyze(prog)

	if sink.AnyError() {
		for _, d := range sink.Diagnostics() {
			fmt.Fprintln(os.Stderr, d.String())
		}
		fmt.Fprintln(os.Stderr, "Errors occured during name analyze")
	} else {
		fmt.Fprintln(os.Stderr, "name analyze succeeded")
	}

	if _, err := out.WriteString(unparse.Unparse(prog)); err != nil {
		return errors.Wrap(err, "writing annotated unparse")
	}

	return nil
}

func joinErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
