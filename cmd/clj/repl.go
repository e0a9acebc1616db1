package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/log"
	"github.com/hashicorp/go-multierror"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/chaploud/clj-runtime/internal/value"
	"github.com/chaploud/clj-runtime/pkg/analyzer"
	"github.com/chaploud/clj-runtime/pkg/builtins"
	"github.com/chaploud/clj-runtime/pkg/interpreter"
	"github.com/chaploud/clj-runtime/pkg/reader"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "start an interactive read-eval-print loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.OutOrStdout())
		},
	}
}

func newEvalCmd() *cobra.Command {
	var expr string

	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "evaluate an expression or a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if expr != "" {
				return evalSource(out, expr)
			}
			if len(args) != 1 {
				return pkgerrors.New("eval requires -e EXPR or a file argument")
			}
			content, err := os.ReadFile(args[0])
			if err != nil {
				return pkgerrors.Wrapf(err, "reading %s", args[0])
			}

			return evalSource(out, string(content))
		},
	}
	cmd.Flags().StringVarP(&expr, "expr", "e", "", "evaluate this expression instead of a file")

	return cmd
}

func newEngine(out io.Writer) (*interpreter.Interpreter, *builtins.Registry) {
	in := interpreter.New("user")
	reg := builtins.NewRegistry(in, out)
	reg.InstallAll()

	return in, reg
}

func evalSource(out io.Writer, src string) error {
	in, _ := newEngine(out)
	forms, err := reader.New(src).ReadAll()
	if err != nil {
		return pkgerrors.Wrap(err, "read")
	}
	an := analyzer.New(in.CurrentNS)

	var batchErr *multierror.Error
	var last value.Value = value.Nil{}
	for _, form := range forms {
		node, err := an.Analyze(form)
		if err != nil {
			batchErr = multierror.Append(batchErr, err)

			continue
		}
		last, err = in.Eval(node, value.NewEnv())
		if err != nil {
			batchErr = multierror.Append(batchErr, err)

			continue
		}
	}
	if batchErr.ErrorOrNil() != nil {
		return batchErr
	}
	fmt.Fprintln(out, value.Repr(last))

	return nil
}

func runREPL(out io.Writer) error {
	in, _ := newEngine(out)
	an := analyzer.New(in.CurrentNS)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Fprintln(out, "clj-runtime repl - Ctrl+D to exit")
	for {
		fmt.Fprint(out, "user=> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)

			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		form, err := reader.New(line).Read()
		if err != nil {
			log.Errf("read error: %v", err)

			continue
		}
		node, err := an.Analyze(form)
		if err != nil {
			log.Errf("analysis error: %v", err)

			continue
		}
		result, err := in.Eval(node, value.NewEnv())
		if err != nil {
			log.Errf("eval error: %v", err)

			continue
		}
		fmt.Fprintln(out, value.Repr(result))
	}
}
