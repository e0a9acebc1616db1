// Package main implements the clj-runtime command-line interface.
//
// clj-runtime is a Go implementation of a Clojure-family Lisp evaluator
// core: a persistent-collection value model, lazy sequences, multimethod
// dispatch over an ad-hoc type hierarchy, a regex engine, and the host
// call interface that binds built-ins into it.
//
// The CLI supports three modes of operation:
//   - Interactive REPL mode (the default, or `clj repl`)
//   - Expression evaluation mode (`clj eval -e EXPR`)
//   - File evaluation mode (`clj eval FILE`)
package main

import (
	"fmt"
	"os"

	"fortio.org/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "clj",
		Short: "clj-runtime is a Lisp evaluator core",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLogLevel(log.Debug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newReplCmd())
	root.AddCommand(newEvalCmd())

	return root
}
