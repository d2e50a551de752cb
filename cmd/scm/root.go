package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	scm "github.com/conneroisu/scm"
	"github.com/conneroisu/scm/pkg/scmerr"
)

var exprFlag string

var rootCmd = &cobra.Command{
	Use:     "scm [file]",
	Short:   "A small Scheme-dialect interpreter",
	Long:    "scm reads a single expression, evaluates it, and prints its result.\nPass a file to read the expression from it, or -e to pass it inline.",
	Version: "0.1.0",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&exprFlag, "eval", "e", "", "evaluate a single expression and print its result")
}

func runRoot(cmd *cobra.Command, args []string) error {
	switch {
	case exprFlag != "":
		return evalAndPrint(exprFlag)
	case len(args) == 1:
		return evalFile(args[0])
	default:
		return cmd.Help()
	}
}

func evalFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return evalAndPrint(string(data))
}

func evalAndPrint(source string) error {
	interp := scm.New()
	defer interp.Drop()

	result, err := interp.Run(source)
	if err != nil {
		reportError(err)
		os.Exit(1)
	}
	fmt.Println(result)
	return nil
}

func reportError(err error) {
	switch e := err.(type) {
	case *scmerr.SyntaxError:
		fmt.Fprintf(os.Stderr, "syntax error: %s\n", e.Msg)
	case *scmerr.NameError:
		fmt.Fprintf(os.Stderr, "name error: %s\n", e.Name)
	case *scmerr.RuntimeError:
		fmt.Fprintf(os.Stderr, "runtime error: %s\n", e.Msg)
	default:
		fmt.Fprintln(os.Stderr, err)
	}
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
