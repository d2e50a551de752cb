// Command scm is a single-shot command-line driver for the scm
// interpreter: it evaluates one expression, either given inline with -e
// or read from a file, and prints the result. It does not offer a REPL;
// repeated-call/shared-state behavior belongs to library callers of
// scm.Interpreter, not to this CLI.
package main

func main() {
	execute()
}
