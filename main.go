// Package main provides a command-line interface (CLI) for computing
// descriptive statistics over raw byte sequences. It exposes one-shot
// commands for the Pearson (median) skew, a full summary, and order
// statistics, plus a live watch view and a benchmark suite.
package main

import cmd "github.com/mwiater/byteskew/cmd/byteskew"

// main starts the byteskew CLI application by delegating to the cobra
// root command defined in the byteskew package. It does not take any
// arguments and does not return a value.
func main() {
	cmd.Execute()
}
