// Package cmd implements the imp command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "imp",
	Short: "imp - the IMP language toolchain",
	Long: `imp parses and runs programs in the IMP language, a small imperative
language with assignment, sequencing, conditionals and while loops.

Commands:
  run     - execute a program and print its final variables
  parse   - print a program's syntax tree
  tokens  - print a program's token stream
  repl    - interactive session`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Errors have already been printed when it returns.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

// readSource loads the program file named by the single positional argument.
func readSource(args []string) (string, error) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}
