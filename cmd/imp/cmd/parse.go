package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imptools/imp/lexer"
	"github.com/imptools/imp/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the syntax tree of an IMP program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args)
		if err != nil {
			return err
		}
		toks, err := lexer.Lex(src)
		if err != nil {
			return err
		}
		root, err := parser.Parse(toks)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), root)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
