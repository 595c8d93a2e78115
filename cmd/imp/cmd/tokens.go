package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imptools/imp/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the token stream of an IMP program",
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
		for _, tok := range toks {
			fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\t%q\n", tok.Line, tok.Col, tok.Tag, tok.Literal)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
