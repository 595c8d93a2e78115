package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/imptools/imp/interp"
	"github.com/imptools/imp/lexer"
	"github.com/imptools/imp/parser"
)

const historyFile = ".imp_history"

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive IMP session",
	Long: `Starts an interactive session. Each line is parsed and executed as a
statement list against one persistent set of variables.

REPL commands:
  :env     Print all variables
  :quit    Exit the session (Ctrl+D also exits)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(out io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	fmt.Fprintln(out, "IMP repl. :quit or Ctrl+D to exit.")
	env := interp.Env{}

loop:
	for {
		input, err := line.Prompt("imp> ")
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				break
			}
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch input {
		case ":quit":
			break loop
		case ":env":
			printEnv(out, env)
			continue
		}

		if err := evalLine(input, env); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
	return nil
}

// evalLine runs one statement list against the session environment.
func evalLine(input string, env interp.Env) error {
	toks, err := lexer.Lex(input)
	if err != nil {
		return err
	}
	root, err := parser.Parse(toks)
	if err != nil {
		return err
	}
	return interp.ExecStmt(root, env)
}

func printEnv(out io.Writer, env interp.Env) {
	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "%s: %d\n", name, env[name])
	}
}
