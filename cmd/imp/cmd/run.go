package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/imptools/imp/interp"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Execute an IMP program",
	Long: `Executes an IMP program and prints the final value of every variable,
sorted by name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args)
		if err != nil {
			return err
		}
		env, err := interp.Run(src)
		if err != nil {
			return err
		}
		names := make([]string, 0, len(env))
		for name := range env {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", name, env[name])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
