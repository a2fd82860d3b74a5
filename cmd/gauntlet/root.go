package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gauntlet",
	Short: "Gate-ordered code quality checks for student submissions",
	Long: `Gauntlet runs a battery of quality checks over a git repository,
gate by gate: commits first, then README, encoding, syntax, and finally
general style. The first blocking failure stops the run so students fix
one thing at a time; softer problems accumulate as warnings.

Checks can be tuned per project with a .gauntlet.yaml file: exception
lists can be replaced and individual validators disabled. Optional
token-gated checks stay dormant unless the matching token is supplied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}
