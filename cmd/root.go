package cmd

import (
	"prepkit/internal/question"
	"prepkit/internal/store"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prepkit",
	Short: "Interview practice in your terminal",
	Long:  "PrepKit — a terminal app for rehearsing interview answers: timed sessions, graduated hints, and AI feedback on what you wrote.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPKIT_DB env var)")
	rootCmd.PersistentFlags().String("questions", "", "Path to a JSON question bank (defaults to the built-in set)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PREPKIT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveBank loads the question bank from --questions or falls back to the
// built-in set.
func resolveBank(cmd *cobra.Command) (*question.Bank, error) {
	if p, _ := cmd.Flags().GetString("questions"); p != "" {
		return question.LoadBank(p)
	}
	return question.BuiltinBank(), nil
}
