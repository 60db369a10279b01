package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"prepkit/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show all-time practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		sum, err := s.EventRepo().Summary(cmd.Context())
		if err != nil {
			return fmt.Errorf("aggregate stats: %w", err)
		}

		if sum.SessionsCompleted == 0 {
			fmt.Println("No completed sessions yet. Run `prepkit` to start one.")
			return nil
		}

		fmt.Printf("Sessions completed:  %d\n", sum.SessionsCompleted)
		fmt.Printf("Answers submitted:   %d\n", sum.AnswersSubmitted)
		fmt.Printf("Hints revealed:      %d\n", sum.HintsRevealed)
		if sum.AverageScore > 0 {
			fmt.Printf("Average score:       %.1f / 100\n", sum.AverageScore)
		}
		fmt.Printf("Time practiced:      %dm %ds\n",
			sum.TotalPracticeSecs/60, sum.TotalPracticeSecs%60)
		return nil
	},
}
