package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prepkit/internal/app"
	"prepkit/internal/hints"
	"prepkit/internal/llm"
	"prepkit/internal/scoring"
	"prepkit/internal/screens/home"
	"prepkit/internal/store"
)

// fallbackHintLevels is how many AI-generated hint levels a question
// without authored hints gets when a provider is configured.
const fallbackHintLevels = 3

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	bank, err := resolveBank(cmd)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}

	deps := home.Deps{
		Bank:      bank,
		EventRepo: st.EventRepo(),
		DraftRepo: st.DraftRepo(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Scoring and AI hints will be unavailable.")
	} else {
		deps.Scorer = scoring.NewService(provider, st.EventRepo(), scoring.DefaultConfig())
		deps.HintText = hints.NewContentService(provider, hints.DefaultContentConfig())
		deps.FallbackHintLevels = fallbackHintLevels
	}

	return app.Run(deps)
}
