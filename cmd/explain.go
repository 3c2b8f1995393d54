package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trisha-agni/flashcard-cong-app/internal/gateway"
	"github.com/trisha-agni/flashcard-cong-app/internal/llm"
	"github.com/trisha-agni/flashcard-cong-app/internal/store"
)

var explainCmd = &cobra.Command{
	Use:   "explain <term>...",
	Short: "Print a one-paragraph explanation of a term",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := strings.Join(args, " ")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		text, err := gateway.New(provider).ExplainTerm(cmd.Context(), term)
		if err != nil {
			return fmt.Errorf("explain %q: %w", term, err)
		}
		fmt.Println(text)
		return nil
	},
}
