package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trisha-agni/flashcard-cong-app/internal/app"
	"github.com/trisha-agni/flashcard-cong-app/internal/deck"
	"github.com/trisha-agni/flashcard-cong-app/internal/gateway"
	"github.com/trisha-agni/flashcard-cong-app/internal/llm"
	"github.com/trisha-agni/flashcard-cong-app/internal/results"
	"github.com/trisha-agni/flashcard-cong-app/internal/store"
)

// runApp opens the stores, builds dependencies, and launches the TUI.
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

	deckStore, err := openDeckStore(cmd)
	if err != nil {
		return fmt.Errorf("open decks: %w", err)
	}

	log, err := openResultsLog(cmd)
	if err != nil {
		return fmt.Errorf("open results: %w", err)
	}

	opts := app.Options{
		Decks:   deckStore,
		Results: log,
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		opts.Gateway = gateway.New(provider)
	}

	return app.Run(opts)
}

// openDeckStore resolves the deck file path (--decks flag over env and
// default) and loads it.
func openDeckStore(cmd *cobra.Command) (*deck.Store, error) {
	p, _ := cmd.Flags().GetString("decks")
	if p == "" {
		var err error
		p, err = deck.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return deck.NewStore(p)
}

// openResultsLog resolves the results file path the same way.
func openResultsLog(cmd *cobra.Command) (*results.Log, error) {
	p, _ := cmd.Flags().GetString("results")
	if p == "" {
		var err error
		p, err = results.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return results.NewLog(p), nil
}
