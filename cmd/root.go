package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/trisha-agni/flashcard-cong-app/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "cong",
	Short: "AI flashcard study app",
	Long:  "Cong is a terminal flashcard app with AI term explanations and AI-authored practice tests.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// A local .env is optional; environment variables win.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CONG_DB env var)")
	rootCmd.PersistentFlags().String("decks", "", "Path to the deck file (overrides CONG_DECKS env var)")
	rootCmd.PersistentFlags().String("results", "", "Path to the results file (overrides CONG_RESULTS env var)")

	rootCmd.AddCommand(deckCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then CONG_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
