package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trisha-agni/flashcard-cong-app/internal/results"
)

var statsCmd = &cobra.Command{
	Use:   "stats [deck]",
	Short: "Show test results, optionally for one deck",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := openResultsLog(cmd)
		if err != nil {
			return fmt.Errorf("open results: %w", err)
		}

		var records []results.Record
		if len(args) == 1 {
			records, err = log.ByDeck(args[0])
		} else {
			records, err = log.All()
		}
		if err != nil {
			return fmt.Errorf("read results: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No test results recorded yet.")
			return nil
		}

		sort.Slice(records, func(i, j int) bool {
			return records[i].Timestamp.Before(records[j].Timestamp)
		})

		fmt.Printf("%-19s  %-24s  %-4s  %-7s  %-7s  %s\n",
			"Timestamp", "Deck", "Type", "Length", "Score", "Percent")
		fmt.Println(strings.Repeat("─", 80))

		for _, r := range records {
			score := "-"
			if r.Score != nil && r.MaxScore != nil {
				score = fmt.Sprintf("%d/%d", *r.Score, *r.MaxScore)
			}
			deckName := r.DeckName
			if len(deckName) > 24 {
				deckName = deckName[:24]
			}
			fmt.Printf("%-19s  %-24s  %-4s  %-7s  %-7s  %.1f%%\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				deckName,
				r.TestType,
				r.Length,
				score,
				r.Percent,
			)
		}

		var avg float64
		for _, r := range records {
			avg += r.Percent
		}
		avg /= float64(len(records))
		fmt.Println(strings.Repeat("─", 80))
		fmt.Printf("%d attempt(s), average %.1f%%\n", len(records), avg)

		return nil
	},
}
