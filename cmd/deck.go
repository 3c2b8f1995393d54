package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage flashcard decks without launching the UI",
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all decks",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openDeckStore(cmd)
		if err != nil {
			return err
		}

		names := st.Names()
		if len(names) == 0 {
			fmt.Println("No decks yet.")
			return nil
		}
		for _, name := range names {
			d := st.Get(name)
			fmt.Printf("%-30s  %d term(s)\n", name, len(d.Terms))
		}
		return nil
	},
}

var deckShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a deck's terms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openDeckStore(cmd)
		if err != nil {
			return err
		}

		d := st.Get(args[0])
		if d == nil {
			return fmt.Errorf("deck %q not found", args[0])
		}
		if len(d.Terms) == 0 {
			fmt.Println("(no terms)")
			return nil
		}
		for _, t := range d.Terms {
			fmt.Println(t)
		}
		return nil
	},
}

var deckCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openDeckStore(cmd)
		if err != nil {
			return err
		}

		st.Create(args[0])
		if err := st.Save(); err != nil {
			return fmt.Errorf("save decks: %w", err)
		}
		fmt.Printf("Created deck %q.\n", args[0])
		return nil
	},
}

var deckDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a deck and all its terms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openDeckStore(cmd)
		if err != nil {
			return err
		}

		if st.Get(args[0]) == nil {
			return fmt.Errorf("deck %q not found", args[0])
		}
		st.Delete(args[0])
		if err := st.Save(); err != nil {
			return fmt.Errorf("save decks: %w", err)
		}
		fmt.Printf("Deleted deck %q.\n", args[0])
		return nil
	},
}

var deckAddCmd = &cobra.Command{
	Use:   "add <deck> <term>...",
	Short: "Add terms to a deck",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openDeckStore(cmd)
		if err != nil {
			return err
		}

		if st.Get(args[0]) == nil {
			return fmt.Errorf("deck %q not found", args[0])
		}
		for _, term := range args[1:] {
			st.AddTerm(args[0], term)
		}
		if err := st.Save(); err != nil {
			return fmt.Errorf("save decks: %w", err)
		}
		fmt.Printf("Added %d term(s) to %q.\n", len(args)-1, args[0])
		return nil
	},
}

var deckRemoveCmd = &cobra.Command{
	Use:   "remove <deck> <term>...",
	Short: "Remove terms from a deck",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openDeckStore(cmd)
		if err != nil {
			return err
		}

		if st.Get(args[0]) == nil {
			return fmt.Errorf("deck %q not found", args[0])
		}
		for _, term := range args[1:] {
			st.RemoveTerm(args[0], term)
		}
		if err := st.Save(); err != nil {
			return fmt.Errorf("save decks: %w", err)
		}
		fmt.Printf("Removed %d term(s) from %q.\n", len(args)-1, args[0])
		return nil
	},
}

func init() {
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckCreateCmd)
	deckCmd.AddCommand(deckDeleteCmd)
	deckCmd.AddCommand(deckAddCmd)
	deckCmd.AddCommand(deckRemoveCmd)
}
