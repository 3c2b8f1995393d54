package deck

import (
	"os"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flashcards.json")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestMissingFileIsEmptyCollection(t *testing.T) {
	s := tempStore(t)
	if got := s.Names(); len(got) != 0 {
		t.Fatalf("expected no decks, got %v", got)
	}
}

func TestCreateIsIdempotent(t *testing.T) {
	s := tempStore(t)
	s.Create("biology")
	s.Create("biology")

	if got := s.Names(); len(got) != 1 || got[0] != "biology" {
		t.Fatalf("expected single 'biology' deck, got %v", got)
	}
}

func TestDeleteAbsentDeckIsNoOp(t *testing.T) {
	s := tempStore(t)
	s.Create("biology")
	s.Delete("chemistry")

	if got := s.Names(); len(got) != 1 {
		t.Fatalf("expected 1 deck, got %v", got)
	}
}

func TestDeleteRemovesDuplicateNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flashcards.json")
	data := `[{"name":"biology","terms":["osmosis"]},{"name":"chemistry","terms":[]},{"name":"biology","terms":["mitosis"]}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write decks file: %v", err)
	}
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	s.Delete("biology")

	if got := s.Names(); len(got) != 1 || got[0] != "chemistry" {
		t.Fatalf("expected only 'chemistry' to survive, got %v", got)
	}
}

func TestTermMutations(t *testing.T) {
	s := tempStore(t)
	s.Create("biology")

	s.AddTerm("biology", "osmosis")
	s.AddTerm("biology", "mitosis")
	s.AddTerm("biology", "osmosis") // duplicate, no-op
	s.AddTerm("chemistry", "mole")  // absent deck, no-op

	d := s.Get("biology")
	if d == nil {
		t.Fatal("expected biology deck")
	}
	if len(d.Terms) != 2 || d.Terms[0] != "osmosis" || d.Terms[1] != "mitosis" {
		t.Fatalf("unexpected terms: %v", d.Terms)
	}

	s.RemoveTerm("biology", "osmosis")
	s.RemoveTerm("biology", "no-such-term") // no-op
	if len(d.Terms) != 1 || d.Terms[0] != "mitosis" {
		t.Fatalf("unexpected terms after removal: %v", d.Terms)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flashcards.json")

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	s.Create("biology")
	s.AddTerm("biology", "osmosis")
	s.AddTerm("biology", "mitosis")
	s.Create("history")
	s.AddTerm("history", "feudalism")
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := NewStore(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := reloaded.Names(); len(got) != 2 || got[0] != "biology" || got[1] != "history" {
		t.Fatalf("deck order not preserved: %v", got)
	}
	d := reloaded.Get("biology")
	if len(d.Terms) != 2 || d.Terms[0] != "osmosis" || d.Terms[1] != "mitosis" {
		t.Fatalf("term order not preserved: %v", d.Terms)
	}
}

func TestMutationsAreInMemoryUntilSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flashcards.json")

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	s.Create("biology")

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("expected no file before Save")
	}

	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file after Save: %v", err)
	}
}

func TestCorruptFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flashcards.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	if _, err := NewStore(path); err == nil {
		t.Fatal("expected error for corrupt decks file")
	}
}
