package deck

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store manages the full deck collection, backed by a single JSON file.
// The whole collection is held in memory and rewritten on Save; deck
// order and term order are preserved across round trips.
type Store struct {
	path  string
	decks []Deck
}

// NewStore loads the deck collection from path. A missing file is an
// empty collection, not an error.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read decks file: %w", err)
	}

	if err := json.Unmarshal(data, &s.decks); err != nil {
		return nil, fmt.Errorf("parse decks file %s: %w", path, err)
	}
	return s, nil
}

// Save rewrites the whole collection to disk. Mutations are in-memory
// until Save is called.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.decks, "", "    ")
	if err != nil {
		return fmt.Errorf("encode decks: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create decks dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write decks file: %w", err)
	}
	return nil
}

// Names returns all deck names in collection order.
func (s *Store) Names() []string {
	names := make([]string, len(s.decks))
	for i, d := range s.decks {
		names[i] = d.Name
	}
	return names
}

// Get returns the deck with the given name, or nil if absent.
func (s *Store) Get(name string) *Deck {
	for i := range s.decks {
		if s.decks[i].Name == name {
			return &s.decks[i]
		}
	}
	return nil
}

// Create appends a new empty deck. Creating a name that already exists
// is a no-op.
func (s *Store) Create(name string) {
	if s.Get(name) != nil {
		return
	}
	s.decks = append(s.decks, Deck{Name: name, Terms: []string{}})
}

// Delete removes every deck with the given name. A hand-edited decks
// file can hold duplicates, so this filters rather than stopping at
// the first match. Deleting an absent deck is a no-op.
func (s *Store) Delete(name string) {
	kept := s.decks[:0]
	for _, d := range s.decks {
		if d.Name != name {
			kept = append(kept, d)
		}
	}
	s.decks = kept
}

// AddTerm appends term to the named deck. Duplicate terms and absent
// decks are no-ops.
func (s *Store) AddTerm(deckName, term string) {
	d := s.Get(deckName)
	if d == nil || d.HasTerm(term) {
		return
	}
	d.Terms = append(d.Terms, term)
}

// RemoveTerm removes term from the named deck. Absent terms and absent
// decks are no-ops.
func (s *Store) RemoveTerm(deckName, term string) {
	d := s.Get(deckName)
	if d == nil {
		return
	}
	for i, t := range d.Terms {
		if t == term {
			d.Terms = append(d.Terms[:i], d.Terms[i+1:]...)
			return
		}
	}
}

// DefaultPath resolves the decks file path in priority order:
// 1. CONG_DECKS environment variable
// 2. $XDG_DATA_HOME/cong/flashcards.json
// 3. ~/.local/share/cong/flashcards.json
func DefaultPath() (string, error) {
	if p := os.Getenv("CONG_DECKS"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "cong", "flashcards.json"), nil
}
