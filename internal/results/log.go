package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Log is the append-only result history, backed by a single JSON file.
// Every append reads the whole log, adds the record, and writes the
// whole log back.
type Log struct {
	path string
}

// NewLog creates a Log at path. The file is created lazily on first
// append.
func NewLog(path string) *Log {
	return &Log{path: path}
}

// All returns every stored record in file order. A missing file is an
// empty history.
func (l *Log) All() ([]Record, error) {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse results file %s: %w", l.path, err)
	}
	return records, nil
}

// Append stores a new record and returns it. Persistence errors
// propagate so the caller knows the attempt was not saved.
func (l *Log) Append(rec Record) (Record, error) {
	records, err := l.All()
	if err != nil {
		return Record{}, err
	}
	records = append(records, rec)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return Record{}, fmt.Errorf("encode results: %w", err)
	}
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Record{}, fmt.Errorf("create results dir: %w", err)
		}
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return Record{}, fmt.Errorf("write results file: %w", err)
	}
	return rec, nil
}

// ByDeck returns records for one deck, or all records when deckName is
// empty. Records come back sorted by timestamp ascending.
func (l *Log) ByDeck(deckName string) ([]Record, error) {
	records, err := l.All()
	if err != nil {
		return nil, err
	}

	var out []Record
	for _, r := range records {
		if deckName == "" || r.DeckName == deckName {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

// Recent returns the most recent n records for a deck (all decks when
// deckName is empty), sorted by timestamp ascending. n <= 0 means no
// truncation.
func (l *Log) Recent(deckName string, n int) ([]Record, error) {
	records, err := l.ByDeck(deckName)
	if err != nil {
		return nil, err
	}
	if n > 0 && len(records) > n {
		records = records[len(records)-n:]
	}
	return records, nil
}

// DefaultPath resolves the results file path in priority order:
// 1. CONG_RESULTS environment variable
// 2. $XDG_DATA_HOME/cong/test_results.json
// 3. ~/.local/share/cong/test_results.json
func DefaultPath() (string, error) {
	if p := os.Getenv("CONG_RESULTS"); p != "" {
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
	return filepath.Join(dataHome, "cong", "test_results.json"), nil
}
