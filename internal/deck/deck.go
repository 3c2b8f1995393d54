package deck

// Deck is a named, ordered collection of study terms.
type Deck struct {
	Name  string   `json:"name"`
	Terms []string `json:"terms"`
}

// HasTerm reports whether the deck already contains term (exact match).
func (d *Deck) HasTerm(term string) bool {
	for _, t := range d.Terms {
		if t == term {
			return true
		}
	}
	return false
}
