package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/arcanaland/deckbuilder/internal/card"
)

// Rules are the game rules a deck must follow
type Rules struct {
	MaxSuits       int  `toml:"max_suits"`
	MaxMajorArcana int  `toml:"max_major_arcana"`
	MaxSuitCards   int  `toml:"max_suit_cards"`
	TotalDeck      int  `toml:"total_deck"`
	Doubles        bool `toml:"doubles"` // Same suit and rank twice in one deck

	// Affinity maps a minor suit to the Major Arcana card that helps it.
	// The card is kept out of decks without that suit.
	Affinity map[string]string `toml:"affinity"`
}

// DefaultRules returns the standard game rules
func DefaultRules() Rules {
	return Rules{
		MaxSuits:       2,
		MaxMajorArcana: 11,
		MaxSuitCards:   14,
		TotalDeck:      39,
		Doubles:        false,
		Affinity: map[string]string{
			"Wands":     "MJR_1",
			"Cups":      "MJR_6",
			"Swords":    "MJR_2",
			"Pentacles": "MJR_4",
		},
	}
}

// Validate checks the rules are consistent
func (r Rules) Validate() error {
	if r.MaxSuits <= 0 || r.MaxMajorArcana <= 0 || r.MaxSuitCards <= 0 {
		return fmt.Errorf("card counts must be positive (suits=%d, major=%d, suit cards=%d)",
			r.MaxSuits, r.MaxMajorArcana, r.MaxSuitCards)
	}
	if want := r.MaxMajorArcana + r.MaxSuits*r.MaxSuitCards; r.TotalDeck != want {
		return fmt.Errorf("total_deck is %d, expected %d", r.TotalDeck, want)
	}
	if r.Doubles {
		return errors.New("doubles are not supported")
	}
	for suit, id := range r.Affinity {
		if suit == "" || id == "" {
			return fmt.Errorf("affinity entries need a suit and a card id (%q = %q)", suit, id)
		}
	}
	return nil
}

// Exclusions returns the affinity cards of every suit not in chosen, sorted
func (r Rules) Exclusions(chosen []string) []string {
	in := make(map[string]bool, len(chosen))
	for _, s := range chosen {
		in[card.NormalizeSuit(s)] = true
	}

	var ids []string
	for suit, id := range r.Affinity {
		if !in[card.NormalizeSuit(suit)] {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
