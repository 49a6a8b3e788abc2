package deck

import "github.com/arcanaland/deckbuilder/internal/card"

// Deck represents a named selection of cards built from the library
type Deck struct {
	Name  string
	Suits []string // The minor suits used by the deck

	MajorCards []card.Card
	MinorCards []card.Card

	Power int
}

// New assembles a deck and computes its power. Size rules are checked by the builder.
func New(name string, suits []string, major, minor []card.Card) *Deck {
	d := &Deck{
		Name:       name,
		Suits:      append([]string(nil), suits...),
		MajorCards: append([]card.Card(nil), major...),
		MinorCards: append([]card.Card(nil), minor...),
	}
	d.Power = d.calculatePower()
	return d
}

// calculatePower returns the sum of the card powers
func (d *Deck) calculatePower() int {
	total := 0
	for _, c := range d.Cards() {
		total += c.Power
	}
	return total
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.MajorCards) + len(d.MinorCards)
}

// Cards returns the major cards followed by the minor cards
func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, 0, d.Len())
	cards = append(cards, d.MajorCards...)
	return append(cards, d.MinorCards...)
}

// HasSuit reports whether suit is one of the deck's minor suits
func (d *Deck) HasSuit(suit string) bool {
	for _, s := range d.Suits {
		if s == suit {
			return true
		}
	}
	return false
}
