package library

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/arcanaland/deckbuilder/internal/card"
)

// ErrNotEnoughCards is returned whenever the library lacks the cards
// to satisfy a deck-building condition.
var ErrNotEnoughCards = errors.New("not enough cards")

type suitRank struct {
	suit string
	rank string
}

type entry struct {
	card   card.Card
	copies int
}

// Library holds the remaining copies of every catalog card.
// It is not safe for concurrent use.
type Library struct {
	entries    map[string]*entry
	order      []string
	bySuit     map[string][]string
	bySuitRank map[suitRank][]string
	suits      []string // Minor suits in catalog order

	rng    *rand.Rand
	logger *slog.Logger
}

// New creates a library from catalog cards. Each card's Copies is its initial stock.
// Cards repeating an earlier ID are ignored.
func New(cards []card.Card, rng *rand.Rand) *Library {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	l := &Library{
		entries:    make(map[string]*entry, len(cards)),
		bySuit:     make(map[string][]string),
		bySuitRank: make(map[suitRank][]string),
		rng:        rng,
		logger:     slog.Default(),
	}

	for _, c := range cards {
		if _, ok := l.entries[c.ID]; ok {
			l.logger.Warn("duplicate card id ignored", "id", c.ID)
			continue
		}

		copies := c.Copies
		if copies < 0 {
			copies = 0
		}
		l.entries[c.ID] = &entry{card: c, copies: copies}
		l.order = append(l.order, c.ID)

		if _, ok := l.bySuit[c.Suit]; !ok && c.Suit != card.MajorArcana {
			l.suits = append(l.suits, c.Suit)
		}
		l.bySuit[c.Suit] = append(l.bySuit[c.Suit], c.ID)

		key := suitRank{c.Suit, c.Rank}
		l.bySuitRank[key] = append(l.bySuitRank[key], c.ID)
	}

	return l
}

// SetLogger replaces the logger used for library events
func (l *Library) SetLogger(logger *slog.Logger) {
	if logger != nil {
		l.logger = logger
	}
}

// DrawOne picks a random card with copies left among those matching suit and rank,
// takes one copy out of the library and returns a snapshot of the card.
// The snapshot's Copies holds the count before the draw. IDs in exclude are never picked.
func (l *Library) DrawOne(suit, rank string, exclude ...string) (card.Card, error) {
	skip := toSet(exclude)

	var options []*entry
	for _, id := range l.bySuitRank[suitRank{suit, rank}] {
		e := l.entries[id]
		if e.copies > 0 && !skip[id] {
			options = append(options, e)
		}
	}

	if len(options) == 0 {
		return card.Card{}, fmt.Errorf("%w: no more cards of %s %s remain in library", ErrNotEnoughCards, suit, rank)
	}

	e := options[l.rng.IntN(len(options))]
	c := e.card
	c.Copies = e.copies
	e.copies--

	l.logger.Debug("card drawn", "id", c.ID, "suit", suit, "rank", rank, "remaining", e.copies)
	return c, nil
}

// ReturnOne puts one copy of c back into the library.
// Unknown IDs are logged and ignored, and false is returned.
func (l *Library) ReturnOne(c card.Card) bool {
	e, ok := l.entries[c.ID]
	if !ok {
		l.logger.Warn("returned card is not in library", "id", c.ID)
		return false
	}
	e.copies++
	return true
}

// AvailableSuits returns the minor suits holding at least minCards copies,
// in catalog order. It fails when fewer than maxSuits qualify.
func (l *Library) AvailableSuits(minCards, maxSuits int) ([]string, error) {
	var available []string
	for _, s := range l.suits {
		if l.Remaining(s) >= minCards {
			available = append(available, s)
		}
	}

	if len(available) < maxSuits {
		return available, fmt.Errorf("%w: not enough complete suits to create a deck (%d of %d)",
			ErrNotEnoughCards, len(available), maxSuits)
	}
	return available, nil
}

// AvailableRanksInSuit returns the distinct ranks of suit that still have copies,
// in catalog order, leaving out cards whose ID is in exclude.
func (l *Library) AvailableRanksInSuit(suit string, exclude ...string) ([]string, error) {
	skip := toSet(exclude)
	seen := make(map[string]bool)

	var ranks []string
	for _, id := range l.bySuit[suit] {
		e := l.entries[id]
		if e.copies <= 0 || skip[id] || seen[e.card.Rank] {
			continue
		}
		seen[e.card.Rank] = true
		ranks = append(ranks, e.card.Rank)
	}

	if len(ranks) == 0 {
		return nil, fmt.Errorf("%w: %s suit is empty", ErrNotEnoughCards, suit)
	}
	return ranks, nil
}

// Remaining returns the copies left across all ranks of suit
func (l *Library) Remaining(suit string) int {
	total := 0
	for _, id := range l.bySuit[suit] {
		total += l.entries[id].copies
	}
	return total
}

// Copies returns the copies left for id and whether id is known
func (l *Library) Copies(id string) (int, bool) {
	e, ok := l.entries[id]
	if !ok {
		return 0, false
	}
	return e.copies, true
}

// Card returns the catalog card for id with its current copies
func (l *Library) Card(id string) (card.Card, bool) {
	e, ok := l.entries[id]
	if !ok {
		return card.Card{}, false
	}
	c := e.card
	c.Copies = e.copies
	return c, true
}

// Cards returns every catalog card in catalog order with its current copies
func (l *Library) Cards() []card.Card {
	cards := make([]card.Card, 0, len(l.order))
	for _, id := range l.order {
		c, _ := l.Card(id)
		cards = append(cards, c)
	}
	return cards
}

// Suits returns the minor suits in catalog order
func (l *Library) Suits() []string {
	return append([]string(nil), l.suits...)
}

// Len returns the number of distinct cards in the library
func (l *Library) Len() int {
	return len(l.order)
}

func toSet(ids []string) map[string]bool {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
