package builder

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/arcanaland/deckbuilder/internal/card"
	"github.com/arcanaland/deckbuilder/internal/config"
	"github.com/arcanaland/deckbuilder/internal/deck"
	"github.com/arcanaland/deckbuilder/internal/library"
)

// Builder pulls cards from a library to build decks that follow the game rules.
// A Builder and its library must be used from a single goroutine.
type Builder struct {
	library *library.Library
	rules   config.Rules
	rng     *rand.Rand
	logger  *slog.Logger
}

// New creates a builder over lib. A nil rng seeds one at random.
func New(lib *library.Library, rules config.Rules, rng *rand.Rand) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Builder{
		library: lib,
		rules:   rules,
		rng:     rng,
		logger:  slog.Default(),
	}
}

// SetLogger replaces the logger used for build and balance events
func (b *Builder) SetLogger(logger *slog.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// Library returns the library the builder draws from
func (b *Builder) Library() *library.Library {
	return b.library
}

// BuildDeck builds one deck from the library.
//
// Every draw is taken out of the library as it happens. When the build fails
// partway, the cards already drawn stay out of the library.
func (b *Builder) BuildDeck(name string) (*deck.Deck, error) {
	r := b.rules

	availSuits, err := b.library.AvailableSuits(r.MaxSuitCards, r.MaxSuits)
	if err != nil {
		return nil, err
	}
	if len(availSuits) < r.MaxSuits {
		return nil, fmt.Errorf("%w: ran out of minor suits", library.ErrNotEnoughCards)
	}
	chosenSuits := sample(b.rng, availSuits, r.MaxSuits)

	// Keep majors that help other suits out of this deck
	exclusions := r.Exclusions(chosenSuits)
	availMajors, err := b.library.AvailableRanksInSuit(card.MajorArcana, exclusions...)
	if err != nil {
		return nil, err
	}
	if len(availMajors) < r.MaxMajorArcana {
		return nil, fmt.Errorf("%w: ran out of Major Arcana cards (%d of %d)",
			library.ErrNotEnoughCards, len(availMajors), r.MaxMajorArcana)
	}

	b.logger.Debug("building deck", "name", name, "suits", chosenSuits, "exclusions", exclusions)

	chosenMajors := make([]card.Card, 0, r.MaxMajorArcana)
	for _, rank := range sample(b.rng, availMajors, r.MaxMajorArcana) {
		c, err := b.library.DrawOne(card.MajorArcana, rank, exclusions...)
		if err != nil {
			return nil, err
		}
		chosenMajors = append(chosenMajors, c)
	}

	chosenMinors := make([]card.Card, 0, r.MaxSuits*r.MaxSuitCards)
	for _, suit := range chosenSuits {
		availMinors, err := b.library.AvailableRanksInSuit(suit)
		if err != nil {
			return nil, err
		}
		if len(availMinors) < r.MaxSuitCards {
			return nil, fmt.Errorf("%w: ran out of %s cards (%d of %d)",
				library.ErrNotEnoughCards, suit, len(availMinors), r.MaxSuitCards)
		}

		for _, rank := range sample(b.rng, availMinors, r.MaxSuitCards) {
			c, err := b.library.DrawOne(suit, rank)
			if err != nil {
				return nil, err
			}
			chosenMinors = append(chosenMinors, c)
		}
	}

	d := deck.New(name, chosenSuits, chosenMajors, chosenMinors)
	if d.Len() != r.TotalDeck {
		return nil, fmt.Errorf("%w: %d cards in the deck, expecting %d",
			library.ErrNotEnoughCards, d.Len(), r.TotalDeck)
	}

	b.logger.Debug("deck built", "name", name, "power", d.Power)
	return d, nil
}

// ReturnDeck puts every card of d back into the library
func (b *Builder) ReturnDeck(d *deck.Deck) {
	for _, c := range d.Cards() {
		b.library.ReturnOne(c)
	}
}

// BalanceResult describes what a balancing pass did
type BalanceResult struct {
	Mean       float64
	Reshuffled int  // Decks returned to the library
	Rebuilt    int  // Replacement decks built
	OutOfCards bool // Stopped because a replacement could not be built
	Converged  bool // No deck left more than 2 above the mean
}

// BalanceDecks returns decks whose power is at least 2 above the batch mean to
// the library and builds a replacement for each.
//
// Only one pass is made: the batch is returned after the first round of
// replacements even when it is still uneven. Running out of cards stops
// the replacements early and returns the partial batch.
func (b *Builder) BalanceDecks(decks []*deck.Deck) ([]*deck.Deck, BalanceResult) {
	var result BalanceResult
	if len(decks) == 0 {
		return decks, result
	}

	b.logger.Info("balancing decks", "count", len(decks))
	result.Mean = meanPower(decks)

	kept := make([]*deck.Deck, 0, len(decks))
	for _, d := range decks {
		// deck not too far from mean, no reshuffling needed
		if powerDiff(d, result.Mean) < 2 {
			kept = append(kept, d)
			continue
		}

		b.logger.Info("reshuffling deck", "name", d.Name, "power", d.Power, "mean", result.Mean)
		b.ReturnDeck(d)
		result.Reshuffled++
	}
	decks = kept

	for i := 0; i < result.Reshuffled; i++ {
		d, err := b.BuildDeck(fmt.Sprintf("new_%d", i))
		if err != nil {
			b.logger.Info("stopping reshuffling, out of cards", "error", err)
			result.OutOfCards = true
			return decks, result
		}
		decks = append(decks, d)
		result.Rebuilt++
	}

	result.Converged = true
	for _, d := range decks {
		if powerDiff(d, result.Mean) > 2 {
			result.Converged = false
			break
		}
	}

	if result.Converged {
		b.logger.Info("stopping reshuffling, decks are even")
	} else {
		b.logger.Info("decks still uneven after one pass")
	}
	return decks, result
}

func meanPower(decks []*deck.Deck) float64 {
	total := 0
	for _, d := range decks {
		total += d.Power
	}
	return float64(total) / float64(len(decks))
}

func powerDiff(d *deck.Deck, mean float64) int {
	return int(math.Floor(float64(d.Power) - mean))
}
