package validator

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/arcanaland/deckbuilder/internal/builder"
	"github.com/arcanaland/deckbuilder/internal/card"
	"github.com/arcanaland/deckbuilder/internal/catalog"
	"github.com/arcanaland/deckbuilder/internal/config"
	"github.com/arcanaland/deckbuilder/internal/library"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	CatalogPath string // Empty means the embedded catalog
	Rules       config.Rules
	Results     ValidationResults

	records []card.Record
}

func NewValidator(catalogPath string, rules config.Rules) *Validator {
	return &Validator{
		CatalogPath: catalogPath,
		Rules:       rules,
		Results:     ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	records, err := catalog.Load(v.CatalogPath)
	if err != nil {
		return v.Results, err
	}
	v.records = records

	if err := v.Rules.Validate(); err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("invalid rules: %v", err))
		return v.Results, nil
	}

	v.validateRecords()
	v.validateMajorArcana()
	v.validateMinorSuits()
	v.validateAffinity()
	if len(v.Results.Errors) == 0 {
		v.validateBuildable()
	}

	return v.Results, nil
}

// validateRecords checks every row on its own
func (v *Validator) validateRecords() {
	seen := make(map[string]int)

	for i, rec := range v.records {
		line := i + 2
		id := rec[card.ColID]

		if id == "" {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("line %d: ID is required", line))
		} else if first, ok := seen[id]; ok {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("line %d: duplicate ID %s (first seen on line %d)", line, id, first))
		} else {
			seen[id] = line
		}

		if rec[card.ColSuit] == "" {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("line %d: Suit is required", line))
		}
		if rec[card.ColRank] == "" {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("line %d: Rank is required", line))
		}

		if _, err := card.ParseCopies(rec[card.ColCopies]); err != nil {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("line %d: %v", line, err))
		}

		for _, col := range []string{card.ColOffensivePower, card.ColDefensivePower, card.ColGameAltering} {
			if !card.IsNumericPower(rec[col]) {
				v.Results.Warnings = append(v.Results.Warnings,
					fmt.Sprintf("line %d: %s %q is not a number and counts as 0", line, col, rec[col]))
			}
		}
	}
}

// validateMajorArcana checks there are enough distinct major ranks for one deck
func (v *Validator) validateMajorArcana() {
	ranks := v.ranks(card.MajorArcana)
	if len(ranks) == 0 {
		v.Results.Errors = append(v.Results.Errors, "no Major Arcana cards found")
		return
	}

	if len(ranks) < v.Rules.MaxMajorArcana {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("only %d Major Arcana ranks, decks need %d", len(ranks), v.Rules.MaxMajorArcana))
	}
}

// validateMinorSuits checks the number of suits and ranks per suit
func (v *Validator) validateMinorSuits() {
	suits := v.minorSuits()
	if len(suits) < v.Rules.MaxSuits {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("found %d minor suits (%s), decks need %d",
				len(suits), strings.Join(suits, ", "), v.Rules.MaxSuits))
	}

	for _, suit := range suits {
		if n := len(v.ranks(suit)); n < v.Rules.MaxSuitCards {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s has %d ranks, decks need %d", suit, n, v.Rules.MaxSuitCards))
		}
	}
}

// validateAffinity checks affinity cards exist in the Major Arcana
func (v *Validator) validateAffinity() {
	majors := make(map[string]bool)
	for _, rec := range v.records {
		if rec[card.ColSuit] == card.MajorArcana {
			majors[rec[card.ColID]] = true
		}
	}

	suits := make([]string, 0, len(v.Rules.Affinity))
	for suit := range v.Rules.Affinity {
		suits = append(suits, suit)
	}
	sort.Strings(suits)

	minor := make(map[string]bool)
	for _, suit := range v.minorSuits() {
		minor[suit] = true
	}

	for _, suit := range suits {
		id := v.Rules.Affinity[suit]
		if !minor[card.NormalizeSuit(suit)] {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("affinity suit %q is not a minor suit of this catalog, %s is never allowed in a deck", suit, id))
		}
		if !majors[id] {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("affinity card %s for %s is not a Major Arcana card", id, suit))
		}
	}
}

// validateBuildable builds a trial deck from a scratch library
func (v *Validator) validateBuildable() {
	cards, err := catalog.Cards(v.records)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, err.Error())
		return
	}

	rng := rand.New(rand.NewPCG(1, 1))
	lib := library.New(cards, rng)

	if _, err := builder.New(lib, v.Rules, rng).BuildDeck("validation"); err != nil {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("could not build a deck from this catalog: %v", err))
	}
}

// ranks returns the distinct ranks of suit
func (v *Validator) ranks(suit string) []string {
	seen := make(map[string]bool)
	var ranks []string
	for _, rec := range v.records {
		if rec[card.ColSuit] != suit || rec[card.ColRank] == "" || seen[rec[card.ColRank]] {
			continue
		}
		seen[rec[card.ColRank]] = true
		ranks = append(ranks, rec[card.ColRank])
	}
	return ranks
}

// minorSuits returns the suits other than the Major Arcana in catalog order
func (v *Validator) minorSuits() []string {
	seen := make(map[string]bool)
	var suits []string
	for _, rec := range v.records {
		s := rec[card.ColSuit]
		if s == "" || s == card.MajorArcana || seen[s] {
			continue
		}
		seen[s] = true
		suits = append(suits, s)
	}
	return suits
}
