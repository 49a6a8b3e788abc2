package card

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MajorArcana is the pseudo-suit holding the trump cards
const MajorArcana = "Major Arcana"

// Catalog column names
const (
	ColID             = "ID"
	ColType           = "Type"
	ColSuit           = "Suit"
	ColRank           = "Rank"
	ColInfluence      = "Influence"
	ColName           = "Name"
	ColDescription    = "Description"
	ColCopies         = "Copies"
	ColOffensivePower = "OffensivePower"
	ColDefensivePower = "DefensivePower"
	ColGameAltering   = "GameAltering"
)

// Columns lists every column a catalog record carries
var Columns = []string{
	ColID, ColType, ColSuit, ColRank, ColInfluence, ColName,
	ColDescription, ColCopies, ColOffensivePower, ColDefensivePower, ColGameAltering,
}

// Record is one catalog row keyed by column name
type Record map[string]string

// Card represents one catalog entry
type Card struct {
	ID          string // Library key (e.g., MJR_1, WND_12)
	Type        string
	Suit        string // Minor suit or "Major Arcana"
	Rank        string // Unique within a suit
	Influence   string
	Name        string
	Description string
	Copies      int // Copies left in the library when this card was drawn

	OffensivePower string
	DefensivePower string
	GameAltering   string

	Power int
}

// New builds a Card from a catalog record and computes its power.
// A Copies cell that does not parse gives zero copies, so check it with
// ParseCopies first.
func New(r Record) Card {
	c := Card{
		ID:             r[ColID],
		Type:           r[ColType],
		Suit:           r[ColSuit],
		Rank:           r[ColRank],
		Influence:      r[ColInfluence],
		Name:           r[ColName],
		Description:    r[ColDescription],
		OffensivePower: r[ColOffensivePower],
		DefensivePower: r[ColDefensivePower],
		GameAltering:   r[ColGameAltering],
	}
	c.Copies, _ = ParseCopies(r[ColCopies])
	c.Power = CalculatePower(c.OffensivePower, c.DefensivePower, c.GameAltering)
	return c
}

// CalculatePower weighs defensive and game altering points over offensive ones.
// Fields that are empty, non-numeric or negative count as zero.
func CalculatePower(offensive, defensive, gameAltering string) int {
	return powerValue(offensive) + 2*powerValue(defensive) + 3*powerValue(gameAltering)
}

func powerValue(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// IsNumericPower reports whether a raw power field holds a usable integer
func IsNumericPower(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0
}

// ParseCopies parses a Copies cell. Empty cells mean zero copies.
func ParseCopies(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid copies %q: %v", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative copies: %d", n)
	}
	return n, nil
}

// NormalizeSuit trims and title-cases a suit name so "wands" and "Wands" match
func NormalizeSuit(suit string) string {
	return cases.Title(language.English).String(strings.TrimSpace(suit))
}

// IsMajor reports whether the card belongs to the Major Arcana
func (c Card) IsMajor() bool {
	return c.Suit == MajorArcana
}

// String returns "ID: Name"
func (c Card) String() string {
	return fmt.Sprintf("%s: %s", c.ID, c.Name)
}
