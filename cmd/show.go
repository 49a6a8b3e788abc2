package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/arcanaland/deckbuilder/internal/card"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display information about a specific catalog card",
	Long: `Show displays a card from the catalog with its power breakdown and the number
of copies in the library. Use the catalog IDs like 'MJR_0' or 'WND_1'.

Examples:
  deckbuilder show MJR_0
  deckbuilder show --catalog ./MystickCardLibrary.csv CUP_12`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardID := args[0]

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		lib, err := loadLibrary(cfg, nil)
		if err != nil {
			return err
		}

		c, ok := lib.Card(cardID)
		if !ok {
			return fmt.Errorf("card not found: %s", cardID)
		}

		affinity := ""
		for suit, id := range cfg.Rules.Affinity {
			if id == c.ID {
				affinity = suit
			}
		}

		out := cmd.OutOrStdout()
		displayCard(out, c, affinity, outputWidth(out))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

func getSuitSymbol(suit string) string {
	switch strings.ToLower(suit) {
	case "wands":
		return "↟"
	case "cups":
		return "◡"
	case "swords":
		return "†"
	case "pentacles":
		return "⛤"
	default:
		return "•"
	}
}

// wrapText breaks text into lines of at most width runes. A word longer
// than width gets a line of its own.
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	lines := []string{""}
	for _, word := range strings.Fields(text) {
		last := len(lines) - 1
		switch {
		case lines[last] == "":
			lines[last] = word
		case utf8.RuneCountInString(lines[last])+1+utf8.RuneCountInString(word) > width:
			lines = append(lines, word)
		default:
			lines[last] += " " + word
		}
	}
	return lines
}

// cardLines renders the card information, wrapping the description to width
func cardLines(c card.Card, affinity string, width int) []string {
	var lines []string

	lines = append(lines, colorize.CyanString("Card:   ")+colorize.HiWhiteString("%s", c.Name))
	lines = append(lines, colorize.CyanString("ID:     ")+colorize.HiWhiteString(c.ID))

	if c.IsMajor() {
		lines = append(lines, colorize.CyanString("Type:   ")+colorize.HiWhiteString("%s · %s", card.MajorArcana, c.Rank))
		if affinity != "" {
			lines = append(lines, colorize.CyanString("Helps:  ")+
				colorize.HiWhiteString("%s · %s", affinity, getSuitSymbol(affinity)))
		}
	} else {
		lines = append(lines, colorize.CyanString("Suit:   ")+
			colorize.HiWhiteString("%s · %s", c.Suit, getSuitSymbol(c.Suit)))
		lines = append(lines, colorize.CyanString("Rank:   ")+colorize.HiWhiteString(c.Rank))
	}

	if c.Influence != "" {
		lines = append(lines, colorize.CyanString("Influence: ")+colorize.HiWhiteString(c.Influence))
	}
	lines = append(lines, colorize.CyanString("Copies: ")+colorize.HiWhiteString("%d", c.Copies))
	lines = append(lines, colorize.CyanString("Power:  ")+colorize.HiWhiteString("%d", c.Power)+
		colorize.HiBlackString(" (offensive %q, defensive %q, game altering %q)",
			c.OffensivePower, c.DefensivePower, c.GameAltering))

	if c.Description != "" {
		lines = append(lines, "")
		lines = append(lines, colorize.CyanString("Description:"))
		lines = append(lines, wrapText(c.Description, width)...)
	}

	return lines
}

// displayCard writes the card information wrapped to width
func displayCard(w io.Writer, c card.Card, affinity string, width int) {
	fmt.Fprintln(w)
	for _, line := range cardLines(c, affinity, width-4) {
		fmt.Fprintln(w, "  "+line)
	}
	fmt.Fprintln(w)
}

// outputWidth returns the terminal width of w, or 80 when w is not a terminal
func outputWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
