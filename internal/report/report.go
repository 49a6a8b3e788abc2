package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/arcanaland/deckbuilder/internal/deck"
)

// Report appends deck blocks to a text stream in build order
type Report struct {
	w       io.Writer
	runID   string
	written int

	heading *color.Color
	label   *color.Color
	value   *color.Color
	major   *color.Color
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// New creates a report writing to w. Colors are only used when colorize is set.
func New(w io.Writer, colorize bool) *Report {
	r := &Report{
		w:       w,
		runID:   uuid.New().String(),
		heading: color.New(color.FgMagenta, color.Bold),
		label:   color.New(color.FgCyan),
		value:   color.New(color.FgHiWhite),
		major:   color.New(color.FgYellow),
	}

	for _, c := range []*color.Color{r.heading, r.label, r.value, r.major} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// RunID identifies the run in the report header
func (r *Report) RunID() string {
	return r.runID
}

// Written returns the number of decks written so far
func (r *Report) Written() int {
	return r.written
}

// WriteHeader writes the run header
func (r *Report) WriteHeader(seed uint64, decks int) error {
	var b strings.Builder
	b.WriteString(r.heading.Sprint("Deck Builder Report") + "\n")
	b.WriteString(r.label.Sprint("Run:   ") + r.value.Sprint(r.runID) + "\n")
	b.WriteString(r.label.Sprint("Seed:  ") + r.value.Sprint(seed) + "\n")
	b.WriteString(r.label.Sprint("Decks: ") + r.value.Sprint(decks) + "\n")
	b.WriteString("===================\n")

	_, err := io.WriteString(r.w, b.String())
	if err != nil {
		return fmt.Errorf("error writing report header: %w", err)
	}
	return nil
}

// WriteSection writes a heading separating groups of decks
func (r *Report) WriteSection(title string) error {
	_, err := io.WriteString(r.w, "\n"+r.heading.Sprint("== "+title+" ==")+"\n")
	if err != nil {
		return fmt.Errorf("error writing report section: %w", err)
	}
	return nil
}

// WriteDeck appends one deck block
func (r *Report) WriteDeck(d *deck.Deck) error {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.label.Sprint("Name: ") + r.value.Sprint(d.Name) + "\n")
	b.WriteString(r.label.Sprint("Suits: ") + r.value.Sprint(strings.Join(d.Suits, ", ")) + "\n")
	b.WriteString(r.label.Sprint("Power: ") + r.value.Sprint(d.Power) + "\n")
	b.WriteString("-------------------\n")
	b.WriteString(r.label.Sprintf("Cards (%d):", d.Len()) + "\n")
	for _, c := range d.MajorCards {
		b.WriteString("  " + r.major.Sprint(c.String()) + "\n")
	}
	for _, c := range d.MinorCards {
		b.WriteString("  " + c.String() + "\n")
	}

	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return fmt.Errorf("error writing deck %s: %w", d.Name, err)
	}
	r.written++
	return nil
}

// WriteDecks appends every deck in order
func (r *Report) WriteDecks(decks []*deck.Deck) error {
	for _, d := range decks {
		if err := r.WriteDeck(d); err != nil {
			return err
		}
	}
	return nil
}
