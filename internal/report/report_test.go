package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/arcanaland/deckbuilder/internal/card"
	"github.com/arcanaland/deckbuilder/internal/deck"
)

func testDeck(name string) *deck.Deck {
	major := card.New(card.Record{card.ColID: "MJR_0", card.ColSuit: card.MajorArcana, card.ColName: "The Fool", card.ColOffensivePower: "1"})
	minor := card.New(card.Record{card.ColID: "WND_1", card.ColSuit: "Wands", card.ColName: "Ace of Wands", card.ColGameAltering: "1"})
	return deck.New(name, []string{"Wands", "Cups"}, []card.Card{major}, []card.Card{minor})
}

func TestWriteDeck(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	if err := r.WriteDecks([]*deck.Deck{testDeck("0"), testDeck("1")}); err != nil {
		t.Fatalf("write decks: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Name: 0", "Name: 1", "Suits: Wands, Cups", "Power: 4", "Cards (2):", "  MJR_0: The Fool", "  WND_1: Ace of Wands"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected report to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Index(out, "Name: 0") > strings.Index(out, "Name: 1") {
		t.Fatal("decks written out of order")
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatal("expected no color codes in plain report")
	}
	if r.Written() != 2 {
		t.Fatalf("expected 2 decks written, got %d", r.Written())
	}
}

func TestWriteDeckColor(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, true)

	if err := r.WriteDeck(testDeck("0")); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatal("expected color codes in colored report")
	}
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	if err := r.WriteHeader(42, 5); err != nil {
		t.Fatalf("write header: %v", err)
	}
	if _, err := uuid.Parse(r.RunID()); err != nil {
		t.Fatalf("run id is not a uuid: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Run:   " + r.RunID(), "Seed:  42", "Decks: 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected header to contain %q, got:\n%s", want, out)
		}
	}
}

func TestWriteSection(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	if err := r.WriteSection("Balanced"); err != nil {
		t.Fatalf("write section: %v", err)
	}
	if !strings.Contains(buf.String(), "== Balanced ==") {
		t.Fatalf("unexpected section %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteDeckError(t *testing.T) {
	r := New(failingWriter{}, false)

	err := r.WriteDeck(testDeck("0"))
	if err == nil {
		t.Fatal("expected error")
	}
	if r.Written() != 0 {
		t.Fatalf("expected no deck counted, got %d", r.Written())
	}
}
