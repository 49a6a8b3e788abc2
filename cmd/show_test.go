package cmd

import (
	"strings"
	"testing"

	colorize "github.com/fatih/color"
)

func TestWrapText(t *testing.T) {
	lines := wrapText("the quick brown fox jumps over the lazy dog", 15)
	want := []string{"the quick brown", "fox jumps over", "the lazy dog"}
	if len(lines) != len(want) {
		t.Fatalf("expected %v, got %v", want, lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, lines)
		}
	}

	if got := wrapText("", 20); len(got) != 1 || got[0] != "" {
		t.Fatalf("expected one empty line, got %v", got)
	}
	// A word wider than the line stands alone
	if got := wrapText("supercalifragilistic is long", 10); len(got) != 2 || got[1] != "is long" {
		t.Fatalf("unexpected wrapping %q", got)
	}
	// Narrow widths fall back to 40
	if got := wrapText("the quick brown fox jumps over", 5); len(got) != 1 {
		t.Fatalf("expected one line, got %v", got)
	}
	// Width counts runes, not bytes
	if got := wrapText("éééé éééé", 10); len(got) != 1 {
		t.Fatalf("expected one line, got %v", got)
	}
}

func TestGetSuitSymbol(t *testing.T) {
	if getSuitSymbol("Wands") == getSuitSymbol("Cups") {
		t.Fatal("expected distinct suit symbols")
	}
	if getSuitSymbol("Stars") != "•" {
		t.Fatalf("expected default symbol, got %q", getSuitSymbol("Stars"))
	}
}

func TestShowCommand(t *testing.T) {
	setXDG(t)
	noColor := colorize.NoColor
	colorize.NoColor = true
	t.Cleanup(func() { colorize.NoColor = noColor })

	out, err := runCommand(t, "show", "MJR_1")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"The Magician", "ID:     MJR_1", "Helps:  Wands", "Copies: 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}

	out, err = runCommand(t, "show", "WND_1")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "Suit:   Wands") || strings.Contains(out, "Helps:") {
		t.Fatalf("unexpected minor card output:\n%s", out)
	}
}

func TestShowCommandUnknownCard(t *testing.T) {
	setXDG(t)

	_, err := runCommand(t, "show", "NOPE")
	if err == nil || !strings.Contains(err.Error(), "card not found: NOPE") {
		t.Fatalf("expected card not found error, got %v", err)
	}
}
