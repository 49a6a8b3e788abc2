package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	return dir
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	setXDG(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Decks != 5 {
		t.Fatalf("expected 5 decks, got %d", cfg.Decks)
	}
	if cfg.Rules.TotalDeck != 39 {
		t.Fatalf("expected total deck 39, got %d", cfg.Rules.TotalDeck)
	}
	if _, err := os.Stat(GetConfigFilePath()); err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}

	// The written file must decode back to the same settings
	again, err := LoadConfig()
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if again.Rules.Affinity["Cups"] != "MJR_6" {
		t.Fatalf("expected Cups affinity MJR_6, got %v", again.Rules.Affinity)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
catalog = "cards.csv"
decks = 3
seed = 42

[rules.affinity]
Wands = "MJR_9"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load config file: %v", err)
	}
	if cfg.Catalog != "cards.csv" || cfg.Decks != 3 || cfg.Seed != 42 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Output != "decks.txt" {
		t.Fatalf("expected default output to survive, got %q", cfg.Output)
	}
	if cfg.Rules.MaxSuitCards != 14 {
		t.Fatalf("expected default rules to survive, got %+v", cfg.Rules)
	}
	if len(cfg.Rules.Affinity) != 1 || cfg.Rules.Affinity["Wands"] != "MJR_9" {
		t.Fatalf("expected affinity table to be replaced, got %v", cfg.Rules.Affinity)
	}
}

func TestLoadConfigFileError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("decks = ["), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfigFile(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "error decoding config file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	setXDG(t)
	t.Setenv("DECKBUILDER_DECKS", "8")
	t.Setenv("DECKBUILDER_SEED", "7")
	t.Setenv("DECKBUILDER_BALANCE", "true")
	t.Setenv("DECKBUILDER_CATALOG", "other.csv")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Decks != 8 || cfg.Seed != 7 || !cfg.Balance || cfg.Catalog != "other.csv" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadConfigEnvError(t *testing.T) {
	setXDG(t)
	t.Setenv("DECKBUILDER_DECKS", "many")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error")
	}
}

func TestResolveCatalogPath(t *testing.T) {
	setXDG(t)

	cfg := Default()
	if got := cfg.ResolveCatalogPath(); got != "" {
		t.Fatalf("expected embedded catalog, got %q", got)
	}

	if err := os.MkdirAll(GetDataDir(), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(GetDefaultCatalogPath(), []byte("ID\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := cfg.ResolveCatalogPath(); got != GetDefaultCatalogPath() {
		t.Fatalf("expected data dir catalog, got %q", got)
	}

	cfg.Catalog = "mine.csv"
	if got := cfg.ResolveCatalogPath(); got != "mine.csv" {
		t.Fatalf("expected configured catalog, got %q", got)
	}
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Rules)
		ok     bool
	}{
		{"default", func(r *Rules) {}, true},
		{"wrong total", func(r *Rules) { r.TotalDeck = 40 }, false},
		{"zero suits", func(r *Rules) { r.MaxSuits = 0; r.TotalDeck = 11 }, false},
		{"doubles", func(r *Rules) { r.Doubles = true }, false},
		{"empty affinity id", func(r *Rules) { r.Affinity["Wands"] = "" }, false},
		{"smaller decks", func(r *Rules) { r.MaxMajorArcana = 5; r.MaxSuitCards = 10; r.TotalDeck = 25 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultRules()
			tt.modify(&r)
			err := r.Validate()
			if tt.ok && err != nil {
				t.Fatalf("expected valid rules, got %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRulesExclusions(t *testing.T) {
	r := DefaultRules()

	got := r.Exclusions([]string{"Wands", "Cups"})
	if len(got) != 2 || got[0] != "MJR_2" || got[1] != "MJR_4" {
		t.Fatalf("expected [MJR_2 MJR_4], got %v", got)
	}

	if got := r.Exclusions([]string{"Wands", "Cups", "Swords", "Pentacles"}); len(got) != 0 {
		t.Fatalf("expected no exclusions, got %v", got)
	}
}

func TestLoadConfigFileAffinityCase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[rules.affinity]
wands = " MJR_1 "
CUPS = "MJR_6"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load config file: %v", err)
	}
	if cfg.Rules.Affinity["Wands"] != "MJR_1" || cfg.Rules.Affinity["Cups"] != "MJR_6" {
		t.Fatalf("expected title-cased affinity suits, got %v", cfg.Rules.Affinity)
	}

	if got := cfg.Rules.Exclusions([]string{"Wands", "Cups"}); len(got) != 0 {
		t.Fatalf("expected no exclusions for chosen suits, got %v", got)
	}
	if got := cfg.Rules.Exclusions([]string{"Swords", "Pentacles"}); len(got) != 2 {
		t.Fatalf("expected MJR_1 and MJR_6 excluded, got %v", got)
	}
}

func TestRulesExclusionsSuitCase(t *testing.T) {
	r := DefaultRules()
	r.Affinity = map[string]string{"wands": "MJR_1", "swords": "MJR_2"}

	got := r.Exclusions([]string{"Wands", "cups"})
	if len(got) != 1 || got[0] != "MJR_2" {
		t.Fatalf("expected [MJR_2], got %v", got)
	}
}
