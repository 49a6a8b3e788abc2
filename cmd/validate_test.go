package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateCommandBuiltIn(t *testing.T) {
	setXDG(t)

	out, err := runCommand(t, "validate")
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Catalog 'built-in catalog' is valid") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestValidateCommandErrors(t *testing.T) {
	setXDG(t)
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := "ID,Type,Suit,Rank,Influence,Name,Description,Copies,OffensivePower,DefensivePower,GameAltering\n" +
		"MJR_1,Major Arcana,Major Arcana,1,,The Magician,,lots,,,\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "validate", path)
	if err == nil || err.Error() != "validation failed" {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if !strings.Contains(out, "validation errors:") || !strings.Contains(out, `invalid copies "lots"`) {
		t.Fatalf("expected listed errors, got:\n%s", out)
	}
}

func TestValidateCommandMissingFile(t *testing.T) {
	setXDG(t)
	path := filepath.Join(t.TempDir(), "missing.csv")

	_, err := runCommand(t, "validate", path)
	if err == nil || !strings.Contains(err.Error(), "catalog not found") {
		t.Fatalf("expected catalog not found, got %v", err)
	}
}
