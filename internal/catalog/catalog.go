package catalog

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arcanaland/deckbuilder/internal/card"
)

//go:embed mystick.csv
var defaultCatalog []byte

// DefaultCSV returns the embedded catalog as CSV
func DefaultCSV() []byte {
	return append([]byte(nil), defaultCatalog...)
}

// Default parses the embedded catalog
func Default() ([]card.Record, error) {
	return Parse(bytes.NewReader(defaultCatalog))
}

// Load reads a catalog file, or the embedded catalog when path is empty
func Load(path string) ([]card.Record, error) {
	if path == "" {
		return Default()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening catalog: %w", err)
	}
	defer file.Close()

	records, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing catalog %s: %w", path, err)
	}
	return records, nil
}

// Parse reads CSV catalog rows. Every card column must be present in the header;
// extra columns are ignored.
func Parse(r io.Reader) ([]card.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("catalog is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		index[name] = i
	}

	var missing []string
	for _, col := range card.Columns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}

	var records []card.Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading line %d: %w", line, err)
		}
		if isBlank(row) {
			continue
		}

		rec := make(card.Record, len(card.Columns))
		for _, col := range card.Columns {
			if i := index[col]; i < len(row) {
				rec[col] = strings.TrimSpace(row[i])
			}
		}
		rec[card.ColSuit] = card.NormalizeSuit(rec[card.ColSuit])
		records = append(records, rec)
	}

	return records, nil
}

// Cards builds a card for every record. A Copies cell that is not a
// non-negative integer fails the whole catalog.
func Cards(records []card.Record) ([]card.Card, error) {
	cards := make([]card.Card, 0, len(records))
	for i, rec := range records {
		if _, err := card.ParseCopies(rec[card.ColCopies]); err != nil {
			return nil, fmt.Errorf("card %s (record %d): %w", rec[card.ColID], i+1, err)
		}
		cards = append(cards, card.New(rec))
	}
	return cards, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
