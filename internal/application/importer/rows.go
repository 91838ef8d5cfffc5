// Package importer bulk-provisions platforms and instruments from CSV or
// JSON files. Rows run through the same validation and naming pipeline as
// the single-entity provisioning commands; failures are accumulated per
// row so one bad line never aborts the file.
package importer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

// ReadRowsFile loads rows from a CSV or JSON file, selecting the codec by
// file extension: .json holds a JSON array of objects, anything else is
// CSV with a header line.
func ReadRowsFile(path string) ([]shared.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ReadJSONRows(f)
	}
	return ReadCSVRows(f)
}

// ReadJSONRows decodes a JSON array of row objects.
func ReadJSONRows(r io.Reader) ([]shared.Row, error) {
	var rows []shared.Row
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode JSON rows: %w", err)
	}
	return rows, nil
}

// ReadCSVRows decodes CSV with a header line into rows keyed by column
// name. Empty cells are dropped so the Row absence checks keep working;
// numeric cells stay strings and are parsed by the Row accessors.
func ReadCSVRows(r io.Reader) ([]shared.Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV rows: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]shared.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(shared.Row, len(header))
		for i, column := range header {
			if i >= len(record) {
				break
			}
			value := strings.TrimSpace(record[i])
			if value == "" {
				continue
			}
			row[strings.TrimSpace(column)] = value
		}
		rows = append(rows, row)
	}
	return rows, nil
}
