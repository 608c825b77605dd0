package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// FromMap decodes a loose key/value item from a producer into a fixed-shape
// Record. Comma-separated list fields are split into slices. Unknown keys
// are ignored; missing keys are filled by Normalize at Add time.
func FromMap(item map[string]any) (*Record, error) {
	var record Record

	cfg := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToSliceHookFunc(","),
		Result:     &record,
		TagName:    "json",
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("building record decoder: %w", err)
	}

	if err := decoder.Decode(item); err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}

	return &record, nil
}

// LoadCSV reads listing records from CSV with a header row. Column names
// follow the unified ingestion schema.
func LoadCSV(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	catalog := New()
	if len(rows) == 0 {
		return catalog, nil
	}

	header := rows[0]
	for _, row := range rows[1:] {
		item := make(map[string]any, len(header))
		for i, column := range header {
			if i >= len(row) {
				break
			}
			item[strings.TrimSpace(column)] = row[i]
		}

		record, err := FromMap(item)
		if err != nil {
			return nil, err
		}
		catalog.Add(record)
	}

	return catalog, nil
}

// LoadJSON reads listing records from a JSON array of objects.
func LoadJSON(r io.Reader) (*Catalog, error) {
	var items []map[string]any
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("reading json: %w", err)
	}

	catalog := New()
	for _, item := range items {
		record, err := FromMap(item)
		if err != nil {
			return nil, err
		}
		catalog.Add(record)
	}

	return catalog, nil
}

// LoadFile loads a catalog from a CSV or JSON file, chosen by extension.
func LoadFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(file)
	case ".csv":
		return LoadCSV(file)
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", filepath.Ext(path))
	}
}
