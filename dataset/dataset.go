package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"app/models"
)

// records is the global, read-only dataset shared by all handlers.
var records []models.SalesRecord

// Init installs the loaded dataset. Nothing mutates it afterwards, so
// handlers can read it without locking.
func Init(rows []models.SalesRecord) {
	records = rows
	log.Printf("Dataset initialized with %d records", len(rows))
}

// Get returns the loaded dataset.
func Get() []models.SalesRecord {
	return records
}

// LoadCSV reads a sales CSV and cleans it: cells are trimmed, fully-empty
// rows are skipped, and rows whose Sales cell is not numeric are dropped.
// The file must have a Sales column; the month column may be named either
// Month or Date.
func LoadCSV(path string) ([]models.SalesRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	monthIdx, productIdx, regionIdx, salesIdx := -1, -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Month", "Date":
			monthIdx = i
		case "Product":
			productIdx = i
		case "Region":
			regionIdx = i
		case "Sales":
			salesIdx = i
		}
	}
	if salesIdx == -1 {
		return nil, fmt.Errorf("dataset must include a 'Sales' column")
	}

	var rows []models.SalesRecord
	dropped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		empty := true
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
			if row[i] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}

		if salesIdx >= len(row) {
			dropped++
			continue
		}
		sales, err := strconv.ParseFloat(row[salesIdx], 64)
		if err != nil {
			dropped++
			continue
		}

		rows = append(rows, models.SalesRecord{
			Month:   cell(row, monthIdx),
			Product: cell(row, productIdx),
			Region:  cell(row, regionIdx),
			Sales:   sales,
		})
	}

	if dropped > 0 {
		log.Printf("Dropped %d rows with non-numeric Sales values", dropped)
	}
	return rows, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
