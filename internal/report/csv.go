package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var csvHeader = []string{"index", "title", "url", "status", "suggested_tags"}

// WriteCSV writes the record table as delimiter-separated text. encoding/csv
// quotes any field containing the delimiter, so titles with commas survive a
// round trip.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Index),
			row.Title,
			row.URL,
			row.Status,
			row.SuggestedTags,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", row.Index, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a record table previously written by WriteCSV.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] { // skip header
		if len(record) != len(csvHeader) {
			return nil, fmt.Errorf("malformed csv record: %v", record)
		}
		index, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("malformed csv index %q: %w", record[0], err)
		}
		rows = append(rows, Row{
			Index:         index,
			Title:         record[1],
			URL:           record[2],
			Status:        record[3],
			SuggestedTags: record[4],
		})
	}
	return rows, nil
}
