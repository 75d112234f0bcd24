package storage

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// ExportHistoryCSV writes records to w as CSV with a header row.
func ExportHistoryCSV(w io.Writer, records []HistoryRecord) error {
	if records == nil {
		records = []HistoryRecord{}
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("storage: cannot export history: %w", err)
	}
	return nil
}
