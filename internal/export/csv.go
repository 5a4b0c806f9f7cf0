// Package export serializes collected records to the report files. Both
// exporters are pure functions of the record slice: re-invoking with the same
// records and path overwrites the file deterministically, and an empty record
// set is a warning, never an error.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tgscan/tg-file-scraper/internal/logger"
	"github.com/tgscan/tg-file-scraper/internal/types"
)

// csvHeader is the fixed column order of the report.
var csvHeader = []string{"filename", "message_id", "date", "sender", "caption", "file_size_mb", "message_url"}

// WriteCSV writes records to path in collector order. No file is created for
// an empty record set.
func WriteCSV(records []types.FileRecord, path string) error {
	if len(records) == 0 {
		logger.Warningf("No files to export")
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Filename,
			strconv.Itoa(r.MessageID),
			r.Date,
			r.Sender,
			r.Caption,
			formatMB(r.FileSizeMB),
			r.MessageURL,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	logger.Infof("Exported to: %s", absPath(path))
	return nil
}

// formatMB renders the two-decimal size without trailing zeros (1.5, not
// 1.50).
func formatMB(mb float64) string {
	return strconv.FormatFloat(mb, 'f', -1, 64)
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
