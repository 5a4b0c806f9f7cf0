package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tgscan/tg-file-scraper/internal/logger"
	"github.com/tgscan/tg-file-scraper/internal/types"
)

// WriteJSON writes records to path as an indented JSON array in collector
// order. No file is created for an empty record set.
func WriteJSON(records []types.FileRecord, path string) error {
	if len(records) == 0 {
		logger.Warningf("No files to export")
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	logger.Infof("Exported to: %s", absPath(path))
	return nil
}
