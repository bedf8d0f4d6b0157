package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"netsentry/domain/frame"
	"netsentry/internal/errors"
)

// WriteCSV persists a frame as a CSV file with a header row, creating parent
// directories. Cells are written back verbatim, so a loaded dataset
// round-trips unmodified.
func WriteCSV(path string, f *frame.Frame) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Persistence(fmt.Sprintf("failed to create directory for %s", path), err)
	}

	out, err := os.Create(path)
	if err != nil {
		return errors.Persistence(fmt.Sprintf("failed to create %s", path), err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write(f.Columns); err != nil {
		return errors.Persistence(fmt.Sprintf("failed to write header to %s", path), err)
	}
	for _, rec := range f.Records {
		if err := w.Write(rec); err != nil {
			return errors.Persistence(fmt.Sprintf("failed to write record to %s", path), err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Persistence(fmt.Sprintf("failed to flush %s", path), err)
	}
	return nil
}
