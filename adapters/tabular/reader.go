// Package tabular reads and writes the pipeline's delimited dataset files.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"netsentry/domain/frame"
	"netsentry/internal/errors"
)

// Reader loads header-row tabular files into frames. CSV and Excel (Sheet1)
// sources are supported, chosen by file extension.
type Reader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// NewReader creates a reader for the given file path.
func NewReader(filePath string) *Reader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" {
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Read loads the file into a Frame. The first row is the header.
func (r *Reader) Read() (*frame.Frame, error) {
	if _, err := os.Stat(r.filePath); err != nil {
		return nil, errors.InputRead(fmt.Sprintf("dataset file not found: %s", r.filePath), err)
	}

	var (
		rows [][]string
		err  error
	)
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, errors.InputRead(fmt.Sprintf("failed to read %s", r.filePath), err)
	}

	if len(rows) == 0 {
		return nil, errors.InputRead(fmt.Sprintf("dataset %s has no header row", r.filePath), nil)
	}

	f, err := frame.New(rows[0], rows[1:])
	if err != nil {
		return nil, errors.InputRead(fmt.Sprintf("malformed dataset %s", r.filePath), err)
	}
	return f, nil
}

func (r *Reader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	return reader.ReadAll()
}

func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, err
	}

	// GetRows trims trailing empty cells per row; pad back to header width so
	// the frame invariant holds.
	if len(rows) > 0 {
		width := len(rows[0])
		for i, row := range rows {
			for len(row) < width {
				row = append(row, "")
			}
			rows[i] = row
		}
	}
	return rows, nil
}
