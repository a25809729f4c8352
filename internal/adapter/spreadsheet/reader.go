// Package spreadsheet reads issue rows from an Excel workbook.
//
// The first worksheet is used. Row 1 is a header and is always skipped;
// column A holds the issue title and column B the issue body. Cell values are
// coerced to text, so numeric cells become their textual representation and
// empty cells become the empty string. There is no schema validation.
package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/kmorrow/issuesheet/internal/domain"
)

// Reader provides read-only access to the issue rows of one workbook.
type Reader struct {
	file  *excelize.File
	sheet string
}

// Open opens the workbook at path and selects its first worksheet.
// The caller must Close the reader when the batch completes or fails.
func Open(path string) (*Reader, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		_ = file.Close()
		return nil, fmt.Errorf("workbook %s has no worksheets", path)
	}

	return &Reader{file: file, sheet: sheets[0]}, nil
}

// Rows returns the data rows of the worksheet in order, skipping the header.
// A workbook with only a header row yields an empty slice.
func (r *Reader) Rows() ([]domain.IssueRow, error) {
	cells, err := r.file.GetRows(r.sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", r.sheet, err)
	}

	if len(cells) <= 1 {
		return nil, nil
	}

	rows := make([]domain.IssueRow, 0, len(cells)-1)
	for i, row := range cells[1:] {
		rows = append(rows, domain.IssueRow{
			Title:     cellText(row, 0),
			Body:      cellText(row, 1),
			SourceRow: i + 2, // 1-based worksheet row, data starts at row 2
		})
	}

	return rows, nil
}

// Close releases the workbook file handle.
func (r *Reader) Close() error {
	return r.file.Close()
}

// cellText returns the text of the cell at column idx, or "" when the row is
// shorter than idx+1 (excelize trims trailing empty cells).
func cellText(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
