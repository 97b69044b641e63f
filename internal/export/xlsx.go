// Package export renders detection results as spreadsheet workbooks.
package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/pacopablo/finddups/internal/finddups"
)

// Sheet names in the generated workbook.
const (
	DuplicatesSheet = "Duplicates"
	ZeroByteSheet   = "Zero-byte files"
)

// timestampFormat matches the text report.
const timestampFormat = "01/02/2006 15:04:05"

// WriteWorkbook writes result to path as a two-sheet Excel workbook: one
// sheet listing every member of every duplicate group, one listing the
// zero-byte files.
func WriteWorkbook(result *finddups.Result, path string) error {
	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName(book.GetSheetName(0), DuplicatesSheet); err != nil {
		return err
	}

	if _, err := book.NewSheet(ZeroByteSheet); err != nil {
		return err
	}

	if err := setRow(book, DuplicatesSheet, 1, []any{"Path", "Hash", "Size", "ctime", "mtime"}); err != nil {
		return err
	}

	row := 2

	for _, group := range result.Groups {
		for _, file := range group.Files {
			cells := []any{
				file.Path,
				file.Hash,
				file.Size,
				file.CreatedAt.Format(timestampFormat),
				file.ModifiedAt.Format(timestampFormat),
			}
			if err := setRow(book, DuplicatesSheet, row, cells); err != nil {
				return err
			}

			row++
		}
	}

	if err := setRow(book, ZeroByteSheet, 1, []any{"Path", "Hash", "ctime", "mtime"}); err != nil {
		return err
	}

	for i, file := range result.ZeroByteFiles {
		cells := []any{
			file.Path,
			file.Hash,
			file.CreatedAt.Format(timestampFormat),
			file.ModifiedAt.Format(timestampFormat),
		}
		if err := setRow(book, ZeroByteSheet, i+2, cells); err != nil {
			return err
		}
	}

	return book.SaveAs(path)
}

// setRow writes cells starting at column A of the given row.
func setRow(book *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	return book.SetSheetRow(sheet, cell, &cells)
}
