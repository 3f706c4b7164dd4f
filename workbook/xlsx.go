package workbook

import (
	"fmt"

	"github.com/tealeg/xlsx"
)

func loadXLSX(path string) (*Spreadsheet, error) {
	xlFile, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	book := &Spreadsheet{}
	for _, s := range xlFile.Sheets {
		sheet := Sheet{Name: s.Name}
		for _, row := range s.Rows {
			if row == nil {
				sheet.Rows = append(sheet.Rows, nil)
				continue
			}
			cells := make([]string, 0, len(row.Cells))
			for _, cell := range row.Cells {
				if cell == nil {
					cells = append(cells, "")
					continue
				}
				cells = append(cells, cell.String())
			}
			sheet.Rows = append(sheet.Rows, normalizeRow(cells))
		}
		book.Sheets = append(book.Sheets, sheet)
	}
	return book, nil
}
