package workbook

import (
	"fmt"

	"github.com/extrame/xls"
)

// loadXLS reads a legacy BIFF workbook, the format of the HILD export.
func loadXLS(path string) (*Spreadsheet, error) {
	xlFile, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if xlFile == nil {
		return nil, fmt.Errorf("open %s: no workbook stream", path)
	}

	book := &Spreadsheet{}
	for i := 0; i < xlFile.NumSheets(); i++ {
		ws := xlFile.GetSheet(i)
		if ws == nil {
			continue
		}
		sheet := Sheet{Name: ws.Name}
		for rowIndex := 0; rowIndex <= int(ws.MaxRow); rowIndex++ {
			row := sheetRow(ws, rowIndex)
			if row == nil {
				sheet.Rows = append(sheet.Rows, nil)
				continue
			}
			cells := make([]string, 0, row.LastCol())
			for col := 0; col < row.LastCol(); col++ {
				cells = append(cells, row.Col(col))
			}
			sheet.Rows = append(sheet.Rows, normalizeRow(cells))
		}
		book.Sheets = append(book.Sheets, sheet)
	}
	return book, nil
}

// sheetRow returns nil for a row the sheet does not contain.
// WorkSheet.Row dereferences the missing row itself.
func sheetRow(ws *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return ws.Row(i)
}
