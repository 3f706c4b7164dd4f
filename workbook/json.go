package workbook

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// loadJSON reads {"1929": [["Samtliga", ...], ...], ...}. gjson walks the
// object in document order, so sheet order survives the round trip.
func loadJSON(path string) (*Spreadsheet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%s: invalid json", path)
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, fmt.Errorf("%s: expected an object of sheets", path)
	}

	book := &Spreadsheet{}
	root.ForEach(func(name, rows gjson.Result) bool {
		sheet := Sheet{Name: name.String()}
		rows.ForEach(func(_, row gjson.Result) bool {
			var cells []string
			row.ForEach(func(_, cell gjson.Result) bool {
				cells = append(cells, cell.String())
				return true
			})
			sheet.Rows = append(sheet.Rows, normalizeRow(cells))
			return true
		})
		book.Sheets = append(book.Sheets, sheet)
		return true
	})
	return book, nil
}
