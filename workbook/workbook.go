// Package workbook loads a spreadsheet export into an ordered, in-memory
// structure of sheets and rows of cell text.
package workbook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrMissingFile       = errors.New("couldn't find file")
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
)

// Row is one spreadsheet row. An empty Row stands for a blank or absent row.
type Row []string

func (r Row) Empty() bool {
	return len(r) == 0
}

// Sheet is a named sheet; in the HILD export the name is the year.
type Sheet struct {
	Name string
	Rows []Row
}

// Spreadsheet keeps sheets in the order the source file yields them.
type Spreadsheet struct {
	Sheets []Sheet
}

// Load reads path, choosing the reader by file extension.
func Load(path string) (*Spreadsheet, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w %s", ErrMissingFile, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		return loadXLS(path)
	case ".xlsx":
		return loadXLSX(path)
	case ".json":
		return loadJSON(path)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

func (s *Spreadsheet) Names() []string {
	names := make([]string, 0, len(s.Sheets))
	for _, sheet := range s.Sheets {
		names = append(names, sheet.Name)
	}
	return names
}

func (s *Spreadsheet) Lookup(name string) (Sheet, bool) {
	for _, sheet := range s.Sheets {
		if sheet.Name == name {
			return sheet, true
		}
	}
	return Sheet{}, false
}

// Sorted returns a copy with sheets in ascending numeric order of their
// names. Sheets whose names are not integers keep their relative order
// after the numeric ones.
func (s *Spreadsheet) Sorted() *Spreadsheet {
	sheets := make([]Sheet, len(s.Sheets))
	copy(sheets, s.Sheets)
	sort.SliceStable(sheets, func(i, j int) bool {
		a, errA := strconv.Atoi(strings.TrimSpace(sheets[i].Name))
		b, errB := strconv.Atoi(strings.TrimSpace(sheets[j].Name))
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		default:
			return false
		}
	})
	return &Spreadsheet{Sheets: sheets}
}

// MarshalJSON writes the spreadsheet as a JSON object keyed by sheet name,
// preserving sheet order. Load reads the same layout back from .json files.
func (s *Spreadsheet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sheet := range s.Sheets {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(sheet.Name)
		if err != nil {
			return nil, err
		}
		rows := make([][]string, 0, len(sheet.Rows))
		for _, row := range sheet.Rows {
			if row == nil {
				row = Row{}
			}
			rows = append(rows, row)
		}
		data, err := json.Marshal(rows)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// normalizeRow trims trailing blank cells; an all-blank row becomes empty.
func normalizeRow(cells []string) Row {
	end := len(cells)
	for end > 0 && strings.TrimSpace(cells[end-1]) == "" {
		end--
	}
	if end == 0 {
		return nil
	}
	row := make(Row, end)
	copy(row, cells[:end])
	return row
}
