package workbook

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xls"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingFile)
	assert.Contains(t, err.Error(), "nope.xls")
}

func TestLoadDirectoryIsMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrMissingFile)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "data.csv", "a,b\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadJSONKeepsSheetOrder(t *testing.T) {
	path := writeFile(t, "hild.json", `{
		"1931": [["Samtliga", "", "", 100, 1500, 110, 1400]],
		"1929": [[], ["Kontorspersonal", null, "  "], ["", ""]],
		"1930": []
	}`)

	book, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1931", "1929", "1930"}, book.Names())

	sheet, ok := book.Lookup("1931")
	require.True(t, ok)
	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, Row{"Samtliga", "", "", "100", "1500", "110", "1400"}, sheet.Rows[0])

	sheet, ok = book.Lookup("1929")
	require.True(t, ok)
	require.Len(t, sheet.Rows, 3)
	assert.True(t, sheet.Rows[0].Empty())
	assert.Equal(t, Row{"Kontorspersonal"}, sheet.Rows[1])
	assert.True(t, sheet.Rows[2].Empty())

	sheet, ok = book.Lookup("1930")
	require.True(t, ok)
	assert.Empty(t, sheet.Rows)

	_, ok = book.Lookup("1950")
	assert.False(t, ok)
}

func TestLoadJSONRejectsNonObject(t *testing.T) {
	_, err := Load(writeFile(t, "bad.json", `[1, 2, 3]`))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "broken.json", `{"1929": [`))
	assert.Error(t, err)
}

func TestMarshalJSONIsReadableByLoad(t *testing.T) {
	book := &Spreadsheet{Sheets: []Sheet{
		{Name: "1932", Rows: []Row{{"Samtliga", "", "", "90", "1450", ""}, nil, {"Teknisk personal", "", "", "3", "2100", "850"}}},
		{Name: "1930", Rows: []Row{{"Samtliga"}}},
	}}

	data, err := json.Marshal(book)
	require.NoError(t, err)
	assert.JSONEq(t, `{"1932":[["Samtliga","","","90","1450",""],[],["Teknisk personal","","","3","2100","850"]],"1930":[["Samtliga"]]}`, string(data))

	loaded, err := Load(writeFile(t, "dump.json", string(data)))
	require.NoError(t, err)
	assert.Equal(t, []string{"1932", "1930"}, loaded.Names())
	sheet, _ := loaded.Lookup("1932")
	assert.Equal(t, Row{"Samtliga", "", "", "90", "1450"}, sheet.Rows[0])
	assert.True(t, sheet.Rows[1].Empty())
}

func TestLoadXLSX(t *testing.T) {
	file := xlsx.NewFile()
	for _, name := range []string{"1929", "1930"} {
		sheet, err := file.AddSheet(name)
		require.NoError(t, err)
		for _, values := range [][]string{
			{"Yrke", "", "Antal män", "Antal kvinnor"},
			{"Samtliga", "", "", "120", "1500", "110", "1400"},
		} {
			row := sheet.AddRow()
			for _, v := range values {
				row.AddCell().SetString(v)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "hild.xlsx")
	require.NoError(t, file.Save(path))

	book, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1929", "1930"}, book.Names())
	sheet, ok := book.Lookup("1930")
	require.True(t, ok)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, Row{"Samtliga", "", "", "120", "1500", "110", "1400"}, sheet.Rows[1])
}

func TestLoadXLS(t *testing.T) {
	book, err := Load(filepath.Join("testdata", "hild.xls"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1929", "1932"}, book.Names())

	sheet, ok := book.Lookup("1929")
	require.True(t, ok)
	require.Len(t, sheet.Rows, 4)
	assert.Equal(t, Row{"Yrke"}, sheet.Rows[0])
	assert.Equal(t, Row{"Samtliga", "", "", "100", "1500", "110", "1400"}, sheet.Rows[1])
	assert.True(t, sheet.Rows[2].Empty(), "row absent from the sheet")
	assert.Equal(t, Row{"Kontorspersonal", "", "40", "12", "2100", "1200", "1800"}, sheet.Rows[3])

	sheet, ok = book.Lookup("1932")
	require.True(t, ok)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, Row{"Samtliga", "", "", "90", "1450", "", "1300"}, sheet.Rows[0])
	assert.Equal(t, Row{"", "", "", "", "", "850"}, sheet.Rows[1])
}

func TestLoadXLSRejectsGarbage(t *testing.T) {
	_, err := Load(writeFile(t, "hild.xls", "not a compound document"))
	assert.Error(t, err)
}

func TestSorted(t *testing.T) {
	book := &Spreadsheet{Sheets: []Sheet{{Name: "1931"}, {Name: "Notes"}, {Name: "1929"}, {Name: "1930"}}}

	sorted := book.Sorted()
	assert.Equal(t, []string{"1929", "1930", "1931", "Notes"}, sorted.Names())
	assert.Equal(t, []string{"1931", "Notes", "1929", "1930"}, book.Names(), "original untouched")
}

func TestNormalizeRow(t *testing.T) {
	assert.Nil(t, normalizeRow(nil))
	assert.Nil(t, normalizeRow([]string{"", " ", ""}))
	assert.Equal(t, Row{"", "a"}, normalizeRow([]string{"", "a", "", ""}))
	assert.Equal(t, Row{"Samtliga", "", "850"}, normalizeRow([]string{"Samtliga", "", "850"}))
}
