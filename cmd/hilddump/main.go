// hilddump prints the sheets of a HILD export, either as text or as the
// ordered JSON layout hildsalary accepts as input.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ghjan/hildsalary/pkg/utils"
	"github.com/ghjan/hildsalary/workbook"
)

var (
	excelFileName string
	sheetName     string
	asJSON        bool
)

func init() {
	flag.StringVar(&excelFileName, "excel", "", "spreadsheet to dump (.xls, .xlsx or .json)")
	flag.StringVar(&sheetName, "sheet", "", "only dump this sheet")
	flag.BoolVar(&asJSON, "json", false, "write JSON instead of text")
	flag.Parse()

	if excelFileName == "" {
		fmt.Println("usage: hilddump -excel [file] [-sheet 1932] [-json]")
		os.Exit(-1)
	}
}

func main() {
	book, err := workbook.Load(excelFileName)
	utils.Checkerr(err, -1)

	if sheetName != "" {
		sheet, ok := book.Lookup(sheetName)
		if !ok {
			utils.Checkerr(fmt.Errorf("no sheet %q in %s", sheetName, excelFileName), -1)
		}
		book = &workbook.Spreadsheet{Sheets: []workbook.Sheet{sheet}}
	}

	if asJSON {
		data, err := json.Marshal(book)
		utils.Checkerr(err, -1)
		os.Stdout.Write(append(data, '\n'))
		return
	}
	traverse(book)
}

func traverse(book *workbook.Spreadsheet) {
	for _, sheet := range book.Sheets {
		fmt.Printf("Sheet Name: %s\n", sheet.Name)
		for i, row := range sheet.Rows {
			if row.Empty() {
				continue
			}
			fmt.Printf("%4d: %s\n", i, strings.Join(row, " | "))
		}
	}
}
