package convert

import (
	"fmt"

	"github.com/ghjan/hildsalary/workbook"
)

// GetSalaries collects year -> salary for job from column col of every
// sheet within [yearLower, yearUpper]. Either bound may be Unbounded.
//
// Sheets are scanned in workbook order and the scan stops at the first
// sheet past yearUpper, so sheets are expected in ascending year order.
// Within a sheet the first row labelled with job is used. If its cell does
// not hold a number, the same column of the following row is tried.
func GetSalaries(data *workbook.Spreadsheet, job string, col, yearLower, yearUpper int) (*Salaries, error) {
	salaries := NewSalaries()
	for _, sheet := range data.Sheets {
		year, yearErr := ParseYear(sheet.Name)
		if yearLower != Unbounded || yearUpper != Unbounded {
			if yearErr != nil {
				return nil, &Error{Err: ErrBadYear, Sheet: sheet.Name, Job: job, Column: col}
			}
			if yearLower != Unbounded && year < yearLower {
				continue
			}
			if yearUpper != Unbounded && year > yearUpper {
				break
			}
		}

		rowIndex := findRow(sheet.Rows, job)
		if rowIndex < 0 {
			continue
		}
		row := sheet.Rows[rowIndex]
		if col < 0 || col >= len(row) {
			return nil, &Error{Err: ErrShortRow, Sheet: sheet.Name, Job: job, Column: col,
				Detail: fmt.Sprintf("len(row) == %d", len(row))}
		}
		if yearErr != nil {
			return nil, &Error{Err: ErrBadYear, Sheet: sheet.Name, Job: job, Column: col}
		}
		salary, err := salaryAt(sheet.Rows, rowIndex, col)
		if err != nil {
			return nil, &Error{Err: ErrBadSalary, Sheet: sheet.Name, Job: job, Column: col,
				Detail: fmt.Sprintf("salary = %q", row[col])}
		}
		salaries.Set(year, salary)
	}
	return salaries, nil
}

func findRow(rows []workbook.Row, job string) int {
	for i, row := range rows {
		if row.Empty() {
			continue
		}
		if PrefixMatch(row[0], job) {
			return i
		}
	}
	return -1
}

// salaryAt parses rows[i][col], falling back to rows[i+1][col]. The women's
// average on "Samtliga" rows is sometimes left blank with the figure one
// row below (1932 for instance).
func salaryAt(rows []workbook.Row, i, col int) (int, error) {
	salary, err := ParseSalary(rows[i][col])
	if err == nil {
		return salary, nil
	}
	if i+1 < len(rows) && col < len(rows[i+1]) {
		if salary, nextErr := ParseSalary(rows[i+1][col]); nextErr == nil {
			return salary, nil
		}
	}
	return 0, err
}
