// Package report writes the optional side outputs of a run: a summary
// workbook of the extracted series and a JSON run report.
package report

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/xuri/excelize/v2"

	"github.com/ghjan/hildsalary/convert"
)

var summaryHeader = []interface{}{"Year", "Men", "Women", "All", "Women/Men"}

// WriteSummary saves one sheet per trend listing each year's salaries, the
// women to men ratio and a closing row of means.
func WriteSummary(path string, trends []*convert.Trend) error {
	f := excelize.NewFile()
	defer f.Close()

	used := map[string]bool{}
	for i, t := range trends {
		name := sheetName(t.Job, used)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}
		if err := writeTrend(f, name, t); err != nil {
			return fmt.Errorf("%s: %w", t.Job, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeTrend(f *excelize.File, sheet string, t *convert.Trend) error {
	if err := f.SetSheetRow(sheet, "A1", &summaryHeader); err != nil {
		return err
	}

	var men, women, total, ratios stats.Float64Data
	row := 2
	for _, year := range t.Years() {
		m, _ := t.Men.Get(year)
		w, _ := t.Women.Get(year)
		a, _ := t.Total.Get(year)
		ratio := Ratio(w, m)

		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		values := []interface{}{year, m, w, a, ratio}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		men = append(men, float64(m))
		women = append(women, float64(w))
		total = append(total, float64(a))
		ratios = append(ratios, ratio)
		row++
	}
	if len(men) == 0 {
		return nil
	}

	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	footer := []interface{}{"Mean", mean(men, 0), mean(women, 0), mean(total, 0), mean(ratios, 3)}
	return f.SetSheetRow(sheet, cell, &footer)
}

// Ratio is women/men rounded to three decimals, 0 when men is 0.
func Ratio(women, men int) float64 {
	if men == 0 {
		return 0
	}
	r, _ := stats.Round(float64(women)/float64(men), 3)
	return r
}

func mean(data stats.Float64Data, places int) float64 {
	m, err := data.Mean()
	if err != nil {
		return 0
	}
	r, _ := stats.Round(m, places)
	return r
}

// sheetName makes a valid, unique worksheet name from a job name.
func sheetName(job string, used map[string]bool) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, job)
	if name == "" {
		name = "Job"
	}
	runes := []rune(name)
	if len(runes) > 31 {
		name = string(runes[:31])
	}
	base := name
	for i := 2; used[name]; i++ {
		suffix := fmt.Sprintf("~%d", i)
		r := []rune(base)
		if len(r)+len(suffix) > 31 {
			r = r[:31-len(suffix)]
		}
		name = string(r) + suffix
	}
	used[name] = true
	return name
}
