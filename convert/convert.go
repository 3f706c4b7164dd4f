package convert

import (
	"fmt"

	"github.com/ghjan/hildsalary/pkg/set"
	"github.com/ghjan/hildsalary/workbook"
)

// Trend is the men, women and all series of one job category.
type Trend struct {
	Job   string
	Men   *Salaries
	Women *Salaries
	Total *Salaries
}

// ExtractTrend reads the three average salary series for job and checks
// they cover exactly the same years.
func ExtractTrend(data *workbook.Spreadsheet, job string, cols ColumnIndexSet, yearLower, yearUpper int) (*Trend, error) {
	men, err := GetSalaries(data, job, cols.Men.AvgSalary, yearLower, yearUpper)
	if err != nil {
		return nil, err
	}
	women, err := GetSalaries(data, job, cols.Women.AvgSalary, yearLower, yearUpper)
	if err != nil {
		return nil, err
	}
	total, err := GetSalaries(data, job, cols.Total.AvgSalary, yearLower, yearUpper)
	if err != nil {
		return nil, err
	}

	menYears := set.NewFromSlice(men.Years())
	if err := sameYears(menYears, set.NewFromSlice(women.Years())); err != nil {
		return nil, fmt.Errorf("%s: men and women salaries: %w", job, err)
	}
	if err := sameYears(menYears, set.NewFromSlice(total.Years())); err != nil {
		return nil, fmt.Errorf("%s: men and [men+women] salaries: %w", job, err)
	}
	return &Trend{Job: job, Men: men, Women: women, Total: total}, nil
}

func sameYears(a, b *set.IntSet) error {
	if a.Equal(b) {
		return nil
	}
	return fmt.Errorf("%w: only in first %v, only in second %v",
		ErrYearMismatch, a.Difference(b).List(), b.Difference(a).List())
}

// Len is the number of years in the trend.
func (t *Trend) Len() int {
	return t.Men.Len()
}

// Years returns the years of the trend in ascending order.
func (t *Trend) Years() []int {
	return set.NewFromSlice(t.Men.Years()).List()
}

// XLimits pads the year range by 5 on both sides.
func (t *Trend) XLimits() (int, int) {
	years := t.Years()
	if len(years) == 0 {
		return 0, 0
	}
	return years[0] - 5, years[len(years)-1] + 5
}

// YLimits spans from the lowest women's salary to the highest men's, padded by 300.
func (t *Trend) YLimits() (int, int) {
	return t.Women.Min() - 300, t.Men.Max() + 300
}
