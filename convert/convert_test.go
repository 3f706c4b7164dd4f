package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghjan/hildsalary/pkg/set"
	"github.com/ghjan/hildsalary/workbook"
)

func trendBook() *workbook.Spreadsheet {
	return book(
		sheet("1929", workbook.Row{"Kontorspersonal", "", "40", "20", "2000", "1100", "1700"}),
		sheet("1930", workbook.Row{"Kontorspersonal", "", "42", "21", "2100", "1150", "1780"}),
		sheet("1931", workbook.Row{"Kontorspersonal", "", "45", "25", "2200", "1200", "1850"}),
	)
}

func TestExtractTrend(t *testing.T) {
	trend, err := ExtractTrend(trendBook(), "Kontorspersonal", DefaultColumns(), Unbounded, Unbounded)
	require.NoError(t, err)

	assert.Equal(t, "Kontorspersonal", trend.Job)
	assert.Equal(t, 3, trend.Len())
	assert.Equal(t, []int{1929, 1930, 1931}, trend.Years())
	assert.Equal(t, []int{2000, 2100, 2200}, trend.Men.Values())
	assert.Equal(t, []int{1100, 1150, 1200}, trend.Women.Values())
	assert.Equal(t, []int{1700, 1780, 1850}, trend.Total.Values())

	xmin, xmax := trend.XLimits()
	assert.Equal(t, 1924, xmin)
	assert.Equal(t, 1936, xmax)
	ymin, ymax := trend.YLimits()
	assert.Equal(t, 800, ymin)
	assert.Equal(t, 2500, ymax)
}

func TestExtractTrendPropagatesScanErrors(t *testing.T) {
	data := trendBook()
	data.Sheets[1].Rows[0] = workbook.Row{"Kontorspersonal", "", "42", "21", "2100"}

	_, err := ExtractTrend(data, "Kontorspersonal", DefaultColumns(), Unbounded, Unbounded)
	assert.ErrorIs(t, err, ErrShortRow)

	data = trendBook()
	data.Sheets[2].Rows[0] = workbook.Row{"Kontorspersonal", "", "45", "25", "2200", "1200", ""}

	_, err = ExtractTrend(data, "Kontorspersonal", DefaultColumns(), Unbounded, Unbounded)
	assert.ErrorIs(t, err, ErrBadSalary)
}

func TestExtractTrendHonoursBounds(t *testing.T) {
	trend, err := ExtractTrend(trendBook(), "Kontorspersonal", DefaultColumns(), 1930, 1930)
	require.NoError(t, err)
	assert.Equal(t, []int{1930}, trend.Years())
}

func TestSameYears(t *testing.T) {
	assert.NoError(t, sameYears(set.NewFromSlice([]int{1929, 1930}), set.NewFromSlice([]int{1930, 1929})))

	err := sameYears(set.NewFromSlice([]int{1929, 1930}), set.NewFromSlice([]int{1929, 1930, 1932}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrYearMismatch)
	assert.Contains(t, err.Error(), "only in first [], only in second [1932]")

	err = sameYears(set.NewFromSlice([]int{1929, 1930}), set.NewFromSlice([]int{1929}))
	assert.ErrorIs(t, err, ErrYearMismatch)
}

func TestEmptyTrendLimits(t *testing.T) {
	trend := &Trend{Job: "Butikspersonal", Men: NewSalaries(), Women: NewSalaries(), Total: NewSalaries()}
	assert.Zero(t, trend.Len())
	xmin, xmax := trend.XLimits()
	assert.Zero(t, xmin)
	assert.Zero(t, xmax)
}
