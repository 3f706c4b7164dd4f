package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ghjan/hildsalary/convert"
)

// Run is the JSON run report.
type Run struct {
	ID        string    `json:"run_id"`
	Input     string    `json:"input"`
	StartedAt time.Time `json:"started_at"`
	YearLower int       `json:"year_lower"`
	YearUpper int       `json:"year_upper"`
	Jobs      []Job     `json:"jobs"`
}

// Job is one job category in the run report.
type Job struct {
	Name  string  `json:"name"`
	Chart string  `json:"chart,omitempty"`
	Error string  `json:"error,omitempty"`
	Years []Point `json:"years,omitempty"`
}

// Point is one year of a job's series.
type Point struct {
	Year  int     `json:"year"`
	Men   int     `json:"men"`
	Women int     `json:"women"`
	All   int     `json:"all"`
	Ratio float64 `json:"women_men_ratio"`
}

// Points flattens a trend into per-year points in ascending year order.
func Points(t *convert.Trend) []Point {
	points := make([]Point, 0, t.Len())
	for _, year := range t.Years() {
		m, _ := t.Men.Get(year)
		w, _ := t.Women.Get(year)
		a, _ := t.Total.Get(year)
		points = append(points, Point{Year: year, Men: m, Women: w, All: a, Ratio: Ratio(w, m)})
	}
	return points
}

func WriteJSON(path string, run *Run) error {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
