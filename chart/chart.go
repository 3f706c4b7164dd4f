// Package chart draws the men vs. women salary comparison for a job category.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ghjan/hildsalary/convert"
)

var (
	ErrNoData      = errors.New("no salary data to plot")
	ErrNoOutputDir = errors.New("output directory does not exist")
)

var (
	red   = color.RGBA{R: 220, A: 255}
	green = color.RGBA{G: 160, A: 255}
	blue  = color.RGBA{B: 220, A: 255}
)

const (
	width  = 6 * vg.Inch
	height = 4.5 * vg.Inch
)

// FileName is the chart file name for job.
func FileName(job string) string {
	return "Men-vs-women-" + strings.ReplaceAll(job, " ", "") + ".png"
}

type series struct {
	label string
	data  *convert.Salaries
	shape draw.GlyphDrawer
	color color.Color
}

// Render draws t into dir, which must already exist, and returns the path
// of the written file.
func Render(t *convert.Trend, dir string) (string, error) {
	if t.Len() == 0 {
		return "", fmt.Errorf("%s: %w", t.Job, ErrNoData)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNoOutputDir, dir)
	}

	p, err := New(t)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(t.Job))
	if err := p.Save(width, height, path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}

// New builds the plot for t without writing it.
func New(t *convert.Trend) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Average salary (kr)"

	for _, s := range []series{
		{"Men", t.Men, draw.CircleGlyph{}, red},
		{"Women", t.Women, draw.TriangleGlyph{}, green},
		{"All", t.Total, draw.BoxGlyph{}, blue},
	} {
		scatter, err := plotter.NewScatter(points(s.data))
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", t.Job, s.label, err)
		}
		scatter.GlyphStyle.Shape = s.shape
		scatter.GlyphStyle.Color = s.color
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
		p.Legend.Add(s.label, scatter)
	}
	p.Legend.Top = false
	p.Legend.Left = false

	xmin, xmax := t.XLimits()
	ymin, ymax := t.YLimits()
	p.X.Min, p.X.Max = float64(xmin), float64(xmax)
	p.Y.Min, p.Y.Max = float64(ymin), float64(ymax)

	// job name in the upper left, at 10% / 90% of the axes
	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs: plotter.XYs{{
			X: p.X.Min + 0.1*(p.X.Max-p.X.Min),
			Y: p.Y.Min + 0.9*(p.Y.Max-p.Y.Min),
		}},
		Labels: []string{t.Job},
	})
	if err != nil {
		return nil, err
	}
	p.Add(label)

	// Add widens the axes to fit the data; put the limits back.
	p.X.Min, p.X.Max = float64(xmin), float64(xmax)
	p.Y.Min, p.Y.Max = float64(ymin), float64(ymax)
	return p, nil
}

func points(s *convert.Salaries) plotter.XYs {
	years := s.Years()
	xys := make(plotter.XYs, 0, len(years))
	for _, year := range years {
		salary, _ := s.Get(year)
		xys = append(xys, plotter.XY{X: float64(year), Y: float64(salary)})
	}
	return xys
}
