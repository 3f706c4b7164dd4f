// Package app wires the loader, extractor and plotter into one run.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ghjan/hildsalary/chart"
	"github.com/ghjan/hildsalary/config"
	"github.com/ghjan/hildsalary/convert"
	"github.com/ghjan/hildsalary/report"
	"github.com/ghjan/hildsalary/workbook"
)

// Result is what a run produced. Charts written before a fatal error are
// listed even though Run returns the error.
type Result struct {
	RunID     string
	StartedAt time.Time
	Trends    []*convert.Trend
	Charts    map[string]string
	Failed    map[string]error
}

func newResult() *Result {
	return &Result{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Charts:    map[string]string{},
		Failed:    map[string]error{},
	}
}

// Run loads cfg.InputFile and draws every configured job category, then
// writes the optional summary workbook and run report.
func Run(cfg *config.Config, logger *slog.Logger) (*Result, error) {
	data, err := workbook.Load(cfg.InputFile)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded spreadsheet", "file", cfg.InputFile, "sheets", len(data.Sheets))
	if cfg.SortSheets {
		data = data.Sorted()
	}

	result, err := MakeTrendPlots(data, cfg, logger)
	if err != nil {
		return result, err
	}

	if cfg.SummaryFile != "" {
		if err := report.WriteSummary(cfg.SummaryFile, result.Trends); err != nil {
			return result, err
		}
		logger.Info("wrote summary workbook", "file", cfg.SummaryFile)
	}
	if cfg.ReportFile != "" {
		if err := report.WriteJSON(cfg.ReportFile, runReport(cfg, result)); err != nil {
			return result, err
		}
		logger.Info("wrote run report", "file", cfg.ReportFile)
	}
	return result, nil
}

// MakeTrendPlots extracts and draws each job category in cfg.Jobs order.
// The first failure stops the run unless cfg.ContinueOnError is set, in
// which case the category is recorded in Result.Failed and skipped.
func MakeTrendPlots(data *workbook.Spreadsheet, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	result := newResult()
	logger = logger.With("run_id", result.RunID)

	for _, job := range cfg.Jobs {
		path, trend, err := plotJob(data, job, cfg)
		if err != nil {
			if !cfg.ContinueOnError {
				return result, err
			}
			logger.Warn("skipping job category", "job", job, "error", err)
			result.Failed[job] = err
			continue
		}
		result.Trends = append(result.Trends, trend)
		result.Charts[job] = path
		logger.Info("done plotting salary data", "job", job, "years", trend.Len(), "chart", path)
	}
	return result, nil
}

func plotJob(data *workbook.Spreadsheet, job string, cfg *config.Config) (string, *convert.Trend, error) {
	trend, err := convert.ExtractTrend(data, job, cfg.Columns, cfg.YearLower, cfg.YearUpper)
	if err != nil {
		return "", nil, err
	}
	path, err := chart.Render(trend, cfg.OutputDir)
	if err != nil {
		return "", nil, err
	}
	return path, trend, nil
}

func runReport(cfg *config.Config, result *Result) *report.Run {
	run := &report.Run{
		ID:        result.RunID,
		Input:     cfg.InputFile,
		StartedAt: result.StartedAt,
		YearLower: cfg.YearLower,
		YearUpper: cfg.YearUpper,
	}
	trends := map[string]*convert.Trend{}
	for _, t := range result.Trends {
		trends[t.Job] = t
	}
	for _, job := range cfg.Jobs {
		entry := report.Job{Name: job, Chart: result.Charts[job]}
		if err, ok := result.Failed[job]; ok {
			entry.Error = err.Error()
		}
		if t, ok := trends[job]; ok {
			entry.Years = report.Points(t)
		}
		run.Jobs = append(run.Jobs, entry)
	}
	return run
}

// String summarises the result for the closing log line.
func (r *Result) String() string {
	return fmt.Sprintf("%d chart(s), %d failed", len(r.Charts), len(r.Failed))
}
