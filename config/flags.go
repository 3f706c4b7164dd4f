package config

import (
	"flag"
	"strings"
)

// Flags holds command-line overrides. Only flags given on the command line
// are applied.
type Flags struct {
	ConfigFile string

	input, output, jobs   string
	summary, report       string
	logLevel, logFormat   string
	lower, upper, exit    int
	sortSheets, continues bool
}

func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	def := Default()
	fs.StringVar(&f.ConfigFile, "config", "", "YAML config file")
	fs.StringVar(&f.input, "input", def.InputFile, "spreadsheet export to read (.xls, .xlsx or .json)")
	fs.StringVar(&f.output, "output", def.OutputDir, "existing directory for the charts")
	fs.StringVar(&f.jobs, "jobs", strings.Join(def.Jobs, ","), "comma separated job categories")
	fs.IntVar(&f.lower, "year-lower", def.YearLower, "first year to read, -99 for no bound")
	fs.IntVar(&f.upper, "year-upper", def.YearUpper, "last year to read, -99 for no bound")
	fs.BoolVar(&f.sortSheets, "sort-sheets", false, "order sheets by year before scanning")
	fs.BoolVar(&f.continues, "continue-on-error", false, "skip failing job categories instead of stopping")
	fs.StringVar(&f.summary, "summary", "", "write a summary workbook (.xlsx) to this path")
	fs.StringVar(&f.report, "report", "", "write a JSON run report to this path")
	fs.IntVar(&f.exit, "exit-code", def.ExitCode, "exit status after a fatal error")
	fs.StringVar(&f.logLevel, "log-level", def.Logging.Level, "debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", def.Logging.Format, "text or json")
	return f
}

// Apply copies the flags that were set on fs into cfg.
func (f *Flags) Apply(fs *flag.FlagSet, cfg *Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "input":
			cfg.InputFile = f.input
		case "output":
			cfg.OutputDir = f.output
		case "jobs":
			cfg.Jobs = splitJobs(f.jobs)
		case "year-lower":
			cfg.YearLower = f.lower
		case "year-upper":
			cfg.YearUpper = f.upper
		case "sort-sheets":
			cfg.SortSheets = f.sortSheets
		case "continue-on-error":
			cfg.ContinueOnError = f.continues
		case "summary":
			cfg.SummaryFile = f.summary
		case "report":
			cfg.ReportFile = f.report
		case "exit-code":
			cfg.ExitCode = f.exit
		case "log-level":
			cfg.Logging.Level = f.logLevel
		case "log-format":
			cfg.Logging.Format = f.logFormat
		}
	})
}

func splitJobs(s string) []string {
	var jobs []string
	for _, job := range strings.Split(s, ",") {
		if job = strings.TrimSpace(job); job != "" {
			jobs = append(jobs, job)
		}
	}
	return jobs
}
