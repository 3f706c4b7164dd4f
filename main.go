// hildsalary project main.go
//
// Plots men vs. women average salaries per job category from the HILD
// historical wage database export (Gothenburg University).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ghjan/hildsalary/app"
	"github.com/ghjan/hildsalary/config"
	"github.com/ghjan/hildsalary/pkg/utils"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	fs.Parse(os.Args[1:])

	fmt.Println("\n*** This script will plot salary data.")

	cfg, err := config.Load(flags.ConfigFile)
	utils.Checkerr(err, config.Default().ExitCode)
	flags.Apply(fs, cfg)
	utils.Checkerr(cfg.Validate(), cfg.ExitCode)

	logger := utils.NewLogger(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	result, err := app.Run(cfg, logger)
	if err != nil {
		logger.Error("run aborted", "error", err)
	}
	utils.Checkerr(err, cfg.ExitCode)
	logger.Info("run finished", "run_id", result.RunID, "result", result.String())
}
