// Command ftracker prints a summary line for each raw training package.
//
// Without flags it summarizes the built-in sample packages; -packages reads
// them from a YAML file instead. A rejected package is logged and skipped.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"fitness-tracker/internal/config"
	"fitness-tracker/internal/observability"
	"fitness-tracker/internal/training"
)

func main() {
	path := flag.String("packages", "", "YAML file with training packages")
	flag.Parse()

	if err := observability.InitLogger(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer observability.SyncLogger()

	pkgs := config.DefaultPackages()
	if *path != "" {
		var err error
		pkgs, err = config.LoadPackages(*path)
		if err != nil {
			observability.Logger.Error("loading packages", zap.Error(err))
			os.Exit(1)
		}
	}

	if failed := run(os.Stdout, observability.Logger, pkgs); failed > 0 {
		observability.SyncLogger()
		os.Exit(1)
	}
}

// run prints one summary per package in order and returns the number of
// rejected packages.
func run(out io.Writer, logger *zap.Logger, pkgs []config.Package) int {
	failed := 0
	for i, p := range pkgs {
		t, err := training.ReadPackage(p.Type, p.Data)
		if err != nil {
			logger.Error("package rejected",
				zap.Int("index", i),
				zap.String("type", p.Type),
				zap.Error(err),
			)
			failed++
			continue
		}
		fmt.Fprintln(out, training.ShowTrainingInfo(t).Message())
	}
	return failed
}
