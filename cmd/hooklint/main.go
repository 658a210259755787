package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"hooklint/internal/app"
	"hooklint/internal/config"
	"hooklint/internal/report"
)

var (
	configPath = flag.String("config", "./hooklint.toml", "Path to config file")
	watch      = flag.Bool("watch", false, "Keep running and re-lint files as they change")
	format     = flag.String("format", "", "Output format: text or sarif (overrides config)")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	version    = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("hooklint v%s\n", VERSION)
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !os.IsNotExist(err) || *configPath != "./hooklint.toml" {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	if flag.NArg() > 0 {
		cfg.Paths = flag.Args()
	}
	if *format != "" {
		cfg.Output.Format = *format
	}

	a, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	results, err := a.ScanAll()
	if err != nil {
		slog.Error("initial scan failed", "error", err)
		os.Exit(1)
	}

	if err := emit(cfg, results); err != nil {
		slog.Error("failed to write output", "error", err)
		os.Exit(1)
	}

	if !*watch {
		if countDiagnostics(results) > 0 {
			os.Exit(1)
		}
		os.Exit(0)
	}

	err = a.StartWatch(context.Background(), func(results []report.FileResult) {
		if err := emit(cfg, results); err != nil {
			slog.Error("failed to write output", "error", err)
		}
	})
	if err != nil {
		slog.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}

	select {}
}

func emit(cfg *config.Config, results []report.FileResult) error {
	cwd, _ := os.Getwd()

	switch cfg.Output.Format {
	case "sarif":
		data, err := report.GenerateSARIF(cwd, results)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	default:
		fmt.Print(report.FormatText(results))
	}

	if cfg.Output.SARIF != "" {
		data, err := report.GenerateSARIF(cwd, results)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.Output.SARIF, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func countDiagnostics(results []report.FileResult) int {
	total := 0
	for _, res := range results {
		total += len(res.Diagnostics)
	}
	return total
}
