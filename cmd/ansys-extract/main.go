package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/civilsim/ansys-extract/internal/config"
	"github.com/civilsim/ansys-extract/internal/extract/openrouter"
	"github.com/civilsim/ansys-extract/internal/ledger"
	"github.com/civilsim/ansys-extract/internal/pipeline"
	"github.com/civilsim/ansys-extract/internal/report"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	cfg := config.LoadConfig()

	var logJSON bool
	pflag.StringVar(&cfg.Backend.APIKey, "api-key", cfg.Backend.APIKey, "OpenRouter API key (required)")
	pflag.StringVar(&cfg.Paths.TemplatePath, "template", cfg.Paths.TemplatePath, "path to the Excel template or existing dataset (required)")
	pflag.StringVar(&cfg.Paths.ReportsDir, "reports-dir", cfg.Paths.ReportsDir, "directory to scan recursively for report PDFs (required)")
	pflag.StringVar(&cfg.Paths.OutputPath, "output", cfg.Paths.OutputPath, "path for the populated output file (required)")
	pflag.StringVar(&cfg.Backend.Model, "model", cfg.Backend.Model, "backend model for parameter extraction")
	pflag.StringVar(&cfg.Backend.BaseURL, "base-url", cfg.Backend.BaseURL, "backend API base URL")
	pflag.DurationVar(&cfg.Backend.Timeout, "timeout", cfg.Backend.Timeout, "backend request timeout")
	pflag.BoolVar(&logJSON, "log-json", false, "emit JSON logs")
	pflag.Parse()

	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		pflag.Usage()
		os.Exit(2)
	}

	var handler slog.Handler
	if logJSON {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := context.Background()

	led, err := ledger.Open(cfg.Paths.TemplatePath, logger)
	if err != nil {
		logger.Error("failed to open ledger template", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := led.Close(); cerr != nil {
			logger.Warn("ledger close error", "error", cerr)
		}
	}()

	loader := report.NewLoader(0, logger)
	extractor := openrouter.NewClient(openrouter.Config{
		APIKey:      cfg.Backend.APIKey,
		BaseURL:     cfg.Backend.BaseURL,
		Model:       cfg.Backend.Model,
		Temperature: cfg.Backend.Temperature,
		Timeout:     cfg.Backend.Timeout,
	}, logger)

	proc := pipeline.NewProcessor(logger, loader, extractor, led)
	stats, err := proc.Run(ctx, cfg.Paths.ReportsDir)
	if err != nil {
		logger.Error("run aborted", "error", err,
			"succeeded", stats.Succeeded, "failed", stats.Failed)
		os.Exit(1)
	}

	if err := led.SaveAs(cfg.Paths.OutputPath); err != nil {
		logger.Error("failed to save output", "error", err)
		os.Exit(1)
	}

	if stats.Failed > 0 {
		logger.Error("completed with failures",
			"discovered", stats.Discovered,
			"succeeded", stats.Succeeded,
			"failed", stats.Failed,
		)
		os.Exit(1)
	}

	logger.Info("extraction completed",
		"discovered", stats.Discovered,
		"succeeded", stats.Succeeded,
		"output", cfg.Paths.OutputPath,
	)
}
