package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/opsdiff/opsdiff/internal/config"
	"github.com/opsdiff/opsdiff/internal/differ"
	"github.com/opsdiff/opsdiff/internal/logger"
	"github.com/opsdiff/opsdiff/internal/models"
	"github.com/opsdiff/opsdiff/internal/reporter"
)

// Exit codes: 0 no differences, 1 differences found, 2 usage or I/O error.
const (
	exitNoChanges = 0
	exitChanges   = 1
	exitError     = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := parseFlags()
	if flags.PreFile == "" || flags.PostFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: opsdiff -pre <baseline file> -post <captured file> [-config <file>] [-format text|json] [-threshold 0.8]")
		return exitError
	}

	cfg, err := config.LoadGlobalConfig(config.GetConfigPath(flags.ConfigFile), zerolog.Nop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	appLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		return exitError
	}

	preText, err := readCapture(flags.PreFile)
	if err != nil {
		appLogger.Error().Err(err).Str("file", flags.PreFile).Msg("Failed to read pre capture")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}
	postText, err := readCapture(flags.PostFile)
	if err != nil {
		appLogger.Error().Err(err).Str("file", flags.PostFile).Msg("Failed to read post capture")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	diffCfg := differ.Config{
		SimilarityThreshold:   cfg.DiffConfig.SimilarityThreshold,
		ExtraVolatilePatterns: cfg.PatternsConfig.ExtraVolatilePatterns,
	}
	if flags.Threshold != 0 {
		diffCfg.SimilarityThreshold = flags.Threshold
	}

	engine, err := differ.NewStateDifferBuilder().
		WithConfig(diffCfg).
		WithLogger(appLogger).
		Build()
	if err != nil {
		appLogger.Error().Err(err).Msg("Failed to build state differ")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	result := engine.Diff(preText, postText)

	if err := render(flags.Format, result); err != nil {
		appLogger.Error().Err(err).Msg("Failed to render diff result")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	if result.HasChanges() {
		return exitChanges
	}
	return exitNoChanges
}

// readCapture loads one capture file, rejecting non-UTF-8 input before it
// reaches the engine.
func readCapture(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file %s is not valid UTF-8", path)
	}
	return string(data), nil
}

func render(format string, result *models.DiffResult) error {
	switch format {
	case "json":
		return reporter.NewJSONReporter(os.Stdout).Render(result)
	case "text", "":
		return reporter.NewConsoleReporter(os.Stdout).Render(result)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
