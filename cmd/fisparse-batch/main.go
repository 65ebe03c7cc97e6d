package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/fisworks/fisparse/internal/common"
	"github.com/fisworks/fisparse/internal/export"
	"github.com/fisworks/fisparse/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir = flag.String("dir", "", "directory of OCR .txt dumps to parse (required)")
		out = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "receipts.xlsx")
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		logger.Error("failed to read directory", "dir", *dir, "error", err)
		os.Exit(1)
	}

	parser := pipeline.New(cfg.Pipeline, logger)

	var rows []export.Row
	parsed, invalid := 0, 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		path := filepath.Join(*dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Error("failed to read file", "path", path, "error", err)
			continue
		}

		receipt := parser.Parse(string(raw), nil)
		rows = append(rows, export.Row{
			ID:         uuid.New(),
			SourcePath: path,
			Receipt:    receipt,
		})
		if receipt.Valid {
			parsed++
		} else {
			invalid++
		}
	}

	exporter := export.NewService(logger)
	xlsxBytes, err := exporter.ReceiptsXLSX(rows)
	if err != nil {
		logger.Error("failed to export receipts", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch complete",
		"files", len(rows),
		"valid", parsed,
		"invalid", invalid,
		"output_file", *out)

	fmt.Printf("Batch parsing complete!\n")
	fmt.Printf("- Files parsed: %d\n", len(rows))
	fmt.Printf("- Valid: %d\n", parsed)
	fmt.Printf("- Invalid: %d\n", invalid)
	fmt.Printf("- Output: %s\n", *out)
}
