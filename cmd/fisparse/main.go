package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/fisworks/fisparse/internal/common"
	"github.com/fisworks/fisparse/internal/entity"
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
		in         = flag.String("in", "", "OCR text file to parse (default: stdin)")
		pretty     = flag.Bool("pretty", false, "indent the JSON output")
		confidence = flag.Float64("ocr-confidence", 0, "confidence reported by the OCR engine, if any")
		engine     = flag.String("ocr-engine", "", "name of the OCR engine, if any")
	)
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	var raw []byte
	var err error
	if *in != "" {
		raw, err = os.ReadFile(*in)
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		logger.Error("failed to read input", "error", err)
		os.Exit(1)
	}

	var meta *entity.OCRMetadata
	if *confidence > 0 || *engine != "" {
		meta = &entity.OCRMetadata{Confidence: *confidence, Engine: *engine}
	}

	parser := pipeline.New(cfg.Pipeline, logger)
	receipt := parser.Parse(string(raw), meta)

	var out []byte
	if *pretty {
		out, err = json.MarshalIndent(receipt, "", "  ")
	} else {
		out, err = json.Marshal(receipt)
	}
	if err != nil {
		logger.Error("failed to encode result", "error", err)
		os.Exit(1)
	}
	if err := pipeline.ValidateOutput(out); err != nil {
		logger.Error("result violates the output contract", "error", err)
		os.Exit(1)
	}

	fmt.Println(string(out))

	if !receipt.Valid {
		for _, msg := range receipt.Errors {
			printError("error: %s\n", msg)
		}
		os.Exit(1)
	}
}
