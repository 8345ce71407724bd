// runpipe runs the intake pipeline once for a single document and exits.
// Useful for reprocessing and for debugging extraction locally.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jmcarrillo/docuflow/internal/audit"
	"github.com/jmcarrillo/docuflow/internal/classify"
	"github.com/jmcarrillo/docuflow/internal/common"
	"github.com/jmcarrillo/docuflow/internal/extract"
	"github.com/jmcarrillo/docuflow/internal/ocr"
	"github.com/jmcarrillo/docuflow/internal/pipeline"
	repo "github.com/jmcarrillo/docuflow/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runpipe <document-id-uuid>")
		os.Exit(2)
	}
	documentID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid document id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Queue.ProcessTimeout)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	rules, err := classify.LoadRules(cfg.Classify.RulesPath)
	if err != nil {
		logger.Error("loading type rules failed", "error", err)
		os.Exit(2)
	}
	classifier, err := classify.New(rules)
	if err != nil {
		logger.Error("building classifier failed", "error", err)
		os.Exit(2)
	}

	engine := ocr.NewEngine(ocr.Config{
		Tesseract:         cfg.OCR.Tesseract,
		Pdftoppm:          cfg.OCR.Pdftoppm,
		TessdataDir:       cfg.OCR.TessdataDir,
		Language:          cfg.OCR.Language,
		DPI:               cfg.OCR.DPI,
		PSM:               cfg.OCR.PSM,
		OEM:               cfg.OCR.OEM,
		MaxPages:          cfg.OCR.MaxPages,
		BinarizeThreshold: cfg.OCR.BinarizeThreshold,
		Timeout:           cfg.OCR.Timeout,
		TSVConfidence:     cfg.OCR.TSVConfidence,
	}, logger)
	extractor := extract.NewHybridExtractor(cfg.OCR.MinEmbeddedChars, engine, logger)

	store := repo.NewDocumentStore(entc, logger)
	proc := pipeline.NewProcessor(store, extractor, classifier, audit.NewLogRecorder(logger), logger)

	start := time.Now()
	if err := proc.Process(ctx, documentID); err != nil {
		logger.Error("pipeline failed",
			"document_id", documentID,
			"error", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		os.Exit(1)
	}
	logger.Info("pipeline OK",
		"document_id", documentID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
