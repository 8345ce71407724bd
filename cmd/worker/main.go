// The worker consumes document-uploaded events from NATS and runs the intake
// pipeline for each one. Prometheus metrics are served over HTTP.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jmcarrillo/docuflow/constants"
	"github.com/jmcarrillo/docuflow/internal/audit"
	"github.com/jmcarrillo/docuflow/internal/classify"
	"github.com/jmcarrillo/docuflow/internal/common"
	"github.com/jmcarrillo/docuflow/internal/extract"
	"github.com/jmcarrillo/docuflow/internal/ingest"
	"github.com/jmcarrillo/docuflow/internal/ocr"
	"github.com/jmcarrillo/docuflow/internal/pipeline"
	"github.com/jmcarrillo/docuflow/internal/queue"
	repo "github.com/jmcarrillo/docuflow/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	if cfg.Queue.URL == "" {
		logger.Error("NATS_URL env var is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	// intake registers against the type table, so a worker-only deployment
	// must seed it too
	if err := repo.SeedDocumentTypes(ctx, entc); err != nil {
		logger.Error("seeding document types failed", "error", err)
		os.Exit(1)
	}

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

	conn, err := queue.Connect(cfg.Queue.URL, logger)
	if err != nil {
		logger.Error("connecting to nats failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	recorder, err := audit.NewNATSRecorder(conn, cfg.Queue.AuditSubject)
	if err != nil {
		logger.Error("building audit recorder failed", "error", err)
		os.Exit(1)
	}

	store := repo.NewDocumentStore(entc, logger)
	proc := pipeline.NewProcessor(store, extractor, classifier, recorder, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	proc.Metrics = pipeline.NewMetrics(reg)

	metricsSrv := &http.Server{
		Addr:    cfg.Server.MetricsAddr,
		Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}
	go func() {
		logger.Info("metrics listening", "addr", cfg.Server.MetricsAddr)
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	uploads := queue.NewUploads(conn, cfg.Queue.UploadSubject, logger)

	if cfg.Intake.Dir != "" {
		ingestor := ingest.NewFSIngestor(store, cfg.Intake.DefaultType, logger)
		events, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       []string{cfg.Intake.Dir},
			InitialScan: cfg.Intake.InitialScan,
			Debounce:    cfg.Intake.Debounce,
		}, logger)
		if err != nil {
			logger.Error("starting intake watcher failed", "dir", cfg.Intake.Dir, "error", err)
			os.Exit(1)
		}
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case err, ok := <-watchErrs:
					if ok {
						logger.Error("intake watcher error", "error", err)
					}
				case path, ok := <-events:
					if !ok {
						return
					}
					res, err := ingestor.IngestPath(ctx, path)
					if err != nil {
						logger.Error("intake.failed", "path", path, "error", err)
						continue
					}
					if res.Deduplicated {
						continue
					}
					ev := audit.Event{
						Action:     constants.AuditUpload,
						DocumentID: res.DocumentID,
						Message:    "Documento registrado",
						Metadata:   map[string]any{"path": res.SourcePath, "sha256": res.HashHex},
						At:         time.Now().UTC(),
					}
					if err := recorder.Record(ctx, ev); err != nil {
						logger.Warn("intake.audit.failed", "document_id", res.DocumentID, "error", err)
					}
					if err := uploads.Publish(ctx, res.DocumentID); err != nil {
						logger.Error("intake.publish.failed", "document_id", res.DocumentID, "error", err)
					}
				}
			}
		}()
		logger.Info("intake watching", "dir", cfg.Intake.Dir)
	}

	handler := func(ctx context.Context, id uuid.UUID) error {
		runCtx, cancel := context.WithTimeout(ctx, cfg.Queue.ProcessTimeout)
		defer cancel()
		return proc.Process(runCtx, id)
	}
	if err := uploads.Subscribe(ctx, handler); err != nil {
		logger.Error("subscription failed", "error", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = metricsSrv.Shutdown(shutdownCtx)
}
