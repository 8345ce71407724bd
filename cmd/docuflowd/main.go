package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/jmcarrillo/docuflow/gen/docuflow/v1"
	"github.com/jmcarrillo/docuflow/internal/async"
	"github.com/jmcarrillo/docuflow/internal/audit"
	"github.com/jmcarrillo/docuflow/internal/classify"
	"github.com/jmcarrillo/docuflow/internal/common"
	"github.com/jmcarrillo/docuflow/internal/export"
	"github.com/jmcarrillo/docuflow/internal/extract"
	"github.com/jmcarrillo/docuflow/internal/ocr"
	"github.com/jmcarrillo/docuflow/internal/pipeline"
	"github.com/jmcarrillo/docuflow/internal/queue"
	repo "github.com/jmcarrillo/docuflow/internal/repository"
	"github.com/jmcarrillo/docuflow/internal/server"
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

	recorder := audit.Recorder(audit.NewLogRecorder(logger))
	if cfg.Queue.URL != "" {
		conn, err := queue.Connect(cfg.Queue.URL, logger)
		if err != nil {
			logger.Error("connecting to nats failed", "error", err)
			os.Exit(1)
		}
		defer conn.Close()
		recorder, err = audit.NewNATSRecorder(conn, cfg.Queue.AuditSubject)
		if err != nil {
			logger.Error("building audit recorder failed", "error", err)
			os.Exit(1)
		}
	}

	store := repo.NewDocumentStore(entc, logger)
	proc := pipeline.NewProcessor(store, extractor, classifier, recorder, logger)

	jobQueue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)

	exportSvc := export.NewService(entc, logger)
	docsSvc := server.NewDocumentsService(entc, jobQueue, exportSvc, logger)

	grpcServer := grpc.NewServer()
	v1.RegisterDocumentsServiceServer(grpcServer, docsSvc)
	reflection.Register(grpcServer)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("docuflowd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	jobQueue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}
