// Package pipeline coordinates one document intake run: text extraction,
// type classification, metadata heuristics, and the atomic write-back.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jmcarrillo/docuflow/constants"
	"github.com/jmcarrillo/docuflow/internal/audit"
	"github.com/jmcarrillo/docuflow/internal/classify"
	"github.com/jmcarrillo/docuflow/internal/extract"
	"github.com/jmcarrillo/docuflow/internal/metadata"
)

// Processor runs the intake pipeline for a single document. Extraction and
// classification happen outside any transaction; only the final write-back
// through Store is transactional.
type Processor struct {
	Store      Store
	Extractor  extract.TextExtractor
	Classifier *classify.Classifier
	Audit      audit.Recorder
	Logger     *slog.Logger

	// Metrics is optional; nil disables instrumentation.
	Metrics *Metrics
}

func NewProcessor(store Store, ex extract.TextExtractor, cl *classify.Classifier, rec audit.Recorder, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if rec == nil {
		rec = audit.NewLogRecorder(logger)
	}
	return &Processor{Store: store, Extractor: ex, Classifier: cl, Audit: rec, Logger: logger}
}

// Process runs the full pipeline for documentID. A document without any
// stored file version is a no-op. Any stage error aborts the run before the
// write-back, so a failed run leaves no partial state behind.
func (p *Processor) Process(ctx context.Context, documentID uuid.UUID) error {
	start := time.Now()
	if p.Metrics != nil {
		p.Metrics.InFlight.Inc()
		defer p.Metrics.InFlight.Dec()
	}

	err := p.process(ctx, documentID)

	if p.Metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		p.Metrics.RunsTotal.WithLabelValues(status).Inc()
		p.Metrics.RunDuration.Observe(time.Since(start).Seconds())
	}
	return err
}

func (p *Processor) process(ctx context.Context, documentID uuid.UUID) error {
	doc, err := p.Store.GetDocument(ctx, documentID)
	if err != nil {
		p.Logger.Error("pipeline.load.failed", "document_id", documentID, "err", err)
		return err
	}
	if !doc.HasFile {
		p.Logger.Info("pipeline.skip.no_file", "document_id", documentID)
		return nil
	}

	exRes, err := p.Extractor.Extract(ctx, doc.FilePath)
	if err != nil {
		p.Logger.Error("pipeline.extract.failed", "document_id", documentID, "path", doc.FilePath, "err", err)
		return err
	}
	if p.Metrics != nil && exRes.UsedOCR {
		p.Metrics.OCRFallbacks.Inc()
	}
	p.Logger.Info("pipeline.extract.ok",
		"document_id", documentID,
		"used_ocr", exRes.UsedOCR,
		"chars", len(exRes.Text),
	)

	clRes := p.Classifier.Classify(exRes.Text)

	res := RunResults{
		Text:           exRes.Text,
		UsedOCR:        exRes.UsedOCR,
		OCRConfidence:  exRes.OCRConfidence,
		SuggestedScore: clRes.Score,
	}

	// A suggestion is persisted only when a matching type record exists.
	// Without one the document's declared type steers the metadata
	// heuristics instead; the score is recorded either way.
	known, err := p.Store.ResolveTypeCode(ctx, clRes.TypeCode)
	if err != nil {
		return err
	}
	effective := clRes.TypeCode
	if known {
		res.SuggestedType = clRes.TypeCode
	} else {
		effective = constants.NormalizeTypeCode(doc.DeclaredType)
	}
	cand := metadata.Extract(exRes.Text, effective)
	res.ReferenceNumber = cand.ReferenceNumber
	res.Amount = cand.Amount
	res.Parties = cand.Parties
	res.DateMain = cand.DateMain
	res.DateStart = cand.DateStart
	res.DateEnd = cand.DateEnd

	if err := p.Store.SaveRunResults(ctx, documentID, res); err != nil {
		p.Logger.Error("pipeline.save.failed", "document_id", documentID, "err", err)
		return err
	}
	p.Logger.Info("pipeline.save.ok",
		"document_id", documentID,
		"suggested_type", res.SuggestedType,
		"suggested_score", res.SuggestedScore,
	)

	ev := audit.Event{
		Action:     constants.AuditOCRExtract,
		DocumentID: documentID,
		Message:    "Extracción automática ejecutada",
		Metadata: map[string]any{
			"used_ocr":        res.UsedOCR,
			"suggested_type":  res.SuggestedType,
			"suggested_score": res.SuggestedScore,
		},
		At: time.Now().UTC(),
	}
	if err := p.Audit.Record(ctx, ev); err != nil {
		// the run already committed; losing one audit event is not fatal
		p.Logger.Warn("pipeline.audit.failed", "document_id", documentID, "err", err)
	}
	return nil
}
