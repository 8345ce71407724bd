// Package server exposes the document pipeline over gRPC.
package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	v1 "github.com/jmcarrillo/docuflow/gen/docuflow/v1"
	"github.com/jmcarrillo/docuflow/gen/ent"
	"github.com/jmcarrillo/docuflow/gen/ent/document"
	"github.com/jmcarrillo/docuflow/internal/async"
	"github.com/jmcarrillo/docuflow/internal/common"
	"github.com/jmcarrillo/docuflow/internal/export"
)

type DocumentsService struct {
	v1.UnimplementedDocumentsServiceServer
	ent    *ent.Client
	queue  async.Queue
	export *export.Service
	logger *slog.Logger
}

func NewDocumentsService(entc *ent.Client, queue async.Queue, exp *export.Service, logger *slog.Logger) *DocumentsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentsService{ent: entc, queue: queue, export: exp, logger: logger}
}

// ProcessDocument enqueues a pipeline run; the run itself happens on the
// worker pool.
func (s *DocumentsService) ProcessDocument(ctx context.Context, req *v1.ProcessDocumentRequest) (*v1.ProcessDocumentResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}

	exists, err := s.ent.Document.Query().Where(document.IDEQ(id)).Exist(ctx)
	if err != nil {
		s.logger.Error("process.lookup.failed", "document_id", id, "err", err)
		return nil, common.InternalError("document lookup failed")
	}
	if !exists {
		return nil, common.NotFoundError("document not found")
	}

	if err := s.queue.Enqueue(ctx, async.Job{DocumentID: id}); err != nil {
		s.logger.Error("process.enqueue.failed", "document_id", id, "err", err)
		return nil, common.InternalError("could not enqueue document")
	}
	return &v1.ProcessDocumentResponse{Enqueued: true}, nil
}

func (s *DocumentsService) GetDocument(ctx context.Context, req *v1.GetDocumentRequest) (*v1.GetDocumentResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}

	doc, err := s.ent.Document.Query().
		Where(document.IDEQ(id)).
		WithDocumentType().
		WithSuggestedType().
		WithMetadata().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("document not found")
		}
		s.logger.Error("get.query.failed", "document_id", id, "err", err)
		return nil, common.InternalError("document lookup failed")
	}
	return &v1.GetDocumentResponse{Document: toProtoDocument(doc)}, nil
}

func (s *DocumentsService) ExportDocuments(ctx context.Context, req *v1.ExportDocumentsRequest) (*v1.ExportDocumentsResponse, error) {
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}
	if fromPtr != nil && toPtr == nil {
		today := time.Now().UTC()
		to := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toPtr = &to
	}

	xlsx, err := s.export.ExportDocumentsXLSX(ctx, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.failed", "err", err)
		return nil, common.InternalError("export failed")
	}
	return &v1.ExportDocumentsResponse{Xlsx: xlsx}, nil
}

func toProtoDocument(d *ent.Document) *v1.Document {
	out := &v1.Document{
		Id:        d.ID.String(),
		Title:     d.Title,
		Status:    d.Status,
		IsOcr:     d.IsOcr,
		CreatedAt: d.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: d.UpdatedAt.Format(time.RFC3339Nano),
	}
	if d.Edges.DocumentType != nil {
		out.TypeCode = d.Edges.DocumentType.Code
	}
	if d.Edges.SuggestedType != nil {
		out.SuggestedTypeCode = d.Edges.SuggestedType.Code
	}
	if d.SuggestedScore != nil {
		out.SuggestedScore = *d.SuggestedScore
	}
	if d.OcrConfidence != nil {
		out.OcrConfidence = *d.OcrConfidence
		out.HasOcrConfidence = true
	}
	if md := d.Edges.Metadata; md != nil {
		pm := &v1.DocumentMetadata{
			Parties:         md.Parties,
			ReferenceNumber: md.ReferenceNumber,
		}
		if md.Amount != nil {
			pm.Amount = md.Amount.StringFixed(2)
		}
		if md.DateMain != nil {
			pm.DateMain = md.DateMain.Format("2006-01-02")
		}
		if md.DateStart != nil {
			pm.DateStart = md.DateStart.Format("2006-01-02")
		}
		if md.DateEnd != nil {
			pm.DateEnd = md.DateEnd.Format("2006-01-02")
		}
		out.Metadata = pm
	}
	return out
}
