package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jmcarrillo/docuflow/gen/ent"
	"github.com/jmcarrillo/docuflow/gen/ent/document"
	"github.com/jmcarrillo/docuflow/gen/ent/documentmetadata"
	"github.com/jmcarrillo/docuflow/gen/ent/documenttype"
	"github.com/jmcarrillo/docuflow/gen/ent/documentversion"
	"github.com/jmcarrillo/docuflow/internal/common"
	"github.com/jmcarrillo/docuflow/internal/pipeline"
)

// DocumentStore is the ent-backed implementation of pipeline.Store.
type DocumentStore struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentStore(client *ent.Client, logger *slog.Logger) *DocumentStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentStore{client: client, logger: logger}
}

var _ pipeline.Store = (*DocumentStore)(nil)

// GetDocument loads a snapshot of the document and its latest version.
func (s *DocumentStore) GetDocument(ctx context.Context, id uuid.UUID) (pipeline.DocumentSnapshot, error) {
	doc, err := s.client.Document.Query().
		Where(document.IDEQ(id)).
		WithDocumentType().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return pipeline.DocumentSnapshot{}, common.WrapError(common.ErrNotFound, "repository.GetDocument", err)
		}
		return pipeline.DocumentSnapshot{}, common.WrapError(common.ErrInvalid, "repository.GetDocument", err)
	}

	snap := pipeline.DocumentSnapshot{ID: doc.ID}
	if doc.Edges.DocumentType != nil {
		snap.DeclaredType = doc.Edges.DocumentType.Code
	}

	latest, err := s.client.DocumentVersion.Query().
		Where(documentversion.DocumentIDEQ(id)).
		Order(ent.Desc(documentversion.FieldVersionNumber)).
		First(ctx)
	switch {
	case err == nil:
		snap.FilePath = latest.FilePath
		snap.HasFile = latest.FilePath != ""
	case ent.IsNotFound(err):
		// no versions yet; the pipeline treats this as a no-op
	default:
		return pipeline.DocumentSnapshot{}, common.WrapError(common.ErrInvalid, "repository.GetDocument", err)
	}
	return snap, nil
}

// ResolveTypeCode reports whether an active document type exists for code.
func (s *DocumentStore) ResolveTypeCode(ctx context.Context, code string) (bool, error) {
	if code == "" {
		return false, nil
	}
	exists, err := s.client.DocumentType.Query().
		Where(documenttype.CodeEQ(code)).
		Exist(ctx)
	if err != nil {
		return false, common.WrapError(common.ErrInvalid, "repository.ResolveTypeCode", err)
	}
	return exists, nil
}

// SaveRunResults writes one pipeline run back in a single transaction: the
// document's extraction and suggestion columns plus its metadata row. The
// metadata row is created when missing. date_main is written only if it is
// currently unset, so the first extracted date sticks across reruns.
func (s *DocumentStore) SaveRunResults(ctx context.Context, id uuid.UUID, res pipeline.RunResults) error {
	return WithTx(ctx, s.client, func(tx *ent.Tx) error {
		upd := tx.Document.UpdateOneID(id).
			SetExtractedText(res.Text).
			SetIsOcr(res.UsedOCR).
			SetSuggestedScore(res.SuggestedScore)

		if res.OCRConfidence != nil {
			upd.SetOcrConfidence(*res.OCRConfidence)
		} else {
			upd.ClearOcrConfidence()
		}

		if res.SuggestedType != "" {
			st, err := tx.DocumentType.Query().
				Where(documenttype.CodeEQ(res.SuggestedType)).
				Only(ctx)
			if err != nil {
				return common.WrapError(common.ErrInvalid, "repository.SaveRunResults", err)
			}
			upd.SetSuggestedTypeID(st.ID)
		} else {
			upd.ClearSuggestedTypeID()
		}

		if _, err := upd.Save(ctx); err != nil {
			if ent.IsNotFound(err) {
				return common.WrapError(common.ErrNotFound, "repository.SaveRunResults", err)
			}
			return common.WrapError(common.ErrInvalid, "repository.SaveRunResults", err)
		}

		md, err := tx.DocumentMetadata.Query().
			Where(documentmetadata.DocumentIDEQ(id)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return common.WrapError(common.ErrInvalid, "repository.SaveRunResults", err)
		}

		if md == nil {
			create := tx.DocumentMetadata.Create().
				SetDocumentID(id).
				SetReferenceNumber(res.ReferenceNumber).
				SetParties(res.Parties)
			if res.Amount != nil {
				create.SetAmount(*res.Amount)
			}
			if res.DateMain != nil {
				create.SetDateMain(*res.DateMain)
			}
			if res.DateStart != nil {
				create.SetDateStart(*res.DateStart)
			}
			if res.DateEnd != nil {
				create.SetDateEnd(*res.DateEnd)
			}
			if _, err := create.Save(ctx); err != nil {
				return common.WrapError(common.ErrInvalid, "repository.SaveRunResults", err)
			}
			return nil
		}

		mupd := md.Update().
			SetReferenceNumber(res.ReferenceNumber).
			SetParties(res.Parties)
		if res.Amount != nil {
			mupd.SetAmount(*res.Amount)
		} else {
			mupd.ClearAmount()
		}
		if md.DateMain == nil && res.DateMain != nil {
			mupd.SetDateMain(*res.DateMain)
		}
		if res.DateStart != nil {
			mupd.SetDateStart(*res.DateStart)
		} else {
			mupd.ClearDateStart()
		}
		if res.DateEnd != nil {
			mupd.SetDateEnd(*res.DateEnd)
		} else {
			mupd.ClearDateEnd()
		}
		if _, err := mupd.Save(ctx); err != nil {
			return common.WrapError(common.ErrInvalid, "repository.SaveRunResults", err)
		}
		return nil
	})
}
