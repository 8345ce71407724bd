package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/jmcarrillo/docuflow/gen/ent"
	"github.com/jmcarrillo/docuflow/gen/ent/documenttype"
	"github.com/jmcarrillo/docuflow/gen/ent/documentversion"
	"github.com/jmcarrillo/docuflow/internal/common"
	"github.com/jmcarrillo/docuflow/internal/ingest"
)

var _ ingest.Registrar = (*DocumentStore)(nil)

// RegisterDocument creates a document with its first version. When the
// content hash already exists the owning document is returned instead,
// making a re-dropped file a no-op.
func (s *DocumentStore) RegisterDocument(ctx context.Context, reg ingest.Registration) (uuid.UUID, bool, error) {
	existing, err := s.client.DocumentVersion.Query().
		Where(documentversion.FileHashSha256EQ(reg.HashHex)).
		First(ctx)
	switch {
	case err == nil:
		return existing.DocumentID, true, nil
	case !ent.IsNotFound(err):
		return uuid.Nil, false, common.WrapError(common.ErrInvalid, "repository.RegisterDocument", err)
	}

	dt, err := s.client.DocumentType.Query().
		Where(documenttype.CodeEQ(reg.TypeCode)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return uuid.Nil, false, common.WrapError(common.ErrNotFound, "repository.RegisterDocument", err)
		}
		return uuid.Nil, false, common.WrapError(common.ErrInvalid, "repository.RegisterDocument", err)
	}

	var docID uuid.UUID
	err = WithTx(ctx, s.client, func(tx *ent.Tx) error {
		doc, err := tx.Document.Create().
			SetTitle(reg.Title).
			SetTypeID(dt.ID).
			Save(ctx)
		if err != nil {
			return common.WrapError(common.ErrInvalid, "repository.RegisterDocument", err)
		}
		_, err = tx.DocumentVersion.Create().
			SetDocumentID(doc.ID).
			SetVersionNumber(1).
			SetFilePath(reg.FilePath).
			SetFileName(reg.FileName).
			SetMimeType(reg.MimeType).
			SetFileHashSha256(reg.HashHex).
			SetFileSizeBytes(reg.SizeBytes).
			Save(ctx)
		if err != nil {
			return common.WrapError(common.ErrInvalid, "repository.RegisterDocument", err)
		}
		docID = doc.ID
		return nil
	})
	if err != nil {
		return uuid.Nil, false, err
	}
	return docID, false, nil
}
