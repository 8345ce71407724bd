package repository

import (
	"context"

	"github.com/jmcarrillo/docuflow/constants"
	"github.com/jmcarrillo/docuflow/gen/ent"
	"github.com/jmcarrillo/docuflow/gen/ent/documenttype"
	"github.com/jmcarrillo/docuflow/internal/common"
)

type seedType struct {
	code constants.TypeCode
	name string
	desc string
}

var defaultTypes = []seedType{
	{constants.TypeContract, "Contrato", "Contratos y acuerdos con cláusulas, plazos y valores"},
	{constants.TypePurchaseOrder, "Orden de Compra", "Órdenes de compra con ítems, cantidades y proveedor"},
	{constants.TypeCertification, "Certificación", "Certificaciones y documentos notariales"},
}

// SeedDocumentTypes inserts the built-in document types that are missing.
// Existing rows are left untouched, so it is safe to run on every startup.
func SeedDocumentTypes(ctx context.Context, client *ent.Client) error {
	for _, st := range defaultTypes {
		exists, err := client.DocumentType.Query().
			Where(documenttype.CodeEQ(string(st.code))).
			Exist(ctx)
		if err != nil {
			return common.WrapError(common.ErrInvalid, "repository.SeedDocumentTypes", err)
		}
		if exists {
			continue
		}
		_, err = client.DocumentType.Create().
			SetCode(string(st.code)).
			SetName(st.name).
			SetDescription(st.desc).
			SetIsActive(true).
			Save(ctx)
		if err != nil {
			return common.WrapError(common.ErrInvalid, "repository.SeedDocumentTypes", err)
		}
	}
	return nil
}
