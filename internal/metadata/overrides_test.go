package metadata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contractText = `CONTRATO DE OBRA N° CT-2026/001
EL CONTRATANTE: Acme S.A.
EL CONTRATISTA: Construcciones del Sur Ltda.
Suscrito el 15/01/2026.
Vigencia desde 01/01/2026 y vigencia hasta 31/12/2026.
Anticipo: $1.000.000
VALOR TOTAL: $10.000,00`

func TestExtractContract(t *testing.T) {
	c := Extract(contractText, "CONTRACT")

	assert.Equal(t, "CT-2026/001", c.ReferenceNumber)
	assert.Equal(t, "EL CONTRATANTE: Acme S.A. | EL CONTRATISTA: Construcciones del Sur Ltda.", c.Parties)

	require.NotNil(t, c.DateMain)
	assert.Equal(t, date(2026, time.January, 15), *c.DateMain)
	require.NotNil(t, c.DateStart)
	assert.Equal(t, date(2026, time.January, 1), *c.DateStart)
	require.NotNil(t, c.DateEnd)
	assert.Equal(t, date(2026, time.December, 31), *c.DateEnd)

	// keyword total beats the first bare currency token
	assertAmount(t, "10000.00", c.Amount)
}

func TestExtractPurchaseOrderReferenceOverride(t *testing.T) {
	text := `ORDEN DE COMPRA
Documento No. 00099
OC 4500123456
Proveedor: Suministros SAS
Total: $2.500.000`

	po := Extract(text, "PO")
	assert.Equal(t, "4500123456", po.ReferenceNumber)

	// without the PO override the generic label wins
	generic := Extract(text, "CERT")
	assert.Equal(t, "00099", generic.ReferenceNumber)
}

func TestExtractKeywordAmountAppliesToAllTypes(t *testing.T) {
	text := "Valor asegurado $5.000.000\nTOTAL: $750.000"
	for _, code := range []string{"CONTRACT", "PO", "CERT"} {
		c := Extract(text, code)
		assertAmount(t, "750000", c.Amount)
	}
}

func TestExtractContractDatesOnlyForContracts(t *testing.T) {
	text := "vigencia desde 01/01/2026 vigencia hasta 31/12/2026"
	po := Extract(text, "PO")
	assert.Nil(t, po.DateStart)
	assert.Nil(t, po.DateEnd)

	contract := Extract(text, "CONTRACT")
	assert.NotNil(t, contract.DateStart)
	assert.NotNil(t, contract.DateEnd)
}

func TestExtractNormalizesTypeCode(t *testing.T) {
	text := "vigencia desde 01/01/2026"
	c := Extract(text, "  contract ")
	assert.NotNil(t, c.DateStart)
}

func TestExtractDateMainIsFirstDate(t *testing.T) {
	c := Extract("emitido 10/02/2026, vence 20/03/2026", "CERT")
	require.NotNil(t, c.DateMain)
	assert.Equal(t, date(2026, time.February, 10), *c.DateMain)
}

func TestExtractEmptyText(t *testing.T) {
	c := Extract("", "CONTRACT")
	assert.Empty(t, c.ReferenceNumber)
	assert.Empty(t, c.Parties)
	assert.Nil(t, c.Amount)
	assert.Nil(t, c.DateMain)
	assert.Nil(t, c.DateStart)
	assert.Nil(t, c.DateEnd)
}
