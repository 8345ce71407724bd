package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindReferenceNumberLabels(t *testing.T) {
	cases := map[string]string{
		"Contrato N° CT-2026/001 celebrado": "CT-2026/001",
		"No. 4500123456 del presente":       "4500123456",
		"número 2026-15":                    "2026-15",
		"Contrato: CT-88-A firmado":         "CT-88-A",
	}
	for text, want := range cases {
		assert.Equal(t, want, FindReferenceNumber(text), "text %q", text)
	}
}

func TestFindReferenceNumberRejectsShortTokens(t *testing.T) {
	assert.Equal(t, "", FindReferenceNumber("N° 12"))
}

func TestFindReferenceNumberNoMatch(t *testing.T) {
	assert.Equal(t, "", FindReferenceNumber("documento sin referencias"))
}

func TestFindPurchaseOrderNumber(t *testing.T) {
	assert.Equal(t, "4500123456", FindPurchaseOrderNumber("OC 4500123456"))
	assert.Equal(t, "OC-88-2026", FindPurchaseOrderNumber("Orden de Compra # OC-88-2026"))
}

func TestFindPurchaseOrderNumberNoMatch(t *testing.T) {
	assert.Equal(t, "", FindPurchaseOrderNumber("documento cualquiera"))
}
