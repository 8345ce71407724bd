package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcarrillo/docuflow/internal/common"
)

func defaultClassifier(t *testing.T) *Classifier {
	t.Helper()
	rules, err := LoadRules("")
	require.NoError(t, err)
	c, err := New(rules)
	require.NoError(t, err)
	return c
}

func TestNewRejectsEmptyTable(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConfig)
}

func TestClassifyEmptyTextReturnsFallback(t *testing.T) {
	c := defaultClassifier(t)
	res := c.Classify("")
	assert.Equal(t, "CONTRACT", res.TypeCode)
	assert.Equal(t, 0.0, res.Score)
}

func TestClassifyContract(t *testing.T) {
	c := defaultClassifier(t)
	res := c.Classify(`CONTRATO DE OBRA
CLÁUSULA PRIMERA - OBJETO: el contratista se obliga con el contratante
a ejecutar la obra. PLAZO: doce meses. VALOR: $10.000.000`)
	assert.Equal(t, "CONTRACT", res.TypeCode)
	assert.Greater(t, res.Score, 0.5)
	assert.LessOrEqual(t, res.Score, 1.0)
}

func TestClassifyPurchaseOrder(t *testing.T) {
	c := defaultClassifier(t)
	res := c.Classify(`ORDEN DE COMPRA N° 4411
Proveedor: Suministros SAS
Item  Cantidad  Precio
Total: $2.500.000`)
	assert.Equal(t, "PO", res.TypeCode)
	assert.Greater(t, res.Score, 0.5)
}

func TestClassifyCertification(t *testing.T) {
	c := defaultClassifier(t)
	res := c.Classify(`LA NOTARÍA TERCERA CERTIFICA que el compareciente
firmó en su presencia. En fe de lo anterior se estampa el sello.`)
	assert.Equal(t, "CERT", res.TypeCode)
	assert.Greater(t, res.Score, 0.5)
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := defaultClassifier(t)
	lower := c.Classify("orden de compra proveedor cantidad total item")
	upper := c.Classify("ORDEN DE COMPRA PROVEEDOR CANTIDAD TOTAL ITEM")
	assert.Equal(t, lower, upper)
}

func TestClassifyTieKeepsFirstRule(t *testing.T) {
	rules, err := parseRules([]byte(`types:
  - code: ALPHA
    patterns: ["alfa"]
  - code: BETA
    patterns: ["beta"]
`))
	require.NoError(t, err)
	c, err := New(rules)
	require.NoError(t, err)

	// both types match 1/1: the earlier entry wins
	res := c.Classify("alfa y beta")
	assert.Equal(t, "ALPHA", res.TypeCode)
	assert.Equal(t, 1.0, res.Score)
}

func TestClassifyScoreIsMatchedFraction(t *testing.T) {
	rules, err := parseRules([]byte(`types:
  - code: X
    patterns: ["uno", "dos", "tres", "cuatro"]
`))
	require.NoError(t, err)
	c, err := New(rules)
	require.NoError(t, err)

	res := c.Classify("uno y tres")
	assert.Equal(t, "X", res.TypeCode)
	assert.InDelta(t, 0.5, res.Score, 1e-9)
}
