package metadata

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertAmount(t *testing.T, want string, got *decimal.Decimal) {
	t.Helper()
	require.NotNil(t, got)
	expected, err := decimal.NewFromString(want)
	require.NoError(t, err)
	assert.True(t, expected.Equal(*got), "want %s, got %s", want, got)
}

func TestFindAmountLatinAmericanSeparators(t *testing.T) {
	assertAmount(t, "1234.56", FindAmount("precio $1.234,56 pesos"))
}

func TestFindAmountUSSeparators(t *testing.T) {
	assertAmount(t, "1234.56", FindAmount("price $1,234.56"))
}

func TestFindAmountThousandsOnly(t *testing.T) {
	assertAmount(t, "10000000", FindAmount("por $10.000.000"))
}

func TestFindAmountWithSpaceAfterSign(t *testing.T) {
	assertAmount(t, "500000", FindAmount("suma de $ 500.000"))
}

func TestFindAmountNoCurrencySign(t *testing.T) {
	assert.Nil(t, FindAmount("total 1.234,56 sin signo"))
}

func TestFindAmountNoMatch(t *testing.T) {
	assert.Nil(t, FindAmount("sin montos"))
	assert.Nil(t, FindAmount(""))
}

func TestFindAmountByKeywordValorTotal(t *testing.T) {
	assertAmount(t, "10000.00", FindAmountByKeyword("VALOR TOTAL: $10.000,00"))
}

func TestFindAmountByKeywordMontoTotal(t *testing.T) {
	assertAmount(t, "2500000", FindAmountByKeyword("Monto total $2.500.000"))
}

func TestFindAmountByKeywordBareTotal(t *testing.T) {
	assertAmount(t, "999.99", FindAmountByKeyword("Total: 999.99"))
}

func TestFindAmountByKeywordNoMatch(t *testing.T) {
	assert.Nil(t, FindAmountByKeyword("importe $100.00"))
}

func TestParseAmountUnparseableYieldsNil(t *testing.T) {
	assert.Nil(t, parseAmount("..,,"))
}
