package metadata

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFindPartiesCollectsKeywordLines(t *testing.T) {
	text := `CONTRATO DE OBRA
EL CONTRATANTE: Acme S.A.
considerandos varios
EL CONTRATISTA: Construcciones del Sur Ltda.`
	got := FindParties(text)
	assert.Equal(t, "EL CONTRATANTE: Acme S.A. | EL CONTRATISTA: Construcciones del Sur Ltda.", got)
}

func TestFindPartiesStopsAtThreeHits(t *testing.T) {
	text := "proveedor: A\ncliente: B\ncontratante: C\ncontratista: D"
	got := FindParties(text)
	assert.Equal(t, "proveedor: A | cliente: B | contratante: C", got)
}

func TestFindPartiesCaseInsensitiveKeywords(t *testing.T) {
	got := FindParties("EL PROVEEDOR: Suministros SAS")
	assert.Equal(t, "EL PROVEEDOR: Suministros SAS", got)
}

func TestFindPartiesScanWindow(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 250; i++ {
		fmt.Fprintf(&b, "línea de relleno %d\n", i)
	}
	b.WriteString("contratante: Tarde S.A.\n")
	assert.Equal(t, "", FindParties(b.String()))
}

func TestFindPartiesSkipsBlankLinesInWindow(t *testing.T) {
	// blank lines do not count against the scan window
	text := strings.Repeat("\n", 300) + "cliente: Aun Visible S.A."
	assert.Equal(t, "cliente: Aun Visible S.A.", FindParties(text))
}

func TestFindPartiesTruncatesRunes(t *testing.T) {
	long := "contratante: " + strings.Repeat("á", 600)
	got := FindParties(long)
	assert.Equal(t, 500, utf8.RuneCountInString(got))
}

func TestFindPartiesEmpty(t *testing.T) {
	assert.Equal(t, "", FindParties(""))
	assert.Equal(t, "", FindParties("texto sin roles"))
}
