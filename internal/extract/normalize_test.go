package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLineEndings(t *testing.T) {
	got := Normalize("uno\r\ndos\rtres")
	assert.Equal(t, "uno\ndos\ntres", got)
}

func TestNormalizeCollapsesHorizontalWhitespace(t *testing.T) {
	got := Normalize("valor   total\t\t$100")
	assert.Equal(t, "valor total $100", got)
}

func TestNormalizeKeepsSingleBlankLines(t *testing.T) {
	got := Normalize("parrafo uno\n\nparrafo dos")
	assert.Equal(t, "parrafo uno\n\nparrafo dos", got)
}

func TestNormalizeCollapsesBlankRuns(t *testing.T) {
	got := Normalize("uno\n\n\n\n\ndos")
	assert.Equal(t, "uno\n\ndos", got)
}

func TestNormalizeDropsNoisyLines(t *testing.T) {
	noisy := "§§§§©©©®®™™ abc"
	got := Normalize("limpia\n" + noisy + "\ntambien limpia")
	assert.Equal(t, "limpia\ntambien limpia", got)
}

func TestNormalizeKeepsLinesUnderNoiseThreshold(t *testing.T) {
	// one noise rune in a long line stays under the ratio
	line := "cláusula primera del contrato §"
	got := Normalize(line)
	assert.Equal(t, line, got)
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n\t\n  "))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"uno\r\n\r\n\r\ndos   tres\n§§§§§§§§\ncuatro",
		"a\n\n§©®™{}[]\n\nb",
		"  bordes  \n\n\n\n  con espacios  ",
		strings.Repeat("linea normal\n\n", 50),
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestNormalizeDropCannotCreateBlankRun(t *testing.T) {
	// the dropped line sits between blank lines; the result must not carry
	// more than one blank line in a row
	got := Normalize("uno\n\n§§§§§§\n\ndos")
	assert.Equal(t, "uno\n\ndos", got)
}
