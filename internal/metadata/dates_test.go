package metadata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFindDatesDMY(t *testing.T) {
	got := FindDates("firmado el 12/02/2026 en la ciudad")
	require.Len(t, got, 1)
	assert.Equal(t, date(2026, time.February, 12), got[0])
}

func TestFindDatesDashSeparator(t *testing.T) {
	got := FindDates("vence el 1-9-2026")
	require.Len(t, got, 1)
	assert.Equal(t, date(2026, time.September, 1), got[0])
}

func TestFindDatesYMD(t *testing.T) {
	got := FindDates("expedido 2026-02-12 en Bogotá")
	require.Len(t, got, 1)
	assert.Equal(t, date(2026, time.February, 12), got[0])
}

func TestFindDatesTwoDigitYear(t *testing.T) {
	got := FindDates("plazo hasta 5/3/26")
	require.Len(t, got, 1)
	assert.Equal(t, date(2026, time.March, 5), got[0])
}

func TestFindDatesRejectsInvalidCalendarDates(t *testing.T) {
	assert.Empty(t, FindDates("fecha 31/04/2026"))
	assert.Empty(t, FindDates("fecha 30/02/2026"))
	assert.Empty(t, FindDates("fecha 12/13/2026"))
}

func TestFindDatesMultiple(t *testing.T) {
	got := FindDates("desde 01/01/2026 hasta 31/12/2026")
	require.Len(t, got, 2)
	assert.Equal(t, date(2026, time.January, 1), got[0])
	assert.Equal(t, date(2026, time.December, 31), got[1])
}

func TestFindDateByKeyword(t *testing.T) {
	text := "vigencia desde el día 01/01/2026 y vigencia hasta el 31/12/2026"
	start := FindDateByKeyword(text, `vigencia\s+desde`)
	require.NotNil(t, start)
	assert.Equal(t, date(2026, time.January, 1), *start)

	end := FindDateByKeyword(text, `vigencia\s+hasta`)
	require.NotNil(t, end)
	assert.Equal(t, date(2026, time.December, 31), *end)
}

func TestFindDateByKeywordLookaheadBound(t *testing.T) {
	// the date sits beyond the 40-character window after the keyword
	text := "fecha de inicio de la etapa precontractual que antecede a la etapa contractual 01/01/2026"
	assert.Nil(t, FindDateByKeyword(text, `fecha\s+de\s+inicio`))
}

func TestFindDateByKeywordInvalidDateIsNil(t *testing.T) {
	assert.Nil(t, FindDateByKeyword("vigencia desde 31/04/2026", `vigencia\s+desde`))
}

func TestFindDateByKeywordNoMatch(t *testing.T) {
	assert.Nil(t, FindDateByKeyword("sin fechas aquí", `vigencia\s+desde`))
}
