package extract

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcarrillo/docuflow/internal/common"
)

type fakeEngine struct {
	text  string
	conf  *float64
	err   error
	calls int
}

func (f *fakeEngine) OCRPDF(_ context.Context, _ string) (string, *float64, error) {
	f.calls++
	return f.text, f.conf, f.err
}

func newTestExtractor(embedded string, embeddedErr error, engine *fakeEngine) *HybridExtractor {
	e := NewHybridExtractor(200, engine, nil)
	e.embedded = func(string) (string, error) {
		return embedded, embeddedErr
	}
	return e
}

func TestExtractUsesEmbeddedWhenSufficient(t *testing.T) {
	engine := &fakeEngine{text: "nunca"}
	long := strings.Repeat("texto del contrato ", 20) // well over 200 runes
	e := newTestExtractor(long, nil, engine)

	res, err := e.Extract(context.Background(), "doc.pdf")
	require.NoError(t, err)
	assert.False(t, res.UsedOCR)
	assert.Nil(t, res.OCRConfidence)
	assert.Equal(t, Normalize(long), res.Text)
	assert.Zero(t, engine.calls)
}

func TestExtractFallsBackOnShortEmbeddedText(t *testing.T) {
	conf := 0.91
	engine := &fakeEngine{text: "texto reconocido por ocr", conf: &conf}
	e := newTestExtractor("muy corto", nil, engine)

	res, err := e.Extract(context.Background(), "doc.pdf")
	require.NoError(t, err)
	assert.True(t, res.UsedOCR)
	assert.Equal(t, "texto reconocido por ocr", res.Text)
	require.NotNil(t, res.OCRConfidence)
	assert.InDelta(t, 0.91, *res.OCRConfidence, 1e-9)
	assert.Equal(t, 1, engine.calls)
}

func TestExtractFallsBackOnEmptyEmbeddedText(t *testing.T) {
	engine := &fakeEngine{text: "algo"}
	e := newTestExtractor("", nil, engine)

	res, err := e.Extract(context.Background(), "doc.pdf")
	require.NoError(t, err)
	assert.True(t, res.UsedOCR)
}

func TestExtractBoundaryExactlyMinChars(t *testing.T) {
	engine := &fakeEngine{}
	// 200 runes exactly, no fallback
	text := strings.Repeat("áé", 100)
	e := newTestExtractor(text, nil, engine)

	res, err := e.Extract(context.Background(), "doc.pdf")
	require.NoError(t, err)
	assert.False(t, res.UsedOCR)
	assert.Zero(t, engine.calls)
}

func TestExtractWrapsEmbeddedReadError(t *testing.T) {
	engine := &fakeEngine{}
	e := newTestExtractor("", errors.New("boom"), engine)

	_, err := e.Extract(context.Background(), "doc.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtraction)
	assert.Zero(t, engine.calls)
}

func TestExtractPropagatesOCRError(t *testing.T) {
	engine := &fakeEngine{err: common.WrapError(common.ErrConfig, "ocr", errors.New("tessdata missing"))}
	e := newTestExtractor("corto", nil, engine)

	_, err := e.Extract(context.Background(), "doc.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConfig)
}

func TestExtractNormalizesOCROutput(t *testing.T) {
	engine := &fakeEngine{text: "uno\r\n\r\n\r\ndos   tres"}
	e := newTestExtractor("", nil, engine)

	res, err := e.Extract(context.Background(), "doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "uno\n\ndos tres", res.Text)
}
