package ocr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedOutputRunner struct {
	out []byte
	err error
}

func (r fixedOutputRunner) Run(_ context.Context, _ string, _ ...string) ([]byte, []byte, error) {
	return r.out, nil, r.err
}

func confidenceEngine(t *testing.T, out string) *Engine {
	t.Helper()
	e := NewEngine(Config{TessdataDir: t.TempDir(), TSVConfidence: true}, nil)
	e.runner = fixedOutputRunner{out: []byte(out)}
	return e
}

const tsvHeader = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n"

func TestTSVConfidenceMean(t *testing.T) {
	e := confidenceEngine(t, tsvHeader+
		"5\t1\t1\t1\t1\t1\t0\t0\t5\t5\t95\tcontrato\n"+
		"5\t1\t1\t1\t1\t2\t0\t0\t5\t5\t85\tde\n"+
		"5\t1\t1\t1\t1\t3\t0\t0\t5\t5\t75\tobra\n")
	c, ok, err := e.tesseractTSVConfidence(context.Background(), "p.png")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 0.85, c, 1e-9)
}

func TestTSVConfidenceSkipsNonWordRows(t *testing.T) {
	e := confidenceEngine(t, tsvHeader+
		"2\t1\t1\t0\t0\t0\t0\t0\t5\t5\t-1\t\n"+
		"5\t1\t1\t1\t1\t1\t0\t0\t5\t5\t60\thola\n")
	c, ok, err := e.tesseractTSVConfidence(context.Background(), "p.png")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 0.60, c, 1e-9)
}

func TestTSVConfidenceNoWords(t *testing.T) {
	e := confidenceEngine(t, tsvHeader+
		"1\t1\t0\t0\t0\t0\t0\t0\t5\t5\t-1\t\n")
	_, ok, err := e.tesseractTSVConfidence(context.Background(), "p.png")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTSVConfidenceIgnoresMalformedLines(t *testing.T) {
	e := confidenceEngine(t, tsvHeader+
		"garbage line without tabs\n"+
		"5\t1\t1\t1\t1\t1\t0\t0\t5\t5\t50\tuno\n")
	c, ok, err := e.tesseractTSVConfidence(context.Background(), "p.png")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 0.50, c, 1e-9)
}
