package ocr

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcarrillo/docuflow/internal/common"
)

// stubRunner fakes pdftoppm and tesseract. pdftoppm writes real PNGs so the
// preprocessing step has pixels to chew on.
type stubRunner struct {
	pages     int
	tsvOutput string
	calls     []string
}

func (r *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.calls = append(r.calls, name+" "+strings.Join(args, " "))
	if strings.Contains(name, "pdftoppm") {
		prefix := args[len(args)-1]
		for i := 1; i <= r.pages; i++ {
			if err := writeTestPNG(fmt.Sprintf("%s-%02d.png", prefix, i)); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	}
	// tesseract
	imagePath := args[0]
	if args[len(args)-1] == "tsv" {
		return []byte(r.tsvOutput), nil, nil
	}
	base := filepath.Base(imagePath)
	return []byte("texto de " + strings.TrimSuffix(base, ".pp.png")), nil, nil
}

func writeTestPNG(path string) error {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(x * 30)})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func newTestEngine(t *testing.T, runner Runner, tsv bool) *Engine {
	t.Helper()
	e := NewEngine(Config{
		TessdataDir:   t.TempDir(),
		TSVConfidence: tsv,
	}, nil)
	e.runner = runner
	return e
}

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine(Config{}, nil)
	assert.Equal(t, "tesseract", e.cfg.Tesseract)
	assert.Equal(t, "pdftoppm", e.cfg.Pdftoppm)
	assert.Equal(t, "spa+eng", e.cfg.Language)
	assert.Equal(t, 300, e.cfg.DPI)
	assert.Equal(t, 6, e.cfg.PSM)
	assert.Equal(t, 1, e.cfg.OEM)
	assert.Equal(t, 160, e.cfg.BinarizeThreshold)
	assert.Equal(t, 2*time.Minute, e.cfg.Timeout)
}

func TestOCRPDFMissingTessdataIsConfigError(t *testing.T) {
	e := NewEngine(Config{TessdataDir: "/definitely/not/a/dir"}, nil)
	_, _, err := e.OCRPDF(context.Background(), "doc.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConfig)

	e = NewEngine(Config{}, nil)
	_, _, err = e.OCRPDF(context.Background(), "doc.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConfig)
}

func TestOCRPDFJoinsPagesInOrder(t *testing.T) {
	runner := &stubRunner{pages: 3}
	e := newTestEngine(t, runner, false)

	text, conf, err := e.OCRPDF(context.Background(), "doc.pdf")
	require.NoError(t, err)
	assert.Nil(t, conf)

	lines := strings.Split(text, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "texto de page-01", lines[0])
	assert.Equal(t, "texto de page-02", lines[1])
	assert.Equal(t, "texto de page-03", lines[2])
}

func TestOCRPDFNoPagesRendered(t *testing.T) {
	runner := &stubRunner{pages: 0}
	e := newTestEngine(t, runner, false)

	_, _, err := e.OCRPDF(context.Background(), "doc.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtraction)
}

func TestOCRPDFMaxPagesCap(t *testing.T) {
	runner := &stubRunner{pages: 4}
	e := newTestEngine(t, runner, false)
	e.cfg.MaxPages = 2

	text, _, err := e.OCRPDF(context.Background(), "doc.pdf")
	require.NoError(t, err)
	assert.Len(t, strings.Split(text, "\n"), 2)
}

func TestOCRPDFMeanConfidenceAcrossPages(t *testing.T) {
	tsv := "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
		"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t90\thola\n" +
		"5\t1\t1\t1\t1\t2\t0\t0\t10\t10\t70\tmundo\n"
	runner := &stubRunner{pages: 2, tsvOutput: tsv}
	e := newTestEngine(t, runner, true)

	_, conf, err := e.OCRPDF(context.Background(), "doc.pdf")
	require.NoError(t, err)
	require.NotNil(t, conf)
	assert.InDelta(t, 0.80, *conf, 1e-9)
}

func TestTesseractArgs(t *testing.T) {
	e := NewEngine(Config{TessdataDir: "/opt/tessdata"}, nil)
	args := e.tesseractArgs("/tmp/page-01.png")
	assert.Equal(t, []string{
		"/tmp/page-01.png", "stdout",
		"-l", "spa+eng",
		"--tessdata-dir", "/opt/tessdata",
		"--psm", "6",
		"--oem", "1",
	}, args)

	tsvArgs := e.tesseractArgs("/tmp/page-01.png", "tsv")
	assert.Equal(t, "tsv", tsvArgs[len(tsvArgs)-1])
}
