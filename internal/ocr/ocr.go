package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jmcarrillo/docuflow/internal/common"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"

	TessdataDir string // required at OCR time; missing dir is a fatal config error
	Language    string // default "spa+eng"
	DPI         int    // rasterization DPI, default 300
	PSM         int    // 6 = uniform block of text, works well on contracts/POs
	OEM         int    // 1 = LSTM
	MaxPages    int    // 0 = no limit

	BinarizeThreshold int // page binarization cutoff 0-255, default 160

	Timeout       time.Duration // bound on a whole-document OCR run, default 2m
	TSVConfidence bool          // compute mean word confidence from tesseract TSV
}

// Engine rasterizes a PDF with pdftoppm, preprocesses each page image and runs
// tesseract per page. Page order is preserved in the concatenated output.
type Engine struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Language == "" {
		cfg.Language = "spa+eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.PSM <= 0 {
		cfg.PSM = 6
	}
	if cfg.OEM <= 0 {
		cfg.OEM = 1
	}
	if cfg.BinarizeThreshold <= 0 {
		cfg.BinarizeThreshold = 160
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	return &Engine{cfg: cfg, runner: execRunner{}, logger: logger}
}

// OCRPDF recognizes every page of the PDF at path. The returned confidence is
// the mean tesseract word confidence across pages in [0,1], nil when TSV
// confidence is disabled or tesseract reports no words.
func (e *Engine) OCRPDF(ctx context.Context, path string) (string, *float64, error) {
	if err := e.checkConfig(); err != nil {
		return "", nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	tmpDir, err := os.MkdirTemp("", "docuflow-pp-*")
	if err != nil {
		return "", nil, common.WrapError(common.ErrExtraction, "ocr tempdir", err)
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			e.logger.Warn("failed to remove ocr temp dir", "dir", tmpDir, "error", rerr)
		}
	}()

	pages, err := e.rasterize(ctx, path, tmpDir)
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	var confSum float64
	var confPages int
	for i, page := range pages {
		processed, perr := preprocessPage(page, e.cfg.BinarizeThreshold)
		if perr != nil {
			return "", nil, common.WrapError(common.ErrExtraction, "preprocess page", perr)
		}

		txt, terr := e.tesseract(ctx, processed)
		if terr != nil {
			return "", nil, terr
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(txt)

		if e.cfg.TSVConfidence {
			if c, ok, cerr := e.tesseractTSVConfidence(ctx, processed); cerr != nil {
				e.logger.Warn("tsv confidence failed", "page", page, "error", cerr)
			} else if ok {
				confSum += c
				confPages++
			}
		}
	}

	var conf *float64
	if confPages > 0 {
		mean := confSum / float64(confPages)
		conf = &mean
	}
	e.logger.Info("ocr complete", "path", path, "pages", len(pages), "bytes", b.Len())
	return b.String(), conf, nil
}

func (e *Engine) checkConfig() error {
	if e.cfg.TessdataDir == "" {
		return common.WrapError(common.ErrConfig, "ocr", fmt.Errorf("tessdata dir is not set"))
	}
	if fi, err := os.Stat(e.cfg.TessdataDir); err != nil || !fi.IsDir() {
		return common.WrapError(common.ErrConfig, "ocr", fmt.Errorf("tessdata dir %q does not exist", e.cfg.TessdataDir))
	}
	return nil
}

// rasterize renders the PDF into page PNGs under tmpDir and returns their
// paths in page order. pdftoppm zero-pads page numbers, so a lexicographic
// sort preserves order.
func (e *Engine) rasterize(ctx context.Context, path, tmpDir string) ([]string, error) {
	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", strconv.Itoa(e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return nil, common.WrapError(common.ErrExtraction, "pdftoppm", fmt.Errorf("%w: %s", err, string(errb)))
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, common.WrapError(common.ErrExtraction, "pdftoppm", fmt.Errorf("no pages rendered"))
	}
	return matches, nil
}

func (e *Engine) tesseract(ctx context.Context, imagePath string) (string, error) {
	args := e.tesseractArgs(imagePath)
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", common.WrapError(common.ErrExtraction, "tesseract", fmt.Errorf("%w: %s", err, string(errb)))
	}
	return string(out), nil
}

func (e *Engine) tesseractArgs(imagePath string, extra ...string) []string {
	args := []string{
		imagePath, "stdout",
		"-l", e.cfg.Language,
		"--tessdata-dir", e.cfg.TessdataDir,
		"--psm", strconv.Itoa(e.cfg.PSM),
		"--oem", strconv.Itoa(e.cfg.OEM),
	}
	return append(args, extra...)
}
