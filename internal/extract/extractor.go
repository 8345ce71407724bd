package extract

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/jmcarrillo/docuflow/internal/common"
)

// ExtractionResult is stage 1 output: normalized text plus how it was obtained.
type ExtractionResult struct {
	Text          string
	UsedOCR       bool
	OCRConfidence *float64 // mean word confidence in [0,1]; nil when unavailable
}

// TextExtractor is stage 1: file path -> normalized text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (ExtractionResult, error)
}

// OCREngine recognizes a full PDF. Implemented by internal/ocr.
type OCREngine interface {
	OCRPDF(ctx context.Context, path string) (text string, confidence *float64, err error)
}

// HybridExtractor tries the embedded text layer first and falls back to OCR
// only when the normalized embedded text is shorter than MinChars. Embedded
// text is cheap and exact; OCR is expensive and lossy.
type HybridExtractor struct {
	minChars int
	engine   OCREngine
	embedded func(path string) (string, error)
	logger   *slog.Logger
}

func NewHybridExtractor(minChars int, engine OCREngine, logger *slog.Logger) *HybridExtractor {
	if minChars <= 0 {
		minChars = 200
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HybridExtractor{
		minChars: minChars,
		engine:   engine,
		embedded: ReadEmbeddedText,
		logger:   logger,
	}
}

func (e *HybridExtractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	raw, err := e.embedded(path)
	if err != nil {
		return ExtractionResult{}, common.WrapError(common.ErrExtraction, "read embedded text", err)
	}

	text := Normalize(raw)
	if text != "" && utf8.RuneCountInString(text) >= e.minChars {
		e.logger.Debug("embedded text sufficient", "path", path, "chars", utf8.RuneCountInString(text))
		return ExtractionResult{Text: text, UsedOCR: false}, nil
	}

	e.logger.Info("embedded text insufficient, falling back to ocr",
		"path", path, "chars", utf8.RuneCountInString(text), "min_chars", e.minChars)

	ocrText, conf, err := e.engine.OCRPDF(ctx, path)
	if err != nil {
		return ExtractionResult{}, err
	}
	return ExtractionResult{Text: Normalize(ocrText), UsedOCR: true, OCRConfidence: conf}, nil
}
