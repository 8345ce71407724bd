package ocr

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmcarrillo/docuflow/internal/common"
)

// tesseractTSVConfidence runs tesseract in TSV mode and returns the mean word
// confidence in [0,1]. ok is false when the page has no confident words.
func (e *Engine) tesseractTSVConfidence(ctx context.Context, imagePath string) (float64, bool, error) {
	args := e.tesseractArgs(imagePath, "tsv")
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return 0, false, common.WrapError(common.ErrExtraction, "tesseract tsv", fmt.Errorf("%w: %s", err, string(errb)))
	}

	var sum float64
	var n int
	for i, ln := range strings.Split(string(out), "\n") {
		if i == 0 || ln == "" {
			continue // header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		// conf is the second-to-last column; -1 marks non-word rows
		confStr := cols[len(cols)-2]
		if confStr == "" || confStr == "-1" {
			continue
		}
		if v, perr := strconv.ParseFloat(confStr, 64); perr == nil {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false, nil
	}
	return sum / float64(n) / 100.0, true, nil
}
