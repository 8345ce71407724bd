package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ReadEmbeddedText pulls the embedded text layer out of a PDF, page by page,
// joined with newlines. Scanned PDFs typically yield little or nothing here.
func ReadEmbeddedText(path string) (text string, err error) {
	// the pdf reader panics on some malformed xref tables
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decode pdf: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	parts := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			parts = append(parts, "")
			continue
		}
		txt, perr := page.GetPlainText(nil)
		if perr != nil {
			parts = append(parts, "")
			continue
		}
		parts = append(parts, txt)
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}
