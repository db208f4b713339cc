// Package extract pulls plain text out of uploaded resume files.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"go-hr-assistant/internal/domain"
)

// ErrNoText is returned when a PDF parses but has no extractable text layer,
// e.g. a scanned image. Callers treat it like any other extraction failure.
var ErrNoText = errors.New("no text found in document")

type pdfExtractor struct{}

func NewPDFExtractor() domain.ResumeExtractor {
	return pdfExtractor{}
}

// Text concatenates the plain text of every page.
func (pdfExtractor) Text(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
	}

	if strings.TrimSpace(b.String()) == "" {
		return "", ErrNoText
	}
	return b.String(), nil
}
