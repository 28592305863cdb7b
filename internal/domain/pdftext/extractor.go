// Package pdftext extracts per-page plain text from PDF bytes. It is the
// boundary adapter in front of the extract package: scheduling reports are
// uploaded as PDFs, but everything downstream works on text lines.
//
// Extraction uses ledongthuc/pdf, a pure Go reader, so there is no CGO or
// external binary involved.
package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNotPDF indicates the input bytes are not a PDF document.
var ErrNotPDF = errors.New("pdftext: input is not a PDF document")

// Page holds the extracted text of a single PDF page.
type Page struct {
	Number int    // 1-based page number
	Text   string // extracted plain text, trimmed; empty when extraction failed
}

// Document is the per-page extraction result for one PDF.
type Document struct {
	Pages     []Page
	PageCount int
	// Warnings lists pages whose text extraction failed (image-only pages,
	// malformed content streams). Extraction of the remaining pages proceeds.
	Warnings []string
}

// Validate checks the PDF magic bytes.
func Validate(data []byte) bool {
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}

// Extract pulls plain text from every page of the PDF. A page that cannot
// yield text produces an empty Page entry and a warning rather than failing
// the document.
func Extract(data []byte) (*Document, error) {
	if !Validate(data) {
		return nil, ErrNotPDF
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("pdftext: open: %w", err)
	}

	doc := &Document{PageCount: reader.NumPage()}
	doc.Pages = make([]Page, 0, doc.PageCount)

	for i := 1; i <= doc.PageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, Page{Number: i})
			doc.Warnings = append(doc.Warnings, fmt.Sprintf("page %d: missing page object", i))
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			doc.Pages = append(doc.Pages, Page{Number: i})
			doc.Warnings = append(doc.Warnings, fmt.Sprintf("page %d: text extraction failed: %v", i, err))
			continue
		}

		doc.Pages = append(doc.Pages, Page{Number: i, Text: strings.TrimSpace(text)})
	}

	return doc, nil
}

// Text joins all page texts in order, separated by newlines.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, p := range d.Pages {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// PageTexts returns the page texts in page order.
func (d *Document) PageTexts() []string {
	texts := make([]string, len(d.Pages))
	for i, p := range d.Pages {
		texts[i] = p.Text
	}
	return texts
}

// Lines splits the joined document text into trimmed-right lines.
func (d *Document) Lines() []string {
	lines := strings.Split(d.Text(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \r")
	}
	return lines
}
