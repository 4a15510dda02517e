// Package pdfdoc provides page-level plain text access to PDF documents.
//
// The schedule parser only needs "given a page index, return its text or
// fail"; pdfdoc wraps github.com/ledongthuc/pdf to provide exactly that.
// The container-level details of the PDF (fonts, content streams, layout
// coordinates) stay behind this boundary.
package pdfdoc

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// Reader provides page-indexed plain text from a PDF file.
type Reader struct {
	f *os.File
	r *pdf.Reader

	// fonts caches parsed font resources across pages; the print template
	// reuses the same fonts on every page.
	fonts map[string]*pdf.Font
}

// Open opens a PDF file for page-text access. The returned Reader must be
// closed when done.
func Open(filename string) (*Reader, error) {
	f, r, err := pdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	return &Reader{
		f:     f,
		r:     r,
		fonts: make(map[string]*pdf.Font),
	}, nil
}

// Close releases the underlying file handle. It is safe to call Close
// multiple times.
func (r *Reader) Close() error {
	if r.f == nil {
		return nil
	}
	err := r.f.Close()
	r.f = nil
	return err
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() (int, error) {
	return r.r.NumPage(), nil
}

// PageText returns the plain text of the given page (1-based). It fails
// for pages outside the document or pages whose content cannot be decoded;
// callers are expected to skip such pages.
func (r *Reader) PageText(page int) (string, error) {
	if page < 1 || page > r.r.NumPage() {
		return "", fmt.Errorf("page %d out of range (1-%d)", page, r.r.NumPage())
	}

	p := r.r.Page(page)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d has no content", page)
	}

	for _, name := range p.Fonts() {
		if _, ok := r.fonts[name]; !ok {
			font := p.Font(name)
			r.fonts[name] = &font
		}
	}

	text, err := p.GetPlainText(r.fonts)
	if err != nil {
		return "", fmt.Errorf("extracting page %d: %w", page, err)
	}
	return text, nil
}
