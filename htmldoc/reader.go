// Package htmldoc provides visible-text extraction from HTML timetable
// exports.
//
// Academic portals that print the schedule PDF usually offer the same
// timetable as an HTML page. The schedule parser works on a flat line
// stream, so this reader flattens the document to its visible text nodes
// in document order: each non-blank text node becomes one line, which
// matches the reading-order stream a PDF page yields for the same grid.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Reader provides access to the visible text of an HTML document.
type Reader struct {
	title string
	lines []string
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{}
	reader.extractTitle(doc)
	reader.collectText(doc)

	return reader, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Title returns the document title, if any.
func (r *Reader) Title() string {
	return r.title
}

// Lines returns the visible text lines in document order.
func (r *Reader) Lines() []string {
	return r.lines
}

// Text returns the visible text, one text node per line.
func (r *Reader) Text() string {
	return strings.Join(r.lines, "\n")
}

// extractTitle finds the title element in the document head.
func (r *Reader) extractTitle(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "title" {
		r.title = strings.TrimSpace(textContent(n))
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if r.title == "" {
			r.extractTitle(c)
		}
	}
}

// collectText walks the DOM and appends each non-blank text node as a line.
func (r *Reader) collectText(n *html.Node) {
	if n.Type == html.ElementNode && shouldSkipElement(n.Data) {
		return
	}
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			r.lines = append(r.lines, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.collectText(c)
	}
}

// shouldSkipElement reports whether an element never contributes visible
// text.
func shouldSkipElement(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "iframe", "head", "template":
		return true
	}
	return false
}

// textContent returns the concatenated text of a node's subtree.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
