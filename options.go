package kebiao

// ExtractOptions holds configuration for schedule extraction.
type ExtractOptions struct {
	// maxPages bounds the page scan on paged documents (1..maxPages).
	// Timetable exports are one or two pages; the bound keeps a stray
	// many-page document from being read end to end.
	maxPages int

	// ocrLanguages is the Tesseract language string for image sources.
	ocrLanguages string
}

// DefaultMaxPages is the default page-scan bound.
const DefaultMaxPages = 10

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		maxPages:     DefaultMaxPages,
		ocrLanguages: "", // empty means the ocr package default
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		maxPages:     o.maxPages,
		ocrLanguages: o.ocrLanguages,
	}
}
