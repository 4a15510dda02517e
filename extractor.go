package kebiao

import (
	"fmt"
	"strings"

	"github.com/schedtools/kebiao/format"
	"github.com/schedtools/kebiao/htmldoc"
	"github.com/schedtools/kebiao/ocr"
	"github.com/schedtools/kebiao/parse"
	"github.com/schedtools/kebiao/pdfdoc"
	"github.com/schedtools/kebiao/schedule"
)

// Extractor extracts a course schedule from a document. Configuration
// methods return a new Extractor, so a configured Extractor can be shared
// and further specialized without affecting earlier references. Terminal
// operations (Text, Schedule) run the pipeline and release any source the
// Extractor opened itself.
type Extractor struct {
	filename string
	provider PageTextProvider
	text     string
	haveText bool
	options  ExtractOptions
	err      error
}

// clone creates a copy of the Extractor with the same source and a copied
// option set. The underlying source is shared, not reopened.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		provider: e.provider,
		text:     e.text,
		haveText: e.haveText,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// MaxPages bounds the page scan for paged documents. Pages beyond n are
// not read. Values below 1 are ignored. The default is DefaultMaxPages.
func (e *Extractor) MaxPages(n int) *Extractor {
	ne := e.clone()
	if n >= 1 {
		ne.options.maxPages = n
	}
	return ne
}

// OCRLanguages sets the Tesseract language string used for image sources,
// for example "chi_sim+eng". It has no effect on PDF or HTML sources.
func (e *Extractor) OCRLanguages(lang string) *Extractor {
	ne := e.clone()
	ne.options.ocrLanguages = lang
	return ne
}

// Text extracts the document's flattened reading-order text without
// parsing it. Pages that cannot be decoded are skipped with a warning.
func (e *Extractor) Text() (string, []Warning, error) {
	if e.err != nil {
		return "", nil, e.err
	}
	return e.collectText()
}

// Schedule extracts the document text and parses it into a structured
// course schedule. A schedule with no courses is not an error; it is
// reported through a warning so callers can distinguish an unreadable
// document from one with an empty or unrecognized grid.
func (e *Extractor) Schedule() (*schedule.CourseSchedule, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	text, warnings, err := e.collectText()
	if err != nil {
		return nil, warnings, err
	}

	sched := parse.Text(text)
	if len(sched.Courses) == 0 {
		warnings = append(warnings, Warning{
			Type:    WarnNoCourses,
			Message: "no course entries recognized; the weekday header may be missing",
		})
	}
	return sched, warnings, nil
}

// collectText resolves the source to flattened text. Sources opened by
// the Extractor itself are closed before returning.
func (e *Extractor) collectText() (string, []Warning, error) {
	if e.haveText {
		return e.text, nil, nil
	}

	if e.provider != nil {
		return pagedText(e.provider, e.options.maxPages)
	}

	f, err := format.DetectFile(e.filename)
	if err != nil {
		return "", nil, fmt.Errorf("detecting format of %s: %w", e.filename, err)
	}

	switch {
	case f == format.PDF:
		r, err := pdfdoc.Open(e.filename)
		if err != nil {
			return "", nil, fmt.Errorf("opening PDF %s: %w", e.filename, err)
		}
		defer r.Close()
		return pagedText(r, e.options.maxPages)

	case f == format.HTML:
		r, err := htmldoc.Open(e.filename)
		if err != nil {
			return "", nil, fmt.Errorf("opening HTML %s: %w", e.filename, err)
		}
		defer r.Close()
		return r.Text(), nil, nil

	case f.Image():
		return e.imageText()

	default:
		return "", nil, fmt.Errorf("unsupported document format for %s", e.filename)
	}
}

// imageText runs OCR over an image source. When the module was built
// without the ocr tag this fails with ocr.ErrOCRNotEnabled.
func (e *Extractor) imageText() (string, []Warning, error) {
	client, err := ocr.New()
	if err != nil {
		return "", nil, fmt.Errorf("initializing OCR: %w", err)
	}
	defer client.Close()

	if e.options.ocrLanguages != "" {
		if err := client.SetLanguage(e.options.ocrLanguages); err != nil {
			return "", nil, fmt.Errorf("setting OCR languages: %w", err)
		}
	}

	text, err := client.RecognizeFile(e.filename)
	if err != nil {
		return "", nil, fmt.Errorf("recognizing %s: %w", e.filename, err)
	}
	return text, nil, nil
}

// pagedText concatenates page text from a provider, scanning at most
// maxPages pages. Pages that fail to decode are skipped with a warning;
// blank pages are skipped silently.
func pagedText(p PageTextProvider, maxPages int) (string, []Warning, error) {
	count, err := p.PageCount()
	if err != nil {
		return "", nil, fmt.Errorf("counting pages: %w", err)
	}
	if count > maxPages {
		count = maxPages
	}

	var sb strings.Builder
	var warnings []Warning
	for page := 1; page <= count; page++ {
		text, err := p.PageText(page)
		if err != nil {
			warnings = append(warnings, Warning{
				Type:    WarnPageSkipped,
				Message: fmt.Sprintf("page %d: %v", page, err),
			})
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		sb.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			sb.WriteByte('\n')
		}
	}
	return sb.String(), warnings, nil
}
