// Package kebiao provides a fluent API for turning personal course-schedule
// documents (PDF exports, HTML exports, or screenshots) into structured
// schedules.
//
// Basic usage:
//
//	sched, warnings, err := kebiao.Open("schedule.pdf").Schedule()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", kebiao.FormatWarnings(warnings))
//	}
//
// With options:
//
//	sched, _, err := kebiao.Open("schedule.pdf").
//	    MaxPages(5).
//	    Schedule()
//
// Text that was extracted elsewhere can be parsed directly:
//
//	sched, _, err := kebiao.FromText(text).Schedule()
//
// For advanced use cases, the lower-level parse, pdfdoc and htmldoc
// packages are also available.
package kebiao

// PageTextProvider supplies per-page plain text for a paged document.
// Pages are 1-based. pdfdoc.Reader implements this interface.
type PageTextProvider interface {
	// PageCount returns the number of pages in the document.
	PageCount() (int, error)
	// PageText returns the plain text of the given page, or fails when
	// the page is out of range or cannot be decoded.
	PageText(page int) (string, error)
}

// Open opens a timetable document and returns an Extractor for fluent
// configuration. The format (PDF, HTML, or image) is detected when the
// first terminal operation runs. The returned Extractor is closed
// implicitly by terminal operations like Schedule().
//
// Example:
//
//	sched, warnings, err := kebiao.Open("schedule.pdf").Schedule()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromText creates an Extractor over already-extracted document text.
// This is useful when the page text comes from another extraction stack;
// only the parsing stages run.
//
// Example:
//
//	sched, _, err := kebiao.FromText(text).Schedule()
func FromText(text string) *Extractor {
	return &Extractor{
		text:     text,
		haveText: true,
		options:  defaultOptions(),
	}
}

// FromProvider creates an Extractor from an already-opened page-text
// provider. The caller is responsible for closing the provider.
//
// Example:
//
//	r, err := pdfdoc.Open("schedule.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	sched, _, err := kebiao.FromProvider(r).Schedule()
func FromProvider(p PageTextProvider) *Extractor {
	return &Extractor{
		provider: p,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustSchedule is a helper that wraps a call to Schedule() or Text() and
// panics if the error is non-nil. It discards warnings and returns just
// the value.
//
// Example:
//
//	sched := kebiao.MustSchedule(kebiao.Open("schedule.pdf").Schedule())
func MustSchedule[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
