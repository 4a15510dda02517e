package kebiao

import (
	"fmt"
	"strings"
)

// WarningType classifies a non-fatal condition encountered while reading
// or parsing a document.
type WarningType string

const (
	// WarnPageSkipped means a page could not be read or decoded and was
	// left out of the text stream.
	WarnPageSkipped WarningType = "page-skipped"

	// WarnNoCourses means the parsed document yielded no course entries,
	// typically because the weekday header run was not found.
	WarnNoCourses WarningType = "no-courses"
)

// Warning describes a non-fatal condition. Extraction succeeded but the
// result may be incomplete.
type Warning struct {
	Type    WarningType
	Message string
}

// String returns a human-readable form of the warning.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Type, w.Message)
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
