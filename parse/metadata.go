package parse

import (
	"strings"
	"unicode"
)

// metadata holds the document-level fields discovered outside the table
// grid: the semester string and the student's name and id.
type metadata struct {
	semester    string
	studentName string
	studentID   string
}

// extractMetadata scans every line for the semester string and the student
// name/id. It never fails; a field that cannot be found stays empty. Once a
// field is non-empty it is not overwritten by a later, weaker match.
func extractMetadata(lines []string) metadata {
	var m metadata

	for i, line := range lines {
		if m.semester == "" && strings.Contains(line, labelAcademicYear) && strings.Contains(line, labelTerm) {
			m.semester = extractSemester(line)
		}

		if m.studentName == "" && strings.Contains(line, labelScheduleOf) {
			m.studentName = extractName(line)
		}

		if strings.Contains(line, labelStudentID+"：") || strings.Contains(line, labelStudentID+":") {
			if m.studentID == "" {
				m.studentID = extractStudentID(line)
			}
			// The name usually shares the id line; when it doesn't, it sits
			// on the line directly above.
			if m.studentName == "" && i > 0 && strings.Contains(lines[i-1], labelScheduleOf) {
				m.studentName = extractName(lines[i-1])
			}
		}
	}

	return m
}

// extractSemester pulls a span like "2025-2026学年第1学期" out of a line:
// from the first digit through the trailing 学期 token, inclusive.
func extractSemester(line string) string {
	start := strings.IndexFunc(line, unicode.IsDigit)
	if start < 0 {
		return ""
	}
	rest := line[start:]
	end := strings.Index(rest, labelTerm)
	if end < 0 {
		return ""
	}
	return rest[:end+len(labelTerm)]
}

// extractStudentID reads the digit run following the student-id label,
// e.g. "学号：252712004". The print template uses a full-width colon, so
// the first byte of the id sits three bytes past the colon index.
func extractStudentID(line string) string {
	idx := strings.Index(line, labelStudentID)
	if idx < 0 {
		return ""
	}
	colon := strings.IndexAny(line[idx:], "：:")
	if colon < 0 {
		return ""
	}
	start := idx + colon + 3
	if start >= len(line) {
		return ""
	}

	var id strings.Builder
	for _, r := range line[start:] {
		if r < '0' || r > '9' {
			break
		}
		id.WriteRune(r)
	}
	return id.String()
}

// extractName takes the student's name from a line like "都书锐课表 学号：…":
// within the text before the 课表 token, skip leading non-CJK characters and
// keep the first maximal run of CJK ideographs.
func extractName(line string) string {
	pos := strings.Index(line, labelScheduleOf)
	if pos < 0 {
		return ""
	}

	var name strings.Builder
	inRun := false
	for _, r := range line[:pos] {
		if isCJK(r) {
			name.WriteRune(r)
			inRun = true
			continue
		}
		if inRun {
			break
		}
	}
	return name.String()
}

// isCJK reports whether r is a CJK ideograph (U+4E00..U+9FFF), the range
// used for Chinese names.
func isCJK(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}
