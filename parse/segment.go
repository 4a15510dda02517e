package parse

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// The print layout flattens the timetable grid into a line stream: a
// period marker, then one course cell per weekday for that period, always
// Monday through Sunday, with no day label on the cells themselves.
// Sequence position is the only signal for the day axis.

// block is one course cell reconstructed from consecutive lines.
type block struct {
	day     int    // 1-7, Monday=1
	section int    // period the cell belongs to
	text    string // name line plus metadata lines, newline-joined
}

// segState is the state of the line scanner.
type segState int

const (
	scanning segState = iota // looking for markers and block starts
	inBlock                  // collecting a course cell's lines
)

// dayCounter assigns weekday indexes to course blocks by arrival order:
// the Nth block collected since the last period marker belongs to weekday
// ((N-1) mod 7) + 1. It is reset at every period marker.
type dayCounter struct {
	n int
}

func (d *dayCounter) next() int {
	day := d.n%daysPerWeek + 1
	d.n++
	return day
}

func (d *dayCounter) reset() {
	d.n = 0
}

// segment walks the lines after the weekday header and reconstructs the
// ordered (day, section, text) triples the grid encodes by position. The
// ambient period starts at zero and is only moved by in-range period
// markers; blocks are flushed with the period that was in effect while
// they were collected.
func segment(lines []string) []block {
	var (
		out     []block
		pending []block  // cells of the current ambient period
		cur     []string // lines of the cell being collected
		days    dayCounter
		section int
		state   = scanning
	)

	flush := func() {
		for _, b := range pending {
			b.section = section
			out = append(out, b)
		}
		pending = pending[:0]
		days.reset()
	}

	endBlock := func() {
		if len(cur) > 0 {
			pending = append(pending, block{day: days.next(), text: strings.Join(cur, "\n")})
			cur = nil
		}
		state = scanning
	}

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		switch state {
		case scanning:
			switch {
			case line == "" || isNoise(line):
				// skip
			case isPeriodMarker(line):
				flush()
				if n, ok := parseSection(line); ok {
					section = n
				}
			case isCourseStart(line):
				cur = []string{line}
				state = inBlock
			default:
				// unrecognized filler
			}
			i++

		case inBlock:
			switch {
			case line == "":
				// blanks inside a cell do not end it
				i++
			case hasCourseGlyph(line) || isPeriodMarker(line) || isTimeOfDay(line):
				// terminator; reclassified by the scanning state
				endBlock()
			default:
				cur = append(cur, line)
				i++
			}
		}
	}

	endBlock()
	flush()
	return out
}

// isNoise reports whether the line carries no course content.
func isNoise(line string) bool {
	for _, tok := range noiseTokens {
		if strings.Contains(line, tok) {
			return true
		}
	}
	return false
}

// isTimeOfDay reports whether the line holds one of the time-of-day
// bracket labels that terminate an open block.
func isTimeOfDay(line string) bool {
	for _, tok := range timeOfDayTokens {
		if strings.Contains(line, tok) {
			return true
		}
	}
	return false
}

// isPeriodMarker reports whether the line has the period-marker shape: at
// most three characters, all of them numeric. "12节" is not a marker.
func isPeriodMarker(line string) bool {
	if line == "" || utf8.RuneCountInString(line) > 3 {
		return false
	}
	for _, r := range line {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// hasCourseGlyph reports whether the line contains either course-leading
// glyph.
func hasCourseGlyph(line string) bool {
	return strings.Contains(line, glyphStar) || strings.Contains(line, glyphTriangle)
}

// isCourseStart reports whether the line opens a course cell: it carries a
// course glyph and is not a theory-hour annotation.
func isCourseStart(line string) bool {
	return hasCourseGlyph(line) && !strings.Contains(line, theoryAnnotation)
}

// parseSection parses a period or section number, accepting only the valid
// 1-12 range. Full-width digits, which CJK PDF text frequently contains,
// are folded to ASCII first.
func parseSection(s string) (int, bool) {
	n, err := strconv.Atoi(width.Narrow.String(strings.TrimSpace(s)))
	if err != nil || n < minSection || n > maxSection {
		return 0, false
	}
	return n, true
}
