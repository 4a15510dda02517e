package parse

import (
	"strings"

	"github.com/schedtools/kebiao/schedule"
)

// glyphStripper removes the course-leading glyphs from a name line.
var glyphStripper = strings.NewReplacer(glyphStar, "", glyphTriangle, "")

// A fieldRule extracts one labeled field from a metadata line. apply
// reports whether the line matched; a rule that has matched once is not
// applied again within the same block, so the first matching line wins and
// later lines never overwrite a field.
type fieldRule struct {
	name  string
	apply func(line string, c *schedule.Course) bool
}

func blockRules() []fieldRule {
	return []fieldRule{
		{name: "sections", apply: applySections},
		{name: "teacher", apply: func(line string, c *schedule.Course) bool {
			return applyLabeled(line, labelTeacher, &c.Teacher)
		}},
		{name: "venue", apply: func(line string, c *schedule.Course) bool {
			return applyLabeled(line, labelVenue, &c.Location)
		}},
	}
}

// parseBlock turns one assembled course block into a Course. The first
// line carries the name; the remaining lines are scanned by the field
// rules independently of their order. ok is false when the name line is
// empty once the glyphs and surrounding whitespace are stripped, in which
// case the block produces no Course.
func parseBlock(text string, day, section int) (schedule.Course, bool) {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return schedule.Course{}, false
	}

	name := strings.TrimSpace(glyphStripper.Replace(lines[0]))
	if name == "" {
		return schedule.Course{}, false
	}

	c := schedule.Course{
		Name:         name,
		DayOfWeek:    day,
		StartSection: section,
		EndSection:   section,
	}

	rules := blockRules()
	done := make([]bool, len(rules))
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		for i, rule := range rules {
			if done[i] {
				continue
			}
			if rule.apply(line, &c) {
				done[i] = true
			}
		}
	}

	return c, true
}

// applySections extracts the parenthesized period segment and the weeks
// span that follows it, e.g. "(1-2节)6周,11周/教师: …". The span between
// the opening delimiter and the period-unit glyph becomes TimeSlot; its
// dash-separated halves become StartSection and EndSection when they parse
// as valid section numbers, and keep the ambient defaults otherwise. The
// text after the closing delimiter, cut at the first slash, becomes Weeks.
func applySections(line string, c *schedule.Course) bool {
	open := strings.Index(line, "(")
	if open < 0 {
		return false
	}
	closeIdx := strings.Index(line, sectionClose)
	if closeIdx < 0 || closeIdx < open {
		return false
	}

	span := line[open+len("(") : closeIdx]
	c.TimeSlot = span

	if dash := strings.Index(span, "-"); dash >= 0 {
		if n, ok := parseSection(span[:dash]); ok {
			c.StartSection = n
		}
		end := span[dash+1:]
		if cut := strings.Index(end, periodUnit); cut >= 0 {
			end = end[:cut]
		}
		if n, ok := parseSection(end); ok {
			c.EndSection = n
		}
	}

	weeks := line[closeIdx+len(sectionClose):]
	if slash := strings.Index(weeks, "/"); slash >= 0 {
		weeks = weeks[:slash]
	}
	c.Weeks = strings.TrimSpace(weeks)

	return true
}

// applyLabeled extracts a slash-terminated value following a label, as in
// "教师: 张三/场地: A101".
func applyLabeled(line, label string, dst *string) bool {
	idx := strings.Index(line, label)
	if idx < 0 {
		return false
	}
	val := line[idx+len(label):]
	if slash := strings.Index(val, "/"); slash >= 0 {
		val = val[:slash]
	}
	*dst = strings.TrimSpace(val)
	return true
}
