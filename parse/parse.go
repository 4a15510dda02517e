package parse

import (
	"strings"

	"github.com/schedtools/kebiao/schedule"
)

// Text parses the flattened, reading-order text of a timetable document
// into a CourseSchedule. It never fails: missing anchors (weekday header,
// metadata lines, field labels) leave the corresponding fields empty, and
// malformed numeric tokens fall back to ambient defaults. Parsing is a
// pure function of its input; calling it twice on the same text yields
// structurally identical results.
func Text(text string) *schedule.CourseSchedule {
	return Lines(strings.Split(text, "\n"))
}

// Lines is Text for an already-split line sequence.
func Lines(lines []string) *schedule.CourseSchedule {
	sched := schedule.New()

	m := extractMetadata(lines)
	sched.StudentName = m.studentName
	sched.StudentID = m.studentID
	sched.Semester = m.semester

	start, width, found := locateHeader(lines)
	if !found || width == 0 {
		// No usable table region; metadata alone is still a valid result.
		return sched
	}

	for _, b := range segment(lines[start+width:]) {
		if c, ok := parseBlock(b.text, b.day, b.section); ok {
			sched.Courses = append(sched.Courses, c)
		}
	}

	return sched
}
