package parse

// Marker vocabulary recognized by the pipeline. The source documents all
// come from one academic-system print template, so the tokens are fixed
// rather than configurable.

// weekdays holds the header tokens in print order, Monday first. The
// position of a token in this array is its day index minus one.
var weekdays = [...]string{
	"星期一",
	"星期二",
	"星期三",
	"星期四",
	"星期五",
	"星期六",
	"星期日",
}

const (
	// glyphStar and glyphTriangle mark the first line of a course cell.
	glyphStar     = "★"
	glyphTriangle = "▲"

	// Labeled sub-fields inside a course block.
	labelTeacher = "教师:"
	labelVenue   = "场地:"

	// Document-level metadata anchors.
	labelStudentID    = "学号" // followed by a full- or half-width colon
	labelScheduleOf   = "课表" // suffix after the student's name
	labelAcademicYear = "学年第"
	labelTerm         = "学期"

	// theoryAnnotation appears on hour-breakdown lines that carry a course
	// glyph but are not course cells.
	theoryAnnotation = ": 理论"

	// periodUnit is the glyph closing a period span, as in "1-2节".
	periodUnit   = "节"
	sectionClose = "节)"
)

// noiseTokens mark lines with no course content: the "other courses"
// footer, the print timestamp, the time-of-day bracket labels and the
// "time segment" column header.
var noiseTokens = [...]string{
	"其他课程",
	"打印时间",
	"上午",
	"下午",
	"晚上",
	"时间段",
}

// timeOfDayTokens are the bracket labels that also terminate an open
// course block.
var timeOfDayTokens = [...]string{
	"上午",
	"下午",
	"晚上",
}

const (
	daysPerWeek = 7

	// Valid period indexes. Markers and section numbers outside this range
	// are ignored.
	minSection = 1
	maxSection = 12
)
