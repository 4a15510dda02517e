// Package schedule defines the value types produced by parsing a course
// timetable: individual Course entries and the aggregate CourseSchedule.
//
// Values are plain data. A CourseSchedule is constructed empty, populated
// by a single parsing pass, and not mutated afterwards; there is no
// identity beyond structural equality and no persistence. The JSON tags
// give the interchange shape consumed by callers.
package schedule

// Course is one scheduled class occurrence: a single cell of the weekly
// timetable grid.
type Course struct {
	// Name is the course title. A Course with an empty name is never
	// produced by the parser.
	Name string `json:"name"`

	// Teacher and Location may be empty when the source text does not
	// carry the corresponding label.
	Teacher  string `json:"teacher"`
	Location string `json:"location"`

	// TimeSlot is the raw period span as printed, e.g. "1-2" for a class
	// occupying periods one and two. It is kept for display and never
	// re-derived from StartSection/EndSection.
	TimeSlot string `json:"time_slot"`

	// Weeks is the raw week annotation, e.g. "6-8周(双),9-18周". Parity and
	// range markers are passed through verbatim, not expanded.
	Weeks string `json:"weeks"`

	// DayOfWeek is 1-7, Monday=1.
	DayOfWeek int `json:"day_of_week"`

	// StartSection and EndSection are the first and last period indexes
	// the class occupies. When the span cannot be parsed they both hold
	// the period the entry was found under.
	StartSection int `json:"start_section"`
	EndSection   int `json:"end_section"`
}

// CourseSchedule is the complete parsed result for one document.
type CourseSchedule struct {
	// StudentName, StudentID and Semester are discovered independently of
	// the table grid and are empty when absent from the document.
	StudentName string `json:"student_name"`
	StudentID   string `json:"student_id"`
	Semester    string `json:"semester"`

	// Courses holds entries in discovery order: by period row, then by
	// weekday within the row. This is not chronological order.
	Courses []Course `json:"courses"`
}

// New returns an empty CourseSchedule ready to be populated.
// Courses is non-nil so the schedule marshals with an empty array rather
// than null.
func New() *CourseSchedule {
	return &CourseSchedule{
		Courses: []Course{},
	}
}
