package parse

import "testing"

func TestParseBlockFullRecord(t *testing.T) {
	c, ok := parseBlock("★高等数学\n(1-2节)6周,11周/教师: 张三/场地: A101", 3, 5)
	if !ok {
		t.Fatal("expected a course")
	}

	if c.Name != "高等数学" {
		t.Errorf("expected name 高等数学, got %q", c.Name)
	}
	if c.TimeSlot != "1-2" {
		t.Errorf("expected time slot 1-2, got %q", c.TimeSlot)
	}
	if c.StartSection != 1 || c.EndSection != 2 {
		t.Errorf("expected sections 1-2, got %d-%d", c.StartSection, c.EndSection)
	}
	if c.Weeks != "6周,11周" {
		t.Errorf("expected weeks 6周,11周, got %q", c.Weeks)
	}
	if c.Teacher != "张三" {
		t.Errorf("expected teacher 张三, got %q", c.Teacher)
	}
	if c.Location != "A101" {
		t.Errorf("expected location A101, got %q", c.Location)
	}
	if c.DayOfWeek != 3 {
		t.Errorf("expected day 3, got %d", c.DayOfWeek)
	}
}

func TestParseBlockEmptyName(t *testing.T) {
	// A name line that is nothing but glyphs and whitespace yields no course.
	if _, ok := parseBlock("★ ▲ ", 1, 1); ok {
		t.Error("expected no course for an empty name line")
	}
}

func TestParseBlockNameOnly(t *testing.T) {
	c, ok := parseBlock("▲体育", 2, 7)
	if !ok {
		t.Fatal("expected a course")
	}

	if c.Name != "体育" {
		t.Errorf("expected name 体育, got %q", c.Name)
	}
	if c.Teacher != "" || c.Location != "" || c.Weeks != "" || c.TimeSlot != "" {
		t.Error("expected unlabeled fields to stay empty")
	}
	// With no period span, both bounds hold the ambient section.
	if c.StartSection != 7 || c.EndSection != 7 {
		t.Errorf("expected ambient sections 7-7, got %d-%d", c.StartSection, c.EndSection)
	}
}

func TestParseBlockMalformedSpanKeepsAmbient(t *testing.T) {
	c, ok := parseBlock("★数学\n(a-b节)1-18周/教师: 张三", 1, 4)
	if !ok {
		t.Fatal("expected a course")
	}

	if c.TimeSlot != "a-b" {
		t.Errorf("expected raw span a-b, got %q", c.TimeSlot)
	}
	if c.StartSection != 4 || c.EndSection != 4 {
		t.Errorf("expected ambient sections 4-4, got %d-%d", c.StartSection, c.EndSection)
	}
	// A malformed span does not disturb sibling fields.
	if c.Weeks != "1-18周" {
		t.Errorf("expected weeks 1-18周, got %q", c.Weeks)
	}
	if c.Teacher != "张三" {
		t.Errorf("expected teacher 张三, got %q", c.Teacher)
	}
}

func TestParseBlockFirstMatchWinsPerField(t *testing.T) {
	c, ok := parseBlock("★数学\n教师: 张三/\n教师: 李四/\n(3-4节)2周/场地: B202", 1, 1)
	if !ok {
		t.Fatal("expected a course")
	}

	if c.Teacher != "张三" {
		t.Errorf("expected first teacher line to win, got %q", c.Teacher)
	}
	// Fields from later lines still fill their own empty slots.
	if c.StartSection != 3 || c.EndSection != 4 {
		t.Errorf("expected sections 3-4, got %d-%d", c.StartSection, c.EndSection)
	}
	if c.Location != "B202" {
		t.Errorf("expected location B202, got %q", c.Location)
	}
}

func TestParseBlockWeeksWithoutSlash(t *testing.T) {
	c, ok := parseBlock("★数学\n(5-6节)9-18周", 1, 1)
	if !ok {
		t.Fatal("expected a course")
	}

	if c.Weeks != "9-18周" {
		t.Errorf("expected weeks 9-18周, got %q", c.Weeks)
	}
}

func TestParseBlockParityWeeksVerbatim(t *testing.T) {
	c, ok := parseBlock("★数学\n(1-2节)6-8周(双),9-18周/教师: 张三", 1, 1)
	if !ok {
		t.Fatal("expected a course")
	}

	// Parity and range annotations pass through untouched.
	if c.Weeks != "6-8周(双),9-18周" {
		t.Errorf("expected verbatim weeks span, got %q", c.Weeks)
	}
}

func TestParseBlockSingleSectionSpan(t *testing.T) {
	c, ok := parseBlock("★数学\n(3节)1周", 1, 9)
	if !ok {
		t.Fatal("expected a course")
	}

	// No dash: the raw span is kept but the bounds stay ambient.
	if c.TimeSlot != "3" {
		t.Errorf("expected span 3, got %q", c.TimeSlot)
	}
	if c.StartSection != 9 || c.EndSection != 9 {
		t.Errorf("expected ambient sections 9-9, got %d-%d", c.StartSection, c.EndSection)
	}
}
