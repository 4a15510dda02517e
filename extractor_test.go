package kebiao

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeProvider serves canned page text for exercising the paged-text path
// without a real PDF on disk.
type fakeProvider struct {
	pages    []string
	countErr error
	pageErr  map[int]error
}

func (p *fakeProvider) PageCount() (int, error) {
	if p.countErr != nil {
		return 0, p.countErr
	}
	return len(p.pages), nil
}

func (p *fakeProvider) PageText(page int) (string, error) {
	if err, ok := p.pageErr[page]; ok {
		return "", err
	}
	if page < 1 || page > len(p.pages) {
		return "", fmt.Errorf("page %d out of range", page)
	}
	return p.pages[page-1], nil
}

func TestFromProviderConcatenatesPages(t *testing.T) {
	p := &fakeProvider{pages: []string{"first page", "second page\n"}}

	text, warnings, err := FromProvider(p).Text()
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if text != "first page\nsecond page\n" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestFromProviderRespectsMaxPages(t *testing.T) {
	p := &fakeProvider{pages: []string{"one", "two", "three"}}

	text, _, err := FromProvider(p).MaxPages(2).Text()
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if strings.Contains(text, "three") {
		t.Errorf("page beyond the limit was read: %q", text)
	}
	if !strings.Contains(text, "one") || !strings.Contains(text, "two") {
		t.Errorf("pages within the limit are missing: %q", text)
	}
}

func TestFromProviderSkipsFailedPages(t *testing.T) {
	p := &fakeProvider{
		pages:   []string{"one", "broken", "three"},
		pageErr: map[int]error{2: errors.New("damaged content stream")},
	}

	text, warnings, err := FromProvider(p).Text()
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if len(warnings) != 1 || warnings[0].Type != WarnPageSkipped {
		t.Fatalf("expected one page-skipped warning, got %v", warnings)
	}
	if !strings.Contains(warnings[0].Message, "page 2") {
		t.Errorf("warning should name the page: %q", warnings[0].Message)
	}
	if !strings.Contains(text, "one") || !strings.Contains(text, "three") {
		t.Errorf("readable pages are missing: %q", text)
	}
}

func TestFromProviderSkipsBlankPages(t *testing.T) {
	p := &fakeProvider{pages: []string{"one", "  \n\t ", "three"}}

	text, warnings, err := FromProvider(p).Text()
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("blank pages should be skipped silently, got %v", warnings)
	}
	if text != "one\nthree\n" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestFromProviderCountError(t *testing.T) {
	p := &fakeProvider{countErr: errors.New("encrypted document")}

	_, _, err := FromProvider(p).Text()
	if err == nil {
		t.Fatal("expected error when page count fails")
	}
	if !strings.Contains(err.Error(), "encrypted document") {
		t.Errorf("cause is not preserved: %v", err)
	}
}

func TestFromProviderSchedule(t *testing.T) {
	// The schedule spans two pages; parsing sees the joined text.
	p := &fakeProvider{pages: []string{
		strings.Join([]string{
			"都书锐课表 学号：252712004",
			"星期一", "星期二", "星期三", "星期四", "星期五", "星期六", "星期日",
			"1",
			"★高等数学",
		}, "\n"),
		"(1-2节)6周/教师: 张三/场地: A101",
	}}

	sched, warnings, err := FromProvider(p).Schedule()
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(sched.Courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(sched.Courses))
	}
	c := sched.Courses[0]
	if c.Name != "高等数学" || c.Teacher != "张三" || c.Location != "A101" {
		t.Errorf("unexpected course: %+v", c)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	name := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(name, []byte("just some notes"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Open(name).Schedule()
	if err == nil {
		t.Error("expected error for unsupported format")
	}
}
