package entry

import (
	"encoding/json"
	"errors"
	"testing"

	"tableflip.dev/diary/pkg/section"
)

func TestNewHasAllSectionsEmpty(t *testing.T) {
	e := New("2024-01-01")
	if len(e.Sections) != 6 {
		t.Fatalf("expected 6 sections, got %d", len(e.Sections))
	}
	for _, k := range section.Keys() {
		s, ok := e.Sections[k]
		if !ok {
			t.Fatalf("missing section %q", k)
		}
		if s.Text != "" || s.Media != nil {
			t.Fatalf("expected %q to be empty, got %+v", k, s)
		}
	}
	if !e.IsEmpty() {
		t.Fatalf("expected new entry to be empty")
	}
}

func TestCloneIsDeep(t *testing.T) {
	e := New("2024-01-01").WithMedia(section.Food, NewMedia(MediaImage, "https://example.com/a.png"))
	c := e.Clone()
	c.Sections[section.Diary] = Section{Text: "changed"}
	c.Sections[section.Food].Media.URL = "mutated"

	if e.Section(section.Diary).Text != "" {
		t.Fatalf("clone shares section map")
	}
	if e.Section(section.Food).Media.URL != "https://example.com/a.png" {
		t.Fatalf("clone shares media")
	}
}

func TestWithTextLeavesOriginal(t *testing.T) {
	e := New("2024-01-01")
	next := e.WithText(section.Diary, "hello")
	if e.Section(section.Diary).Text != "" {
		t.Fatalf("original mutated")
	}
	if next.Section(section.Diary).Text != "hello" {
		t.Fatalf("expected hello, got %q", next.Section(section.Diary).Text)
	}
	if e.Equal(next) {
		t.Fatalf("expected entries to differ")
	}
}

func TestSectionEmptiness(t *testing.T) {
	if !(Section{Text: "  \n"}).IsEmpty() {
		t.Fatalf("whitespace should count as empty")
	}
	if (Section{Media: NewMedia(MediaVideo, "https://youtu.be/abc")}).IsEmpty() {
		t.Fatalf("media should count as content")
	}
}

func TestContains(t *testing.T) {
	e := New("2024-01-01").WithText(section.Music, "Blue in Green")
	if !e.Contains("blue") {
		t.Fatalf("expected case-insensitive match")
	}
	if !e.SectionContains(section.Music, "GREEN") {
		t.Fatalf("expected section match")
	}
	if e.SectionContains(section.Diary, "blue") {
		t.Fatalf("unexpected match in diary")
	}
	if e.Contains("  ") {
		t.Fatalf("blank query should not match")
	}
}

func TestNormalizeFillsMissingSections(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"date":"2024-02-03","sections":{"diary":{"text":"hi"}}}`), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := e.Normalize("2024-02-03"); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(e.Sections) != 6 {
		t.Fatalf("expected 6 sections, got %d", len(e.Sections))
	}
	if e.Section(section.Diary).Text != "hi" {
		t.Fatalf("lost existing text")
	}
}

func TestNormalizeRejects(t *testing.T) {
	e := New("2024-02-03")
	if err := e.Normalize("2024-02-04"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate for mismatched key, got %v", err)
	}

	bad := New("2024-2-3")
	if err := bad.Normalize(""); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate for non-canonical date, got %v", err)
	}

	extra := New("2024-02-03")
	extra.Sections["weather"] = Section{Text: "rain"}
	if err := extra.Normalize(""); !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
}

func TestMediaJSONShape(t *testing.T) {
	e := New("2024-01-01").WithMedia(section.Music, NewMedia(MediaVideo, " https://youtu.be/dQw4w9WgXcQ "))
	b, err := json.Marshal(e.Section(section.Music))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"text":"","media":{"type":"youtube","url":"https://youtu.be/dQw4w9WgXcQ","width":200,"height":150}}`
	if string(b) != want {
		t.Fatalf("unexpected json:\n got %s\nwant %s", b, want)
	}
}

func TestDateHelpers(t *testing.T) {
	next, err := AddDays("2024-02-28", 2)
	if err != nil {
		t.Fatalf("add days: %v", err)
	}
	if next != "2024-03-01" {
		t.Fatalf("expected leap-year rollover, got %s", next)
	}
	if Display("2024-03-01") != "2024.03.01" {
		t.Fatalf("unexpected display %q", Display("2024-03-01"))
	}
	if ValidDate("2024-13-01") {
		t.Fatalf("expected invalid month to fail")
	}
}
