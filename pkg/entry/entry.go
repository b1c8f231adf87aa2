// Package entry models one diary entry: a date and its six sections.
package entry

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/diary/pkg/section"
)

var (
	ErrInvalidDate    = errors.New("entry: invalid date")
	ErrUnknownSection = errors.New("entry: unknown section")
)

// MediaType identifies how an attachment is rendered.
type MediaType string

const (
	MediaImage MediaType = "image"
	// MediaVideo is a video-sharing link rendered through an embed player.
	MediaVideo MediaType = "youtube"
)

const (
	DefaultMediaWidth  = 200
	DefaultMediaHeight = 150
)

// Media is an optional attachment on a section. URL is stored verbatim.
type Media struct {
	Type   MediaType `json:"type"`
	URL    string    `json:"url"`
	Width  int       `json:"width,omitempty"`
	Height int       `json:"height,omitempty"`
}

// NewMedia returns an attachment with the default display size.
func NewMedia(typ MediaType, url string) *Media {
	return &Media{
		Type:   typ,
		URL:    strings.TrimSpace(url),
		Width:  DefaultMediaWidth,
		Height: DefaultMediaHeight,
	}
}

// Section is the free text and optional media for one section key.
type Section struct {
	Text  string `json:"text"`
	Media *Media `json:"media,omitempty"`
}

// IsEmpty reports whether the section has neither text nor media.
func (s Section) IsEmpty() bool {
	return strings.TrimSpace(s.Text) == "" && s.Media == nil
}

func (s Section) clone() Section {
	out := Section{Text: s.Text}
	if s.Media != nil {
		m := *s.Media
		out.Media = &m
	}
	return out
}

func (s Section) equal(o Section) bool {
	if s.Text != o.Text {
		return false
	}
	if s.Media == nil || o.Media == nil {
		return s.Media == nil && o.Media == nil
	}
	return *s.Media == *o.Media
}

// Entry is the record for one calendar date. Sections always holds all six
// keys.
type Entry struct {
	Date     string                  `json:"date"`
	Sections map[section.Key]Section `json:"sections"`
}

// New returns an entry for date with every section empty.
func New(date string) Entry {
	e := Entry{
		Date:     date,
		Sections: make(map[section.Key]Section, len(section.Keys())),
	}
	for _, k := range section.Keys() {
		e.Sections[k] = Section{}
	}
	return e
}

// Section returns the section for k.
func (e Entry) Section(k section.Key) Section {
	return e.Sections[k]
}

// Clone returns a deep copy; the result shares no maps or media with e.
func (e Entry) Clone() Entry {
	out := Entry{Date: e.Date}
	if e.Sections != nil {
		out.Sections = make(map[section.Key]Section, len(e.Sections))
		for k, s := range e.Sections {
			out.Sections[k] = s.clone()
		}
	}
	return out
}

// With returns a copy of e with section k replaced.
func (e Entry) With(k section.Key, s Section) Entry {
	out := e.Clone()
	if out.Sections == nil {
		out.Sections = make(map[section.Key]Section, len(section.Keys()))
	}
	out.Sections[k] = s.clone()
	return out
}

// WithText returns a copy of e with the text of section k replaced.
func (e Entry) WithText(k section.Key, text string) Entry {
	s := e.Section(k)
	s.Text = text
	return e.With(k, s)
}

// WithMedia returns a copy of e with the media of section k replaced; nil
// removes it.
func (e Entry) WithMedia(k section.Key, m *Media) Entry {
	s := e.Section(k)
	s.Media = m
	return e.With(k, s)
}

// Equal compares two entries field by field.
func (e Entry) Equal(o Entry) bool {
	if e.Date != o.Date || len(e.Sections) != len(o.Sections) {
		return false
	}
	for k, s := range e.Sections {
		other, ok := o.Sections[k]
		if !ok || !s.equal(other) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether every section is empty.
func (e Entry) IsEmpty() bool {
	for _, s := range e.Sections {
		if !s.IsEmpty() {
			return false
		}
	}
	return true
}

// Contains reports whether any section text contains query, ignoring case.
func (e Entry) Contains(query string) bool {
	for _, k := range section.Keys() {
		if e.SectionContains(k, query) {
			return true
		}
	}
	return false
}

// SectionContains reports whether the text of section k contains query,
// ignoring case. An empty query never matches.
func (e Entry) SectionContains(k section.Key, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	return strings.Contains(strings.ToLower(e.Section(k).Text), q)
}

// Normalize fills missing sections and rejects anything that would break the
// six-section invariant. key, when non-empty, must match e.Date.
func (e *Entry) Normalize(key string) error {
	if key != "" && key != e.Date {
		return fmt.Errorf("%w: %q stored under %q", ErrInvalidDate, e.Date, key)
	}
	if !ValidDate(e.Date) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, e.Date)
	}
	if e.Sections == nil {
		e.Sections = make(map[section.Key]Section, len(section.Keys()))
	}
	for k := range e.Sections {
		if !k.Valid() {
			return fmt.Errorf("%w: %q on %s", ErrUnknownSection, k, e.Date)
		}
	}
	for _, k := range section.Keys() {
		if _, ok := e.Sections[k]; !ok {
			e.Sections[k] = Section{}
		}
	}
	return nil
}
