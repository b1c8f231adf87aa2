// Package section defines the fixed set of sections every diary entry carries.
package section

import (
	"fmt"
	"strings"
)

// Key names one of the six sections of a diary entry.
type Key string

const (
	Diary     Key = "diary"
	Music     Key = "music"
	Place     Key = "place"
	Food      Key = "food"
	Word      Key = "word"
	Gratitude Key = "gratitude"
)

// Glyph describes how a section is presented.
type Glyph struct {
	Key         Key
	Symbol      string
	Label       string
	Meaning     string
	Placeholder string
	Aliases     []string
	Order       int
	// Wide sections get a taller text area in the editor.
	Wide bool
}

func (g Glyph) String() string {
	return g.Symbol
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 6)

	g = append(g, Glyph{
		Key:         Diary,
		Symbol:      "✎",
		Label:       "Diary",
		Meaning:     "today's diary",
		Placeholder: "Write about your day...",
		Aliases:     []string{"d", "journal", "today"},
		Order:       0,
		Wide:        true,
	}, Glyph{
		Key:         Music,
		Symbol:      "♪",
		Label:       "Music",
		Meaning:     "today's song",
		Placeholder: "What were you listening to?",
		Aliases:     []string{"m", "song", "songs"},
		Order:       1,
	}, Glyph{
		Key:         Place,
		Symbol:      "⌂",
		Label:       "Place",
		Meaning:     "today's place",
		Placeholder: "Where were you?",
		Aliases:     []string{"p", "places", "where"},
		Order:       2,
	}, Glyph{
		Key:         Food,
		Symbol:      "☕",
		Label:       "Food",
		Meaning:     "today's food",
		Placeholder: "What did you eat?",
		Aliases:     []string{"f", "meal", "eat"},
		Order:       3,
	}, Glyph{
		Key:         Word,
		Symbol:      "❝",
		Label:       "Word",
		Meaning:     "today's one line",
		Placeholder: "One line for today...",
		Aliases:     []string{"w", "quote", "words"},
		Order:       4,
	}, Glyph{
		Key:         Gratitude,
		Symbol:      "♥",
		Label:       "Gratitude",
		Meaning:     "today's thanks",
		Placeholder: "1.\n2.\n3.",
		Aliases:     []string{"g", "thanks", "grateful"},
		Order:       5,
		Wide:        true,
	})

	return g
}

// Keys returns every section key in display order.
func Keys() []Key {
	return []Key{Diary, Music, Place, Food, Word, Gratitude}
}

// Valid reports whether k is one of the six known sections.
func (k Key) Valid() bool {
	for _, known := range Keys() {
		if k == known {
			return true
		}
	}
	return false
}

func (k Key) Glyph() Glyph {
	for _, g := range DefaultGlyphs() {
		if g.Key == k {
			return g
		}
	}
	return Glyph{Key: k, Symbol: "?", Label: string(k), Order: len(Keys())}
}

func (k Key) String() string {
	return string(k)
}

// Label is the human title of the section.
func (k Key) Label() string {
	return k.Glyph().Label
}

// Index is the position of k in display order, or -1.
func (k Key) Index() int {
	for i, known := range Keys() {
		if k == known {
			return i
		}
	}
	return -1
}

// Next cycles forward through the display order.
func (k Key) Next() Key {
	keys := Keys()
	i := k.Index()
	if i < 0 {
		return keys[0]
	}
	return keys[(i+1)%len(keys)]
}

// Prev cycles backward through the display order.
func (k Key) Prev() Key {
	keys := Keys()
	i := k.Index()
	if i < 0 {
		return keys[len(keys)-1]
	}
	return keys[(i+len(keys)-1)%len(keys)]
}

// ForAlias resolves a key name, label or alias, case-insensitively.
func ForAlias(alias string) (Key, error) {
	a := strings.ToLower(strings.TrimSpace(alias))
	for _, g := range DefaultGlyphs() {
		if a == string(g.Key) || a == strings.ToLower(g.Label) {
			return g.Key, nil
		}
		for _, other := range g.Aliases {
			if a == other {
				return g.Key, nil
			}
		}
	}
	return "", fmt.Errorf("section: unknown section %q", alias)
}

// ByOrder sorts glyphs by display order.
type ByOrder []Glyph

func (a ByOrder) Len() int           { return len(a) }
func (a ByOrder) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByOrder) Less(i, j int) bool { return a[i].Order < a[j].Order }
