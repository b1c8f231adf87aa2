// Package media derives render-time forms of section attachments and inlines
// local image files as data URLs. Entries keep the URL as given; embed links
// are derived when rendering.
package media

import (
	"regexp"
	"strings"

	"tableflip.dev/diary/pkg/entry"
)

var videoIDPattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

const videoIDLength = 11

// VideoID extracts the video id from a sharing link, or "" when the link has
// no recognizable id.
func VideoID(url string) string {
	m := videoIDPattern.FindStringSubmatch(strings.TrimSpace(url))
	if len(m) != 3 || len(m[2]) != videoIDLength {
		return ""
	}
	return m[2]
}

// EmbedURL returns the player URL for a video link, or "".
func EmbedURL(url string) string {
	id := VideoID(url)
	if id == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + id
}

// IsDataURL reports whether url carries inlined image bytes.
func IsDataURL(url string) bool {
	return strings.HasPrefix(strings.TrimSpace(url), "data:")
}

// Describe renders an attachment as a single line for terminal output.
// Inlined data URLs are summarized rather than printed.
func Describe(m *entry.Media) string {
	if m == nil {
		return ""
	}
	switch m.Type {
	case entry.MediaVideo:
		if embed := EmbedURL(m.URL); embed != "" {
			return "video " + embed
		}
		return "video " + m.URL + " (unrecognized link)"
	default:
		if IsDataURL(m.URL) {
			kind := strings.TrimPrefix(m.URL, "data:")
			if i := strings.IndexAny(kind, ";,"); i >= 0 {
				kind = kind[:i]
			}
			return "image (inline " + kind + ")"
		}
		return "image " + m.URL
	}
}
