package media

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tableflip.dev/diary/pkg/entry"
)

func TestEmbedURL(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":          "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ?t=42":                    "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ":            "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/watch?feature=x&v=dQw4w9WgXcQ": "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://youtu.be/short":                               "",
		"https://example.com/video.mp4":                        "",
	}
	for in, want := range cases {
		assert.Equal(t, want, EmbedURL(in), in)
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "", Describe(nil))
	assert.Equal(t, "image https://example.com/a.png",
		Describe(entry.NewMedia(entry.MediaImage, "https://example.com/a.png")))
	assert.Equal(t, "image (inline image/png)",
		Describe(entry.NewMedia(entry.MediaImage, "data:image/png;base64,AAAA")))
	assert.Equal(t, "video https://www.youtube.com/embed/dQw4w9WgXcQ",
		Describe(entry.NewMedia(entry.MediaVideo, "https://youtu.be/dQw4w9WgXcQ")))
}
