package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// MaxInlineSize caps the size of an image file stored inside an entry.
const MaxInlineSize = 5 << 20

var (
	ErrNotImage = errors.New("media: not an image")
	ErrTooLarge = errors.New("media: image too large to inline")
)

// Inline returns ref unchanged unless it names a local file, in which case
// the file is read and returned as a base64 data URL. Only images are
// accepted.
func Inline(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" || IsDataURL(ref) || strings.Contains(ref, "://") {
		return ref, nil
	}
	path, err := homedir.Expand(ref)
	if err != nil {
		return ref, nil
	}
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return ref, nil
	}
	if fi.Size() > MaxInlineSize {
		return "", fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, path, fi.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("media: read %s: %w", path, err)
	}

	typ := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if !strings.HasPrefix(typ, "image/") {
		typ = http.DetectContentType(data)
	}
	if i := strings.Index(typ, ";"); i >= 0 {
		typ = strings.TrimSpace(typ[:i])
	}
	if !strings.HasPrefix(typ, "image/") {
		return "", fmt.Errorf("%w: %s is %s", ErrNotImage, path, typ)
	}
	return "data:" + typ + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
