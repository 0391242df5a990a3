package media

import (
	"bufio"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

// sniffLength is the amount of bytes mimetype looks at by default.
const sniffLength = 3072

var extensionTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".jpe":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
	".mp4":  "video/mp4",
}

var uploadableTypes = map[string]Category{
	"image/jpeg": CategoryImage,
	"image/png":  CategoryImage,
	"image/gif":  CategoryImage,
	"image/bmp":  CategoryImage,
	"image/webp": CategoryImage,
	"video/mp4":  CategoryVideo,
}

func hasExtension(filename string) bool {
	ext := filepath.Ext(filename)
	return ext != "" && ext != filename
}

func typeFromExtension(filename string) string {
	if !hasExtension(filename) {
		return ""
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if mediaType, known := extensionTypes[ext]; known {
		return mediaType
	}
	return baseType(mime.TypeByExtension(ext))
}

// sniffType detects the media type from the first bytes of stream. The
// returned reader replays those bytes and must be used in place of stream.
func sniffType(stream io.Reader) (string, io.Reader, error) {
	buffered := bufio.NewReaderSize(stream, sniffLength)
	header, err := buffered.Peek(sniffLength)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", nil, errors.Wrap(err, "unable to read media header")
	}
	return baseType(mimetype.Detect(header).String()), buffered, nil
}

func categoryOf(mediaType string) (Category, bool) {
	category, ok := uploadableTypes[mediaType]
	return category, ok
}

func baseType(mediaType string) string {
	if mediaType == "" {
		return ""
	}
	parsed, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		parsed, _, _ = strings.Cut(mediaType, ";")
	}
	return strings.ToLower(strings.TrimSpace(parsed))
}
