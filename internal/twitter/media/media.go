package media

import (
	"fmt"
	"io"
	"strings"
)

const (
	megabyte = 1048576

	MaxImageSize int64 = 5 * megabyte
	MaxVideoSize int64 = 15 * megabyte
)

type Category string

const (
	CategoryImage Category = "image"
	CategoryVideo Category = "video"
)

// Reference designates the media to upload. It is one of LocalPath,
// RemoteURL or OpenStream.
type Reference interface {
	reference()
}

type LocalPath string

type RemoteURL string

// Stream is an already open media, *os.File satisfies it.
type Stream interface {
	io.ReadSeeker
	Name() string
}

// OpenStream wraps a stream owned by the caller. The resolver reads its size
// and rewinds it but never closes it.
type OpenStream struct {
	Stream Stream
}

func (LocalPath) reference()  {}
func (RemoteURL) reference()  {}
func (OpenStream) reference() {}

// ParseReference turns a string into a RemoteURL when it starts with http,
// into a LocalPath otherwise.
func ParseReference(ref string) Reference {
	if strings.HasPrefix(ref, "http") {
		return RemoteURL(ref)
	}
	return LocalPath(ref)
}

// Descriptor is a validated media ready to be sent to the upload endpoint.
//
// When the stream was opened by the resolver (LocalPath, RemoteURL) the
// caller owns it and must call Close once done. Close leaves streams coming
// from an OpenStream reference untouched.
type Descriptor struct {
	Stream    io.Reader
	Filename  string
	Size      int64
	Category  Category
	MediaType string

	closer io.Closer
}

func (d *Descriptor) ContentType() string {
	return d.MediaType
}

func (d *Descriptor) Close() error {
	if d.closer == nil {
		return nil
	}
	err := d.closer.Close()
	d.closer = nil
	return err //nolint:wrapcheck
}

type ValidationReason string

const (
	ReasonImageTooLarge ValidationReason = "image_too_large"
	ReasonVideoTooLarge ValidationReason = "video_too_large"
	ReasonUnknownType   ValidationReason = "unknown_type"
)

// ValidationError is returned when a media cannot be uploaded as is.
type ValidationError struct {
	Reason   ValidationReason
	Filename string
	Size     int64
	Message  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Filename, e.Message)
}

func newValidationError(reason ValidationReason, filename string, size int64) *ValidationError {
	var message string
	switch reason {
	case ReasonImageTooLarge:
		message = "images must be less than 5MB"
	case ReasonVideoTooLarge:
		message = "videos must be less than 15MB"
	default:
		message = "media type could not be determined"
	}
	return &ValidationError{
		Reason:   reason,
		Filename: filename,
		Size:     size,
		Message:  message,
	}
}
