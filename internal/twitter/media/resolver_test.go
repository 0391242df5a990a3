package media

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpmock "github.com/gentle-breeze49/birdkit/internal/http/mocks"
	loggermock "github.com/gentle-breeze49/birdkit/internal/logger/mocks"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func createMediaFile(t *testing.T, name string, header []byte, size int64) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), name)
	file, err := os.Create(filePath)
	require.NoError(t, err)
	defer file.Close()
	_, err = file.Write(header)
	require.NoError(t, err)
	require.NoError(t, file.Truncate(size))
	return filePath
}

type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

// forwardOnlyStream can be measured but refuses to go back to the start.
type forwardOnlyStream struct {
	*bytes.Reader
	name string
}

func (s *forwardOnlyStream) Name() string {
	return s.name
}

func (s *forwardOnlyStream) Seek(offset int64, whence int) (int64, error) {
	if whence == io.SeekStart {
		return 0, errors.New("stream cannot go backward")
	}
	return s.Reader.Seek(offset, whence) //nolint:wrapcheck
}

func TestParseReference(t *testing.T) {
	require.Equal(t, RemoteURL("https://example.com/a.png"), ParseReference("https://example.com/a.png"))
	require.Equal(t, RemoteURL("http://example.com/a.png"), ParseReference("http://example.com/a.png"))
	require.Equal(t, LocalPath("/tmp/a.png"), ParseReference("/tmp/a.png"))
	require.Equal(t, LocalPath("a.png"), ParseReference("a.png"))
}

func TestResolver_ResolveLocalPath(t *testing.T) {
	tests := []struct {
		name         string
		filename     string
		header       []byte
		size         int64
		wantCategory Category
		wantType     string
		reason       ValidationReason
		err          string
	}{
		{
			name:         "image under the limit",
			filename:     "photo.jpg",
			header:       []byte("\xff\xd8\xff\xe0JFIF"),
			size:         4 * 1048576,
			wantCategory: CategoryImage,
			wantType:     "image/jpeg",
		},
		{
			name:         "image exactly at the limit",
			filename:     "photo.gif",
			header:       []byte("GIF89a"),
			size:         MaxImageSize,
			wantCategory: CategoryImage,
			wantType:     "image/gif",
		},
		{
			name:     "image over the limit",
			filename: "photo.png",
			header:   pngHeader,
			size:     6 * 1048576,
			reason:   ReasonImageTooLarge,
			err:      "images must be less than 5MB",
		},
		{
			name:         "video under the limit",
			filename:     "clip.mp4",
			size:         10 * 1048576,
			wantCategory: CategoryVideo,
			wantType:     "video/mp4",
		},
		{
			name:     "video over the limit",
			filename: "clip.mp4",
			size:     20 * 1048576,
			reason:   ReasonVideoTooLarge,
			err:      "videos must be less than 15MB",
		},
		{
			name:     "small unknown type",
			filename: "notes.txt",
			header:   []byte("some notes"),
			size:     10,
			reason:   ReasonUnknownType,
			err:      "media type could not be determined",
		},
		{
			name:     "large unknown type",
			filename: "notes.txt",
			size:     30 * 1048576,
			reason:   ReasonUnknownType,
			err:      "media type could not be determined",
		},
		{
			name:     "unknown type with image content",
			filename: "image.txt",
			header:   pngHeader,
			size:     1024,
			reason:   ReasonUnknownType,
			err:      "media type could not be determined",
		},
		{
			name:         "no extension is sniffed",
			filename:     "avatar",
			header:       pngHeader,
			size:         2048,
			wantCategory: CategoryImage,
			wantType:     "image/png",
		},
		{
			name:         "uppercase extension",
			filename:     "PHOTO.WEBP",
			size:         1024,
			wantCategory: CategoryImage,
			wantType:     "image/webp",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filePath := createMediaFile(t, tt.filename, tt.header, tt.size)
			resolver := NewResolver(loggermock.NewNullLogger(), nil)

			descriptor, err := resolver.Resolve(context.Background(), LocalPath(filePath))
			if tt.err != "" {
				require.Nil(t, descriptor)
				require.ErrorContains(t, err, tt.err)
				var validationErr *ValidationError
				require.True(t, errors.As(err, &validationErr))
				require.Equal(t, tt.reason, validationErr.Reason)
				require.Equal(t, tt.filename, validationErr.Filename)
				require.Equal(t, tt.size, validationErr.Size)
				return
			}

			require.NoError(t, err)
			defer descriptor.Close()
			require.Equal(t, tt.filename, descriptor.Filename)
			require.Equal(t, tt.size, descriptor.Size)
			require.Equal(t, tt.wantCategory, descriptor.Category)
			require.Equal(t, tt.wantType, descriptor.ContentType())

			content, err := io.ReadAll(descriptor.Stream)
			require.NoError(t, err)
			require.Len(t, content, int(tt.size))
			require.Equal(t, tt.header, content[:len(tt.header)])
		})
	}
}

func TestResolver_ResolveLocalPath_StartsAtOffsetZero(t *testing.T) {
	filePath := createMediaFile(t, "photo.jpg", []byte("\xff\xd8\xff"), 4*1048576)
	resolver := NewResolver(loggermock.NewNullLogger(), nil)

	descriptor, err := resolver.Resolve(context.Background(), LocalPath(filePath))
	require.NoError(t, err)

	file, ok := descriptor.Stream.(*os.File)
	require.True(t, ok)
	offset, err := file.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	require.Zero(t, offset)

	require.NoError(t, descriptor.Close())
	_, err = file.Seek(0, io.SeekCurrent)
	require.ErrorIs(t, err, os.ErrClosed)
}

func TestResolver_ResolveLocalPath_RelativePath(t *testing.T) {
	filePath := createMediaFile(t, "photo.png", pngHeader, 512)
	wd, err := os.Getwd()
	require.NoError(t, err)
	relative, err := filepath.Rel(wd, filePath)
	require.NoError(t, err)

	descriptor, err := NewResolver(loggermock.NewNullLogger(), nil).Resolve(context.Background(), LocalPath(relative))
	require.NoError(t, err)
	defer descriptor.Close()
	require.Equal(t, "photo.png", descriptor.Filename)
}

func TestResolver_ResolveLocalPath_Missing(t *testing.T) {
	resolver := NewResolver(loggermock.NewNullLogger(), nil)
	_, err := resolver.Resolve(context.Background(), LocalPath(filepath.Join(t.TempDir(), "missing.jpg")))
	require.ErrorContains(t, err, "unable to open media file")
	require.True(t, errors.Is(err, fs.ErrNotExist))

	var validationErr *ValidationError
	require.False(t, errors.As(err, &validationErr))
}

func TestResolver_ResolveOpenStream(t *testing.T) {
	filePath := createMediaFile(t, "animation.gif", []byte("GIF89a"), 1048576)
	file, err := os.Open(filePath)
	require.NoError(t, err)
	defer file.Close()
	_, err = file.Seek(100, io.SeekStart)
	require.NoError(t, err)

	resolver := NewResolver(loggermock.NewNullLogger(), nil)
	descriptor, err := resolver.Resolve(context.Background(), OpenStream{Stream: file})
	require.NoError(t, err)
	require.Equal(t, "animation.gif", descriptor.Filename)
	require.Equal(t, int64(1048576), descriptor.Size)
	require.Equal(t, CategoryImage, descriptor.Category)

	offset, err := file.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	require.Zero(t, offset)

	// The stream belongs to the caller, closing the descriptor keeps it open.
	require.NoError(t, descriptor.Close())
	_, err = file.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
}

func TestResolver_ResolveOpenStream_TooLarge(t *testing.T) {
	filePath := createMediaFile(t, "big.bmp", []byte("BM"), 6*1048576)
	file, err := os.Open(filePath)
	require.NoError(t, err)
	defer file.Close()

	_, err = NewResolver(loggermock.NewNullLogger(), nil).Resolve(context.Background(), OpenStream{Stream: file})
	require.ErrorContains(t, err, "5MB")

	// Rejected caller streams are not closed either.
	_, err = file.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
}

// A stream that cannot go back to its start is accepted, but it is left at
// its end: the caller gets a descriptor whose stream has nothing left to read.
func TestResolver_ResolveOpenStream_NotRewindable(t *testing.T) {
	log, hook := loggermock.NewRecordingLogger()
	stream := &forwardOnlyStream{
		Reader: bytes.NewReader(append(pngHeader, make([]byte, 100)...)),
		name:   "/some/dir/shot.png",
	}

	descriptor, err := NewResolver(log, nil).Resolve(context.Background(), OpenStream{Stream: stream})
	require.NoError(t, err)
	require.Equal(t, "shot.png", descriptor.Filename)
	require.Equal(t, int64(len(pngHeader)+100), descriptor.Size)

	content, err := io.ReadAll(descriptor.Stream)
	require.NoError(t, err)
	require.Empty(t, content)

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	require.Contains(t, messages, "unable to rewind media stream")
}

// A stream that cannot rewind is measured from its end, so size based
// rejections still report the full size, but content sniffing only sees
// what is left after the end position.
func TestResolver_ResolveOpenStream_NotRewindableRejected(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		content    []byte
		wantReason ValidationReason
	}{
		{
			name:       "image too large",
			filename:   "/some/dir/huge.png",
			content:    append(pngHeader, make([]byte, MaxImageSize)...),
			wantReason: ReasonImageTooLarge,
		},
		{
			name:       "type cannot be sniffed past the end",
			filename:   "/some/dir/huge",
			content:    append(pngHeader, make([]byte, 100)...),
			wantReason: ReasonUnknownType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := &forwardOnlyStream{
				Reader: bytes.NewReader(tt.content),
				name:   tt.filename,
			}

			descriptor, err := NewResolver(loggermock.NewNullLogger(), nil).Resolve(context.Background(), OpenStream{Stream: stream})
			require.Nil(t, descriptor)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.wantReason, validationErr.Reason)
			require.Equal(t, int64(len(tt.content)), validationErr.Size)
			require.Zero(t, stream.Len())
		})
	}
}

func TestResolver_ResolveOpenStream_Nil(t *testing.T) {
	_, err := NewResolver(loggermock.NewNullLogger(), nil).Resolve(context.Background(), OpenStream{})
	require.EqualError(t, err, "media stream is nil")
}

func TestResolver_ResolveUnsupportedReference(t *testing.T) {
	_, err := NewResolver(loggermock.NewNullLogger(), nil).Resolve(context.Background(), nil)
	require.EqualError(t, err, "unsupported media reference <nil>")
}

func TestResolver_ResolveRemoteURL(t *testing.T) {
	fakeURL := "https://example.com/media/photo.jpg?name=large"

	tests := []struct {
		name         string
		mock         func(client *httpmock.Client, body *trackingBody)
		body         []byte
		wantFilename string
		wantSize     int64
		wantCategory Category
		err          string
		wantClosed   bool
	}{
		{
			name: "image with content length",
			body: []byte("\xff\xd8\xff\xe0"),
			mock: func(client *httpmock.Client, body *trackingBody) {
				client.On("Do", mock.MatchedBy(func(r *http.Request) bool {
					return r.Method == http.MethodGet && r.URL.String() == fakeURL
				})).Once().Return(&http.Response{
					StatusCode:    http.StatusOK,
					ContentLength: 2 * 1048576,
					Body:          body,
				}, nil)
			},
			wantFilename: "photo.jpg",
			wantSize:     2 * 1048576,
			wantCategory: CategoryImage,
		},
		{
			name: "image too large",
			body: []byte("\xff\xd8\xff\xe0"),
			mock: func(client *httpmock.Client, body *trackingBody) {
				client.On("Do", mock.Anything).Once().Return(&http.Response{
					StatusCode:    http.StatusOK,
					ContentLength: 8 * 1048576,
					Body:          body,
				}, nil)
			},
			err:        "images must be less than 5MB",
			wantClosed: true,
		},
		{
			name: "unknown content length is measured",
			body: bytes.Repeat([]byte{0xff}, 4096),
			mock: func(client *httpmock.Client, body *trackingBody) {
				client.On("Do", mock.Anything).Once().Return(&http.Response{
					StatusCode:    http.StatusOK,
					ContentLength: -1,
					Body:          body,
				}, nil)
			},
			wantFilename: "photo.jpg",
			wantSize:     4096,
			wantCategory: CategoryImage,
		},
		{
			name: "not found",
			mock: func(client *httpmock.Client, body *trackingBody) {
				client.On("Do", mock.Anything).Once().Return(&http.Response{
					StatusCode: http.StatusNotFound,
					Body:       body,
				}, nil)
			},
			err:        "unable to fetch remote media: unexpected status 404",
			wantClosed: true,
		},
		{
			name: "error during http call",
			mock: func(client *httpmock.Client, body *trackingBody) {
				client.On("Do", mock.Anything).Once().Return(nil, errors.New("connection refused"))
			},
			err: "unable to fetch remote media: connection refused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpClient := httpmock.NewClient(t)
			body := &trackingBody{Reader: bytes.NewReader(tt.body)}
			tt.mock(httpClient, body)

			resolver := NewResolver(loggermock.NewNullLogger(), httpClient)
			descriptor, err := resolver.Resolve(context.Background(), RemoteURL(fakeURL))
			require.Equal(t, tt.wantClosed, body.closed)
			if tt.err != "" {
				require.Nil(t, descriptor)
				require.ErrorContains(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantFilename, descriptor.Filename)
			require.Equal(t, tt.wantSize, descriptor.Size)
			require.Equal(t, tt.wantCategory, descriptor.Category)

			content, err := io.ReadAll(descriptor.Stream)
			require.NoError(t, err)
			require.Equal(t, tt.body, content)

			require.NoError(t, descriptor.Close())
			require.True(t, body.closed)
		})
	}
}

func TestValidationError(t *testing.T) {
	err := newValidationError(ReasonVideoTooLarge, "clip.mp4", 20*1048576)
	require.EqualError(t, err, "clip.mp4: videos must be less than 15MB")

	wrapped := errors.Wrap(err, "unable to upload media")
	var validationErr *ValidationError
	require.True(t, errors.As(wrapped, &validationErr))
	require.Equal(t, ReasonVideoTooLarge, validationErr.Reason)
}
