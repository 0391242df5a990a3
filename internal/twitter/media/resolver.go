package media

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	_http "github.com/gentle-breeze49/birdkit/internal/http"
	"github.com/gentle-breeze49/birdkit/internal/logger"
	"github.com/gentle-breeze49/birdkit/internal/observability"
)

type Resolver interface {
	Resolve(ctx context.Context, ref Reference) (*Descriptor, error)
}

type resolver struct {
	log    logger.Logger
	client _http.Client
}

func NewResolver(log logger.Logger, client _http.Client) *resolver {
	return &resolver{
		log:    log,
		client: client,
	}
}

// Resolve opens the referenced media, measures it and checks it can be
// uploaded. Validation failures are returned as *ValidationError, any stream
// opened by the resolver is closed before returning an error.
func (r *resolver) Resolve(ctx context.Context, ref Reference) (*Descriptor, error) {
	var (
		descriptor *Descriptor
		err        error
	)
	switch ref := ref.(type) {
	case LocalPath:
		descriptor, err = r.openLocalPath(string(ref))
	case RemoteURL:
		descriptor, err = r.openRemoteURL(ctx, string(ref))
	case OpenStream:
		descriptor, err = r.measureStream(ref.Stream)
	default:
		return nil, errors.Errorf("unsupported media reference %T", ref)
	}
	if err != nil {
		return nil, err
	}

	mediaLog := r.log.WithFields(logrus.Fields{
		"filename": descriptor.Filename,
		"size":     descriptor.Size,
	})
	if err := r.validate(descriptor); err != nil {
		if closeErr := descriptor.Close(); closeErr != nil {
			mediaLog.WithError(closeErr).Warn("unable to close rejected media")
		}
		mediaLog.WithError(err).Debug("media rejected")
		return nil, err
	}
	mediaLog.WithField("type", descriptor.MediaType).Debug("media resolved")
	return descriptor, nil
}

func (r *resolver) openLocalPath(filePath string) (*Descriptor, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "unable to resolve media path")
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open media file")
	}
	size, err := file.Seek(0, io.SeekEnd)
	if err == nil {
		_, err = file.Seek(0, io.SeekStart)
	}
	if err != nil {
		_ = file.Close()
		return nil, errors.Wrap(err, "unable to measure media file")
	}
	return &Descriptor{
		Stream:   file,
		Filename: filepath.Base(absPath),
		Size:     size,
		closer:   file,
	}, nil
}

func (r *resolver) openRemoteURL(ctx context.Context, rawURL string) (*Descriptor, error) {
	mediaURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse media url")
	}

	span := observability.StartSpan(ctx, "media.fetch", map[string]any{"media.url": rawURL})
	defer observability.FinishSpan(span)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "unable to build media request")
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch remote media")
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_ = resp.Body.Close()
		return nil, errors.Errorf("unable to fetch remote media: unexpected status %d", resp.StatusCode)
	}

	descriptor := &Descriptor{
		Stream:   resp.Body,
		Filename: path.Base(mediaURL.Path),
		Size:     resp.ContentLength,
		closer:   resp.Body,
	}
	if descriptor.Size < 0 {
		// Nothing above the video limit can be accepted, so reading one more
		// byte than that is enough to measure or reject the media.
		head, err := io.ReadAll(io.LimitReader(resp.Body, MaxVideoSize+1))
		if err != nil {
			_ = resp.Body.Close()
			return nil, errors.Wrap(err, "unable to read remote media")
		}
		descriptor.Size = int64(len(head))
		descriptor.Stream = io.MultiReader(bytes.NewReader(head), resp.Body)
		r.log.WithField("url", rawURL).Trace("remote media length unknown, measured from body")
	}
	return descriptor, nil
}

func (r *resolver) measureStream(stream Stream) (*Descriptor, error) {
	if stream == nil {
		return nil, errors.New("media stream is nil")
	}
	size, err := stream.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, errors.Wrap(err, "unable to measure media stream")
	}
	if _, err := stream.Seek(0, io.SeekStart); err != nil {
		r.log.WithError(err).WithField("name", stream.Name()).Debug("unable to rewind media stream")
	}
	return &Descriptor{
		Stream:   stream,
		Filename: filepath.Base(stream.Name()),
		Size:     size,
	}, nil
}

func (r *resolver) validate(descriptor *Descriptor) error {
	mediaType := typeFromExtension(descriptor.Filename)
	if !hasExtension(descriptor.Filename) {
		sniffed, stream, err := sniffType(descriptor.Stream)
		if err != nil {
			return err
		}
		descriptor.Stream = stream
		mediaType = sniffed
	}
	descriptor.MediaType = mediaType

	category, ok := categoryOf(mediaType)
	switch {
	case !ok:
		return newValidationError(ReasonUnknownType, descriptor.Filename, descriptor.Size)
	case category == CategoryImage && descriptor.Size > MaxImageSize:
		return newValidationError(ReasonImageTooLarge, descriptor.Filename, descriptor.Size)
	case category == CategoryVideo && descriptor.Size > MaxVideoSize:
		return newValidationError(ReasonVideoTooLarge, descriptor.Filename, descriptor.Size)
	}
	descriptor.Category = category
	return nil
}
