package logger

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gentle-breeze49/birdkit/internal/observability"
)

// HTTPLoggerRoundTripper traces every request going through the wrapped
// transport.
type HTTPLoggerRoundTripper struct {
	RoundTripper http.RoundTripper
	Log          Logger
}

func (h *HTTPLoggerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	span := observability.StartSpan(req.Context(), "http.client", map[string]any{
		"http.method": req.Method,
		"http.url":    req.URL.String(),
	})
	start := time.Now()
	resp, err := h.transport().RoundTrip(req)
	observability.FinishSpan(span)

	fields := logrus.Fields{
		"host":     req.URL.Host,
		"method":   req.Method,
		"url":      req.URL.Path,
		"query":    req.URL.Query(),
		"duration": time.Since(start).String(),
	}
	if err != nil {
		h.Log.WithFields(fields).WithError(err).Debug("http call failed")
		return resp, err //nolint:wrapcheck
	}
	fields["status"] = resp.StatusCode
	h.Log.WithFields(fields).Trace("http call")
	return resp, nil
}

func (h *HTTPLoggerRoundTripper) transport() http.RoundTripper {
	if h.RoundTripper == nil {
		return http.DefaultTransport
	}
	return h.RoundTripper
}
