package observability

import (
	"context"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

func Init(dsn string) error {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		TracesSampleRate: 1.0,
		AttachStacktrace: true,
		EnableTracing:    true,
	})
	if err != nil {
		return errors.Wrap(err, "unable to init sentry")
	}
	return nil
}

// StartSpan starts a child of the transaction carried by ctx. It returns nil
// when there is none, FinishSpan accepts it.
func StartSpan(ctx context.Context, name string, data map[string]any) *sentry.Span {
	transaction := sentry.TransactionFromContext(ctx)
	if transaction == nil {
		return nil
	}
	return transaction.StartChild(name, func(s *sentry.Span) {
		s.Data = data
	})
}

func FinishSpan(span *sentry.Span) {
	if span != nil {
		span.Finish()
	}
}

func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		sentry.CaptureException(err)
	})
}
