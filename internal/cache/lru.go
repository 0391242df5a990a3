package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

type lruEntry[T any] struct {
	value     T
	expiresAt time.Time
}

// lruCache keeps values in process, the least recently used entries being
// evicted once size is reached.
type lruCache[T any] struct {
	entries        *lru.Cache[string, lruEntry[T]]
	defaultOptions []Option
	now            func() time.Time
}

func CreateLRUCache[T any](size int, defaultOpts ...Option) (Cache[T], error) {
	entries, err := lru.New[string, lruEntry[T]](size)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create lru cache")
	}
	return &lruCache[T]{
		entries:        entries,
		defaultOptions: defaultOpts,
		now:            time.Now,
	}, nil
}

func (l *lruCache[T]) Set(_ context.Context, key string, value T, opts ...Option) error {
	entry := lruEntry[T]{value: value}
	if ttl := ttlFrom(l.defaultOptions, opts); ttl > 0 {
		entry.expiresAt = l.now().Add(ttl)
	}
	l.entries.Add(key, entry)
	return nil
}

func (l *lruCache[T]) Get(_ context.Context, key string) (*T, error) {
	entry, ok := l.entries.Get(key)
	if !ok {
		return nil, ErrMiss
	}
	if !entry.expiresAt.IsZero() && !l.now().Before(entry.expiresAt) {
		l.entries.Remove(key)
		return nil, ErrMiss
	}
	value := entry.value
	return &value, nil
}

func (l *lruCache[T]) Delete(_ context.Context, key string) error {
	l.entries.Remove(key)
	return nil
}
