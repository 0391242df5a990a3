package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

type Option any

// OptionTTL sets how long an entry stays valid, zero means forever.
type OptionTTL time.Duration

var ErrMiss = errors.New("cache key not found")

//go:generate mockery --with-expecter --name Cache
type Cache[T any] interface {
	Set(ctx context.Context, key string, value T, opts ...Option) error
	Get(ctx context.Context, key string) (*T, error)
	Delete(ctx context.Context, key string) error
}

// ttlFrom returns the last OptionTTL found, call options taking precedence
// over the defaults.
func ttlFrom(defaults []Option, opts []Option) time.Duration {
	var ttl time.Duration
	for _, opt := range append(append([]Option{}, defaults...), opts...) {
		if t, ok := opt.(OptionTTL); ok {
			ttl = time.Duration(t)
		}
	}
	return ttl
}
