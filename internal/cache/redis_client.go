package cache

import (
	"context"
	"strings"

	"github.com/go-redis/redis/v9"
	"github.com/pkg/errors"
)

type RedisClient struct {
	client *redis.Client
}

// NewRedisClient accepts a plain host:port address or a redis:// url
// carrying credentials and database number.
func NewRedisClient(address string) (*RedisClient, error) {
	opts := &redis.Options{Addr: address}
	if strings.Contains(address, "://") {
		var err error
		opts, err = redis.ParseURL(address)
		if err != nil {
			return nil, errors.Wrap(err, "unable to parse redis url")
		}
	}
	return &RedisClient{
		client: redis.NewClient(opts),
	}, nil
}

func (r RedisClient) Client() *redis.Client {
	return r.client
}

func (r RedisClient) Ping(ctx context.Context) error {
	err := r.client.Ping(ctx).Err()
	if err != nil {
		return errors.Wrap(err, "unable to reach redis")
	}
	return nil
}

func (r RedisClient) Close() error {
	return errors.Wrap(r.client.Close(), "unable to close redis client")
}
