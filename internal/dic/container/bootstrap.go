package container

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/gentle-breeze49/birdkit/internal/cache"
	"github.com/gentle-breeze49/birdkit/internal/config"
	"github.com/gentle-breeze49/birdkit/internal/dic"
	"github.com/gentle-breeze49/birdkit/internal/logger"
	"github.com/gentle-breeze49/birdkit/internal/observability"
)

// Bootstrap builds the container, connects the external services and
// returns a context cancelled on SIGTERM or SIGINT.
func Bootstrap() (context.Context, context.CancelFunc, error) {
	err := BuildContainer()
	if err != nil {
		return nil, nil, err
	}

	globalContext, cancelFunc := context.WithCancel(context.Background())

	log := dic.GetService[logger.Logger]()
	conf := dic.GetService[config.Config]()

	log.WithField("pid", os.Getpid()).Debug("birdkit starting")

	if conf.SentryDSN != "" {
		if err := observability.Init(conf.SentryDSN); err != nil {
			cancelFunc()
			return nil, nil, err //nolint:wrapcheck
		}
		log.Info("sentry initialized, errors will be reported")
	}

	if redisClient, exist := dic.LookupService[*cache.RedisClient](); exist {
		if err := redisClient.Ping(globalContext); err != nil {
			cancelFunc()
			return nil, nil, errors.Wrap(err, "unable to connect to redis")
		}
		log.WithField("addr", conf.RedisAddress).Info("connected to redis")
	} else {
		log.WithField("size", conf.CacheSize).Debug("using in process cache")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh,
		syscall.SIGTERM,
		syscall.SIGINT,
	)

	go func() {
		select {
		case s := <-sigCh:
			log.WithField("signal", s.String()).Info("signal received, stopping")
			cancelFunc()
		case <-globalContext.Done():
		}
		signal.Stop(sigCh)
	}()

	return globalContext, cancelFunc, nil
}
