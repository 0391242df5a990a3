package container

import (
	"net/http"
	"strings"

	gotwitter "github.com/g8rswimmer/go-twitter/v2"
	"github.com/pkg/errors"

	"github.com/gentle-breeze49/birdkit/internal/cache"
	"github.com/gentle-breeze49/birdkit/internal/config"
	"github.com/gentle-breeze49/birdkit/internal/dic"
	_http "github.com/gentle-breeze49/birdkit/internal/http"
	"github.com/gentle-breeze49/birdkit/internal/logger"
	"github.com/gentle-breeze49/birdkit/internal/twitter"
	"github.com/gentle-breeze49/birdkit/internal/twitter/legacy"
	"github.com/gentle-breeze49/birdkit/internal/twitter/media"
	"github.com/gentle-breeze49/birdkit/internal/twitter/models"
	twitterrepository "github.com/gentle-breeze49/birdkit/internal/twitter/repository"
)

func BuildContainer() error {
	loader := config.NewLoader()
	err := loader.Load()
	if err != nil {
		return errors.Wrap(err, "unable to load config")
	}
	conf := loader.Get()
	_ = dic.Register[config.Config](conf)
	_ = dic.Register[logger.Logger](logger.CreateLogger(&conf))
	log := dic.GetService[logger.Logger]()

	if err := registerCaches(conf); err != nil {
		return err
	}
	_ = dic.Register[twitterrepository.StatusRepository](twitterrepository.NewStatusRepository(
		dic.GetService[cache.Cache[models.Status]](),
	))

	loggingTransport := &logger.HTTPLoggerRoundTripper{
		RoundTripper: http.DefaultTransport,
		Log:          log,
	}
	authorizer := twitter.Authorizer{
		Token: conf.Token,
	}

	_ = dic.Register[twitter.Backend](&gotwitter.Client{
		Authorizer: authorizer,
		Client: &http.Client{
			Transport: loggingTransport,
		},
		Host: strings.TrimSuffix(conf.APIHost.String(), "/"),
	})
	_ = dic.Register[twitter.TwitterClient](twitter.NewClient(
		conf,
		log,
		dic.GetService[cache.Cache[models.User]](),
		dic.GetService[twitterrepository.StatusRepository](),
		dic.GetService[twitter.Backend](),
	))
	_ = dic.Register[legacy.Client](legacy.NewFromHTTPClient(
		log,
		legacyHTTPClient(conf, authorizer, loggingTransport),
	))

	_ = dic.Register[_http.Client](&http.Client{
		Timeout:   conf.MediaFetchTimeout,
		Transport: loggingTransport,
	})
	_ = dic.Register[media.Resolver](media.NewResolver(
		log,
		dic.GetService[_http.Client](),
	))

	return nil
}

// legacyHTTPClient signs v1.1 calls with the OAuth1 user context when it is
// configured, with the bearer token otherwise.
func legacyHTTPClient(conf config.Config, authorizer twitter.Authorizer, transport http.RoundTripper) *http.Client {
	creds := legacy.Credentials{
		ConsumerKey:    conf.ConsumerKey,
		ConsumerSecret: conf.ConsumerSecret,
		AccessToken:    conf.AccessToken,
		AccessSecret:   conf.AccessSecret,
	}
	if creds.Complete() {
		return legacy.NewUserContextHTTPClient(creds, transport)
	}
	return &http.Client{
		Transport: &twitter.AuthorizedTransport{
			Authorizer:   authorizer,
			RoundTripper: transport,
		},
	}
}

// registerCaches uses redis when an address is configured, an in process
// LRU otherwise.
func registerCaches(conf config.Config) error {
	userTTL := cache.OptionTTL(conf.UserCacheTTL)
	statusTTL := cache.OptionTTL(conf.StatusCacheTTL)

	if conf.RedisAddress != "" {
		redisClient, err := cache.NewRedisClient(conf.RedisAddress)
		if err != nil {
			return errors.Wrap(err, "unable to configure redis")
		}
		_ = dic.Register[*cache.RedisClient](redisClient)
		_ = dic.Register[cache.Cache[models.User]](cache.CreateRedisCache[models.User](redisClient, userTTL))
		_ = dic.Register[cache.Cache[models.Status]](cache.CreateRedisCache[models.Status](redisClient, statusTTL))
		return nil
	}

	userCache, err := cache.CreateLRUCache[models.User](conf.CacheSize, userTTL)
	if err != nil {
		return errors.Wrap(err, "unable to create twitter user cache")
	}
	_ = dic.Register[cache.Cache[models.User]](userCache)
	statusCache, err := cache.CreateLRUCache[models.Status](conf.CacheSize, statusTTL)
	if err != nil {
		return errors.Wrap(err, "unable to create status cache")
	}
	_ = dic.Register[cache.Cache[models.Status]](statusCache)
	return nil
}
