package config

import (
	"net/url"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	APIHost           *url.URL      `mapstructure:"-"`
	Token             string        `mapstructure:"token"`
	LogLevel          logrus.Level  `mapstructure:"-"`
	RedisAddress      string        `mapstructure:"redis_address"`
	CacheSize         int           `mapstructure:"cache_size"`
	UserCacheTTL      time.Duration `mapstructure:"-"`
	StatusCacheTTL    time.Duration `mapstructure:"-"`
	ShortURLLength    int           `mapstructure:"short_url_length"`
	CharacterLimit    int           `mapstructure:"character_limit"`
	MediaFetchTimeout time.Duration `mapstructure:"-"`
	SentryDSN         string        `mapstructure:"sentry_dsn"`
	ConsumerKey       string        `mapstructure:"consumer_key"`
	ConsumerSecret    string        `mapstructure:"consumer_secret"`
	AccessToken       string        `mapstructure:"access_token"`
	AccessSecret      string        `mapstructure:"access_secret"`
}

type Loader interface {
	Load() error
	Get() Config
}

type configLoader struct {
	conf Config
}

func NewLoader() *configLoader {
	return &configLoader{}
}

func (l *configLoader) Get() Config {
	return l.conf
}

func setDefaults() {
	viper.SetDefault("api_host", "https://api.twitter.com")
	viper.SetDefault("token", "")
	viper.SetDefault("redis_address", "")
	viper.SetDefault("sentry_dsn", "")
	viper.SetDefault("consumer_key", "")
	viper.SetDefault("consumer_secret", "")
	viper.SetDefault("access_token", "")
	viper.SetDefault("access_secret", "")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("cache_size", 1000)
	viper.SetDefault("cache_user_ttl", "1h")
	viper.SetDefault("cache_status_ttl", "1h")
	viper.SetDefault("short_url_length", 23)
	viper.SetDefault("character_limit", 280)
	viper.SetDefault("media_fetch_timeout", "30s")
}

func (l *configLoader) Load() error {
	conf := &Config{}

	viper.SetEnvPrefix("birdkit")
	viper.AutomaticEnv()
	setDefaults()

	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	if _, err := os.Stat(".env"); err == nil {
		viper.SetConfigFile(".env")
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrap(err, "unable to read config from .env")
		}
	}
	if _, err := os.Stat(".env.local"); err == nil {
		viper.SetConfigFile(".env.local")
		_ = viper.MergeInConfig()
	}

	err := viper.Unmarshal(conf)
	if err != nil {
		return errors.Wrap(err, "unable to deserialize configuration")
	}

	conf.APIHost, err = url.Parse(viper.GetString("api_host"))
	if err != nil {
		return errors.Wrap(err, "unable to parse api host")
	}
	if conf.APIHost.Scheme == "" || conf.APIHost.Host == "" {
		return errors.Errorf("api host must be an absolute url, got %q", conf.APIHost.String())
	}

	conf.LogLevel, err = logrus.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		return errors.Wrap(err, "unable to parse log level")
	}

	conf.UserCacheTTL, err = time.ParseDuration(viper.GetString("cache_user_ttl"))
	if err != nil {
		return errors.Wrap(err, "unable to parse twitter user cache ttl")
	}
	conf.StatusCacheTTL, err = time.ParseDuration(viper.GetString("cache_status_ttl"))
	if err != nil {
		return errors.Wrap(err, "unable to parse status cache ttl")
	}
	conf.MediaFetchTimeout, err = time.ParseDuration(viper.GetString("media_fetch_timeout"))
	if err != nil {
		return errors.Wrap(err, "unable to parse media fetch timeout")
	}

	if conf.ShortURLLength <= 0 {
		return errors.New("short url length must be positive")
	}
	if conf.CharacterLimit <= 0 {
		return errors.New("character limit must be positive")
	}
	if conf.CacheSize <= 0 {
		return errors.New("cache size must be positive")
	}
	oauthKeys := []string{conf.ConsumerKey, conf.ConsumerSecret, conf.AccessToken, conf.AccessSecret}
	set := 0
	for _, key := range oauthKeys {
		if key != "" {
			set++
		}
	}
	if set != 0 && set != len(oauthKeys) {
		return errors.New("oauth1 credentials are incomplete")
	}

	l.conf = *conf
	return nil
}
