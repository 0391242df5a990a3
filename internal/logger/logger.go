package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/gentle-breeze49/birdkit/internal/config"
)

type Logger interface {
	logrus.FieldLogger
}

type logger struct {
	logrus.FieldLogger
}

// CreateLogger writes to stderr so the library never pollutes the output of
// the program embedding it. Every entry carries the API host it talks to.
func CreateLogger(conf *config.Config) *logger {
	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{
		DisableQuote: true,
	}
	log.SetLevel(conf.LogLevel)

	fields := logrus.Fields{"lib": "birdkit"}
	if conf.APIHost != nil {
		fields["api_host"] = conf.APIHost.Host
	}
	return &logger{
		FieldLogger: log.WithFields(fields),
	}
}
