package mocks

import (
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type nullLogger struct {
	logrus.FieldLogger
}

func NewNullLogger() *nullLogger {
	logrusNullLogger, _ := test.NewNullLogger()
	return &nullLogger{logrusNullLogger}
}

// NewRecordingLogger returns a logger at trace level together with the hook
// holding every entry written to it.
func NewRecordingLogger() (*nullLogger, *test.Hook) {
	logrusNullLogger, hook := test.NewNullLogger()
	logrusNullLogger.SetLevel(logrus.TraceLevel)
	return &nullLogger{logrusNullLogger}, hook
}
