package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Environment variables read when the logger is first used.
const (
	EnvLevel  = "INVOKER_LOGGING_LEVEL"
	EnvFormat = "INVOKER_LOGGING_FORMAT"
)

const defaultLevel = logrus.WarnLevel

var (
	lg   *logrus.Logger
	once sync.Once
)

// Logger returns the logger of the invoker
func Logger() *logrus.Logger {
	once.Do(func() {
		lg = logrus.New()
		lg.SetOutput(os.Stderr)

		level, err := logrus.ParseLevel(os.Getenv(EnvLevel))
		if err != nil {
			level = defaultLevel
		}
		lg.SetLevel(level)
		lg.SetFormatter(formatter(os.Getenv(EnvFormat)))
	})

	return lg
}

// Configure overrides the level and the format of the logger. Empty values keep the
// current setting.
func Configure(level, format string) error {
	l := Logger()

	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}
		l.SetLevel(lvl)
	}

	if format != "" {
		l.SetFormatter(formatter(format))
	}

	return nil
}

func formatter(format string) logrus.Formatter {
	if strings.EqualFold(format, "json") {
		return &logrus.JSONFormatter{}
	}

	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000 MST",
	}
}
