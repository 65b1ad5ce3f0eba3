// internal/infra/logger/logger.go
package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds a logger for the given level and environment writing to out.
func New(level, environment string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	// Set Log Level
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.Warnf("Invalid log level '%s', defaulting to 'info'. Error: %v", level, err)
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetLevel(lvl)
	}

	// Set Log Formatter
	if env := strings.ToLower(environment); env == "production" || env == "staging" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00", // ISO8601
		})
	} else { // Development or other environments
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	log.Debugf("Log level set to: %s", log.GetLevel().String())
	log.Debugf("Log format set for environment: %s", environment)
	return log
}
