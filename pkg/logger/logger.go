package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds the process logger. Production and Lambda get JSON output so
// CloudWatch can index the fields; everything else gets text.
func New(lvl string, environment string, serverless bool) *logrus.Logger {
	return NewWithOutput(os.Stdout, lvl, environment, serverless)
}

// NewWithOutput is New with an explicit writer
func NewWithOutput(out io.Writer, lvl string, environment string, serverless bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(parseLevel(lvl))

	env := strings.ToLower(environment)
	if serverless || env == "prod" || env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
