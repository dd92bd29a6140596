package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Config controls output of the process-wide logger.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json or text
}

// New builds a configured logrus logger. Unknown levels fall back to info.
func New(cfg Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return log
}
