package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds configuration for the logger
type Config struct {
	// Level is a logrus level name, defaults to info
	Level string

	// Output defaults to stderr
	Output io.Writer
}

// New creates a text logger with full date-time stamps
func New(cfg *Config) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: time.DateTime,
		FullTimestamp:   true,
	})
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)

	if cfg == nil {
		return l, nil
	}
	if cfg.Output != nil {
		l.SetOutput(cfg.Output)
	}
	if cfg.Level != "" {
		level, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		l.SetLevel(level)
	}
	return l, nil
}
