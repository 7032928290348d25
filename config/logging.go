package config

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

var validLogFormats = map[string]bool{
	"text": true, "json": true,
}

func (l LoggingConfig) Validate() error {
	if _, err := logrus.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", l.Level)
	}
	if !validLogFormats[l.Format] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", l.Format)
	}
	return nil
}

// NewLogger builds a logger writing to out with the configured level and
// format.
func (l LoggingConfig) NewLogger(out io.Writer) (*logrus.Logger, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	level, _ := logrus.ParseLevel(l.Level)

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	if l.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	return logger, nil
}
