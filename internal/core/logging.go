package core

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const logTimestampFormat = "2006-01-02 15:04:05"

// NewLogger returns a logger intended to be used for general application logs,
// along with a Closer for its output. Callers should close it once they are
// done logging; closing is a no-op when logging to stdout.
func NewLogger(cfg *Config) (*logrus.Logger, io.Closer, error) {
	logLvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing log level: %w", err)
	}

	formatter, err := newFormatter(cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}

	var out io.WriteCloser = nopCloser{os.Stdout}
	if cfg.LogFilePath != "" {
		f, err := os.OpenFile(cfg.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file %s: %w", cfg.LogFilePath, err)
		}
		out = f
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(formatter)
	logger.SetLevel(logLvl)
	return logger, out, nil
}

func newFormatter(format string) (logrus.Formatter, error) {
	switch format {
	case "", "text":
		return &logrus.TextFormatter{
			TimestampFormat: logTimestampFormat,
			FullTimestamp:   true,
			DisableSorting:  true,
		}, nil
	case "json":
		return &logrus.JSONFormatter{TimestampFormat: logTimestampFormat}, nil
	default:
		return nil, fmt.Errorf("unknown log format %q, want text or json", format)
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
