// Package log provides structured logging with filesystem-based persistence.
//
// Logging is off unless logs.write is set; until then every entry is discarded.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/printstack/printstack/filesystem"
	"github.com/printstack/printstack/key"
	"github.com/printstack/printstack/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var logger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Fields is an alias so callers do not have to import logrus.
type Fields = logrus.Fields

// Setup configures the logger from the current configuration.
func Setup() error {
	if !viper.GetBool(key.LogsWrite) {
		logger = newDiscardLogger()
		return nil
	}

	path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	return SetupWriter(f)
}

// SetupWriter points the logger at w, applying the configured format and level.
func SetupWriter(w io.Writer) error {
	l := logrus.New()
	l.SetOutput(w)

	if viper.GetBool(key.LogsJson) {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	logger = l
	return nil
}

// WithFields returns an entry carrying the given fields.
func WithFields(fields Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

// WithField returns an entry carrying a single field.
func WithField(k string, v any) *logrus.Entry {
	return logger.WithField(k, v)
}

func Error(args ...any)                 { logger.Error(args...) }
func Errorf(format string, args ...any) { logger.Errorf(format, args...) }
func Warn(args ...any)                  { logger.Warn(args...) }
func Warnf(format string, args ...any)  { logger.Warnf(format, args...) }
func Info(args ...any)                  { logger.Info(args...) }
func Infof(format string, args ...any)  { logger.Infof(format, args...) }
func Debug(args ...any)                 { logger.Debug(args...) }
func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
