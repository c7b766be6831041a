// Package log provides structured diagnostic logging backed by logrus.
//
// Diagnostics are always emitted to stderr, since the CLI contract promises one
// diagnostic line per failure and a warning line per skipped batch entry.
// When persistent logging is enabled, output is mirrored to a dated file.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tubescribe-cli/tubescribe/filesystem"
	"github.com/tubescribe-cli/tubescribe/key"
	"github.com/tubescribe-cli/tubescribe/where"
)

// Setup initializes the logging subsystem, including the optional file mirror, formatting, and severity levels.
func Setup() error {
	logrus.SetOutput(os.Stderr)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	if !viper.GetBool(key.LogsWrite) {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	filename := fmt.Sprintf("%s.log", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, filename)

	if exists := lo.Must(filesystem.API().Exists(path)); !exists {
		lo.Must(filesystem.API().Create(path))
	}

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(io.MultiWriter(os.Stderr, f))

	return nil
}

// Severity-Specific Log Emissions - these functions proxy messages to the configured logrus backend.

func Error(args ...interface{}) {
	logrus.Error(args...)
}
func Errorf(format string, args ...interface{}) {
	logrus.Errorf(format, args...)
}
func Warn(args ...interface{}) {
	logrus.Warn(args...)
}
func Warnf(format string, args ...interface{}) {
	logrus.Warnf(format, args...)
}
func Info(args ...interface{}) {
	logrus.Info(args...)
}
func Infof(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}
func Debug(args ...interface{}) {
	logrus.Debug(args...)
}
func Debugf(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}
