// Package logger provides the process-wide structured logger.
package logger

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the shared logger instance. Services log through the
// package-level helpers below.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
})

// Configure sets the log level from configuration; unknown values keep
// the info default.
func Configure(level string) {
	switch strings.ToLower(level) {
	case "debug":
		Logger.SetLevel(log.DebugLevel)
	case "warn":
		Logger.SetLevel(log.WarnLevel)
	case "error":
		Logger.SetLevel(log.ErrorLevel)
	default:
		Logger.SetLevel(log.InfoLevel)
	}
}

func Debug(msg string, keyvals ...any) { Logger.Debug(msg, keyvals...) }
func Info(msg string, keyvals ...any)  { Logger.Info(msg, keyvals...) }
func Warn(msg string, keyvals ...any)  { Logger.Warn(msg, keyvals...) }
func Error(msg string, keyvals ...any) { Logger.Error(msg, keyvals...) }
func Fatal(msg string, keyvals ...any) { Logger.Fatal(msg, keyvals...) }
