// internal/logging/logging.go
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the application wide logger. It is usable before Init is called.
var Log = NewLogger("info", os.Stdout)

// Init sets the level of the global logger.
func Init(level string) {
	Log.SetLevel(parseLevel(level))
}

// NewLogger creates a JSON logger writing to out with the given level.
func NewLogger(level string, out io.Writer) *logrus.Logger {
	log := logrus.New()

	// Using JSON format for structured logging.
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(out)
	log.SetLevel(parseLevel(level))

	return log
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
