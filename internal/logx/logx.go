package logx

import (
	"log"
	"os"
	"sync/atomic"
)

var (
	debugEnabled atomic.Bool
	logger       = log.New(os.Stderr, "[debug] ", log.LstdFlags)
)

// Logger is the logging capability handed to components that want their
// decisions observable without writing to process-wide output.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// EnableDebug toggles runtime debug logging.
func EnableDebug(enable bool) {
	debugEnabled.Store(enable)
}

// Debugf prints a formatted message when debug logging is enabled.
func Debugf(format string, args ...interface{}) {
	if !debugEnabled.Load() {
		return
	}
	logger.Printf(format, args...)
}

type stdLogger struct{}

func (stdLogger) Debugf(format string, args ...interface{}) {
	Debugf(format, args...)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

// Default returns a Logger backed by the process-wide debug logger,
// honoring EnableDebug.
func Default() Logger {
	return stdLogger{}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}
