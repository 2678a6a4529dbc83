package telegram

import "github.com/amarnathcjd/tgloop/internal/utils"

type (
	Logger   = utils.Logger
	LogLevel = utils.LogLevel
)

const (
	LogTrace   = utils.TraceLevel
	LogDebug   = utils.DebugLevel
	LogInfo    = utils.InfoLevel
	LogWarn    = utils.WarnLevel
	LogError   = utils.ErrorLevel
	LogDisable = utils.NoLevel
)

// NewLogger returns the default console logger at the given level.
func NewLogger(prefix string, level LogLevel) *Logger {
	return utils.NewLogger(prefix).SetLevel(level)
}

// ParseLogLevel maps "debug", "info", ... to a LogLevel.
func ParseLogLevel(s string) LogLevel {
	return utils.ParseLevel(s)
}
