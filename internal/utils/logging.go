package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type LogLevel int

const (
	TraceLevel LogLevel = iota + 1
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	NoLevel
)

func (l LogLevel) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case NoLevel:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) zerolog() zerolog.Level {
	switch l {
	case TraceLevel:
		return zerolog.TraceLevel
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

// ParseLevel accepts the names used in config files (trace, debug, info,
// warn, error, disable). Unknown names map to InfoLevel.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TraceLevel
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "disable", "disabled", "none", "off":
		return NoLevel
	default:
		return InfoLevel
	}
}

type LoggerConfig struct {
	Level           LogLevel
	Prefix          string
	Output          io.Writer
	Color           bool
	JSON            bool
	TimestampFormat string
}

func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:           InfoLevel,
		Output:          os.Stdout,
		Color:           true,
		TimestampFormat: "15:04:05.000",
	}
}

// Logger is a leveled, prefixed logger. Loggers are values derived from one
// another; With* methods never modify the receiver.
type Logger struct {
	zl     zerolog.Logger
	level LogLevel
}

func NewLogger(prefix string) *Logger {
	config := DefaultConfig()
	config.Prefix = prefix
	return NewLoggerWithConfig(config)
}

func NewLoggerWithConfig(config *LoggerConfig) *Logger {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Level == 0 {
		config.Level = InfoLevel
	}
	if config.Output == nil {
		config.Output = os.Stdout
	}
	if config.TimestampFormat == "" {
		config.TimestampFormat = "15:04:05.000"
	}

	out := config.Output
	if !config.JSON {
		out = zerolog.ConsoleWriter{
			Out:        config.Output,
			NoColor:    !config.Color || !isTerminal(config.Output),
			TimeFormat: config.TimestampFormat,
		}
	}

	ctx := zerolog.New(out).With().Timestamp()
	if config.Prefix != "" {
		ctx = ctx.Str("prefix", config.Prefix)
	}

	return &Logger{
		zl:    ctx.Logger().Level(config.Level.zerolog()),
		level: config.Level,
	}
}

// Nop returns a Logger that discards everything; meant for tests.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop(), level: NoLevel}
}

func (l *Logger) clone(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl, level: l.level}
}

func (l *Logger) WithPrefix(prefix string) *Logger {
	return l.clone(l.zl.With().Str("prefix", prefix).Logger())
}

func (l *Logger) WithField(key string, value any) *Logger {
	return l.clone(l.zl.With().Interface(key, value).Logger())
}

func (l *Logger) WithFields(fields map[string]any) *Logger {
	return l.clone(l.zl.With().Fields(fields).Logger())
}

func (l *Logger) WithError(err error) *Logger {
	return l.clone(l.zl.With().Err(err).Logger())
}

func (l *Logger) SetLevel(level LogLevel) *Logger {
	if level == 0 {
		level = InfoLevel
	}
	l.level = level
	l.zl = l.zl.Level(level.zerolog())
	return l
}

func (l *Logger) GetLevel() LogLevel {
	return l.level
}

func (l *Logger) Lev() LogLevel {
	return l.GetLevel()
}

// core fn to log messages
func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if level < l.level || l.level == NoLevel {
		return
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	l.zl.WithLevel(level.zerolog()).Msg(msg)
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return f == os.Stdout || f == os.Stderr
	}
	return false
}

func (l *Logger) Trace(msg string, args ...any) { l.log(TraceLevel, msg, args...) }
func (l *Logger) Debug(msg string, args ...any) { l.log(DebugLevel, msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.log(InfoLevel, msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(WarnLevel, msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log(ErrorLevel, msg, args...) }

// Since is a small helper for "took %s" style messages.
func Since(t time.Time) string {
	return time.Since(t).Round(time.Millisecond).String()
}
