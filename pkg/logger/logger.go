package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mock/logger_mock.go -package=mock github.com/savioruz/kickmatch/pkg/logger Interface

type Interface interface {
	Debug(message interface{}, args ...interface{})
	Info(message interface{}, args ...interface{})
	Warn(message interface{}, args ...interface{})
	Error(message interface{}, args ...interface{})
	Fatal(message interface{}, args ...interface{})
}

type Logger struct {
	logger *zerolog.Logger
}

var _ Interface = (*Logger)(nil)

func New(level string) *Logger {
	return NewWithWriter(level, os.Stdout)
}

func NewWithWriter(level string, w io.Writer) *Logger {
	var l zerolog.Level

	switch strings.ToLower(level) {
	case "debug":
		l = zerolog.DebugLevel
	case "info":
		l = zerolog.InfoLevel
	case "warn":
		l = zerolog.WarnLevel
	case "error":
		l = zerolog.ErrorLevel
	default:
		l = zerolog.InfoLevel
	}

	skipFrameCount := 3
	logger := zerolog.New(w).
		Level(l).
		With().
		Timestamp().
		CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + skipFrameCount).
		Logger()

	return &Logger{
		logger: &logger,
	}
}

func (l *Logger) Debug(message interface{}, args ...interface{}) {
	l.logger.Debug().Msg(render("debug", message, args...))
}

func (l *Logger) Info(message interface{}, args ...interface{}) {
	l.logger.Info().Msg(render("info", message, args...))
}

func (l *Logger) Warn(message interface{}, args ...interface{}) {
	l.logger.Warn().Msg(render("warn", message, args...))
}

func (l *Logger) Error(message interface{}, args ...interface{}) {
	l.logger.Error().Msg(render("error", message, args...))
}

func (l *Logger) Fatal(message interface{}, args ...interface{}) {
	l.logger.Fatal().Msg(render("fatal", message, args...))
}

// render supports two call shapes: ("plain %s", arg) and the identifier form
// ("service - booking - %s", "create - failed: %v", err) where the first argument
// is itself a format consuming the remaining arguments.
func render(level string, message interface{}, args ...interface{}) string {
	var format string

	switch msg := message.(type) {
	case error:
		format = msg.Error()
	case string:
		format = msg
	default:
		return fmt.Sprintf("%s message %v has an unknown type %T", level, message, message)
	}

	if len(args) == 0 {
		return format
	}

	if inner, ok := args[0].(string); ok && strings.Count(format, "%") == 1 && strings.HasSuffix(format, "%s") {
		if len(args) > 1 {
			inner = fmt.Sprintf(inner, args[1:]...)
		}

		return fmt.Sprintf(format, inner)
	}

	return fmt.Sprintf(format, args...)
}
