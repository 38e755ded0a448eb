package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const logDir = "logs"

var (
	logFile     *os.File
	logFilename string

	setupOnce sync.Once
	logWriter io.Writer = os.Stderr

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogFilename makes every logger also append to logs/<filename>.
// It has no effect once a logger has been built.
func SetLogFilename(filename string) {
	logFilename = filename
}

// SetLogOutput replaces the default stderr destination. Like SetLogFilename
// it must be called before the first logger is requested.
func SetLogOutput(w io.Writer) {
	logWriter = w
}

func setup() {
	setupOnce.Do(func() {
		if logFilename == "" {
			return
		}

		if err := os.MkdirAll(logDir, 0755); err != nil {
			slog.New(slog.NewJSONHandler(logWriter, nil)).Error("Failed to create logs directory", "error", err)
			return
		}

		var err error
		logFile, err = os.OpenFile(filepath.Join(logDir, logFilename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			slog.New(slog.NewJSONHandler(logWriter, nil)).Error("Failed to open log file", "error", err)
			return
		}

		logWriter = io.MultiWriter(logWriter, logFile)
	})
}

func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}

		setup()

		handler := slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler)
	})
	return logger
}

// GetInternalLogger is used for diagnostics emitted by the keyboard itself,
// such as layout inconsistencies and listener lifecycle.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLevelVar.Set(slog.LevelWarn)

		setup()

		handler := slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
			Level:     internalLevelVar,
			AddSource: false,
		})
		internalLogger = slog.New(handler).With("component", "softkeys")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps the usual level names onto slog levels, defaulting to info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
