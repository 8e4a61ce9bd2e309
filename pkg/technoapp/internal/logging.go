package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	logFile       *os.File
	logPath       string
	consoleOutput = true

	setupOnce   sync.Once
	multiWriter io.Writer = os.Stdout

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   = &slog.LevelVar{}

	sessionID = uuid.NewString()
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. Call before the first
// logger is requested.
func SetLogPath(path string) {
	logPath = path
}

// SessionID identifies this run in every log line.
func SessionID() string {
	return sessionID
}

// SetConsoleOutput turns the stdout copy of log records on or off. The
// terminal shell owns stdout, so it logs to the file only. Call before the
// first logger is requested.
func SetConsoleOutput(enabled bool) {
	consoleOutput = enabled
}

func setup() {
	setupOnce.Do(func() {
		var writers []io.Writer
		if consoleOutput {
			writers = append(writers, os.Stdout)
		}
		if f := openLogFile(); f != nil {
			logFile = f
			writers = append(writers, f)
		}
		multiWriter = io.MultiWriter(writers...)
	})
}

func openLogFile() *os.File {
	if logPath == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// Can't open log file, fall back to console-only
		return nil
	}
	return f
}

func newJSONLogger(level *slog.LevelVar, component string) *slog.Logger {
	setup()

	handler := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	})
	return slog.New(handler).With("session", sessionID, "component", component)
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		logger = newJSONLogger(levelVar, "app")
	})
	return logger
}

// GetInternalLogger returns the logger used by the shell itself.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLogger = newJSONLogger(internalLevelVar, "shell")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLevelVar.Set(level)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a level.
// Anything else is info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
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
