// Package logging configures the process-wide zerolog logger.
//
// Logs go to stderr and to a size-rotated file under the XDG state
// directory. Lint failures are not logs: they are written by the reporter.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFile is the log path relative to the XDG state directory.
const LogFile = "jenkins-job-linter/jenkins-job-linter.log"

const (
	logMaxSizeMB   = 10
	logMaxBackups  = 3
	logMaxAgeDays  = 28
	logCompression = true
)

var (
	mu      sync.Mutex
	logFile io.WriteCloser
)

// LevelForVerbosity maps the -v count to a log level.
func LevelForVerbosity(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetupLogger configures the global logger based on verbosity level
// It sets up dual output to both console and a log file
func SetupLogger(verbosity int) {
	SetupLoggerTo(os.Stderr, verbosity)
}

// SetupLoggerTo is SetupLogger with an explicit console writer.
func SetupLoggerTo(console io.Writer, verbosity int) {
	mu.Lock()
	defer mu.Unlock()

	zerolog.SetGlobalLevel(LevelForVerbosity(verbosity))

	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(console),
	}

	writers := []io.Writer{consoleWriter}

	closeLogFile()
	path, err := getLogFilePath()
	if err == nil {
		logFile = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
			Compress:   logCompression,
		}
		writers = append(writers, logFile)
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	if err != nil {
		log.Warn().Err(err).Msg("Failed to create log file, logging to console only")
	}

	// Add caller information for debug and trace levels
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Str("logFile", path).Msg("Logger initialized")
}

// Close flushes and closes the log file, if one is open.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLogFile()
}

func closeLogFile() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// getLogFilePath returns the log file path under XDG_STATE_HOME, creating
// its parent directories.
func getLogFilePath() (string, error) {
	return xdg.StateFile(LogFile)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
