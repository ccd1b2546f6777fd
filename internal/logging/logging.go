package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"timeblock-stats/internal/config"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the rotating log file created inside the log folder.
const LogFileName = "timeblock-stats.log"

// Init initializes the global logger with dual sinks: os.Stderr and a rotating file.
// Stdout is reserved for the report and never receives log output.
// It returns the run ID attached to every log event.
func Init(cfg *config.AppConfig, verbose bool) string {
	// 1. Determine log level
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	// 2. Setup Stderr Writer (Console)
	isTerminal := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal,
	}

	writers := []io.Writer{consoleWriter}

	// 3. Setup File Writer (Rotating)
	var fileErr error
	if cfg != nil && cfg.LogToFile {
		var fileWriter io.Writer
		fileWriter, fileErr = newFileWriter(cfg.LogDir)
		if fileErr == nil {
			writers = append(writers, fileWriter)
		}
	}

	// 4. Set Global Logger
	runID := uuid.NewString()
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Str("run_id", runID).
		Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", cfg.LogDir).Msg("File logging disabled")
	}

	return runID
}

// newFileWriter ensures logDir exists and is writable before handing it to lumberjack.
func newFileWriter(logDir string) (io.Writer, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, err
	}

	testFile := filepath.Join(logDir, ".write-test")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		return nil, err
	}
	_ = os.Remove(testFile)

	return &lumberjack.Logger{
		Filename:   filepath.Join(logDir, LogFileName),
		MaxSize:    16, // megabytes
		MaxBackups: 32,
		MaxAge:     365, // days
		Compress:   true,
	}, nil
}
