package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/Control-D-Inc/vpnhost"
)

var (
	configPath string
	verbose    int
	silent     bool
	readStdin  bool
	force      bool

	mainLog       atomic.Pointer[zerolog.Logger]
	consoleWriter zerolog.ConsoleWriter
)

func init() {
	l := zerolog.New(io.Discard)
	mainLog.Store(&l)
}

// Main is the entry point of the vpnhost command.
func Main() {
	rootCmd := initCLI()
	if err := rootCmd.Execute(); err != nil {
		mainLog.Load().Error().Msg(err.Error())
		os.Exit(1)
	}
}

// initConsoleLogging initializes console logging to w, then storing to mainLog.
func initConsoleLogging(w io.Writer) {
	consoleWriter = zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.TimeFormat = time.StampMilli
	})
	l := zerolog.New(consoleWriter).With().Timestamp().Logger()
	mainLog.Store(&l)
	vpnhost.ProxyLogger.Store(&l)
	switch {
	case silent:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case verbose == 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case verbose > 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// initLogging adds the configured log file to the console logger and applies
// the configured log level, unless overridden by -v or --silent.
func initLogging(cfg *vpnhost.Config) error {
	writers := []io.Writer{consoleWriter}
	if logFilePath := normalizeLogFilePath(cfg.Service.LogPath); logFilePath != "" {
		// Create parent directory if necessary.
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
			return fmt.Errorf("failed to create log path: %w", err)
		}
		logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_RDWR|os.O_APPEND, os.FileMode(0o600))
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		writers = append(writers, logFile)
	}
	multi := zerolog.MultiLevelWriter(writers...)
	l := mainLog.Load().Output(multi)
	mainLog.Store(&l)
	vpnhost.ProxyLogger.Store(&l)

	if silent || verbose > 0 || cfg.Service.LogLevel == "" {
		return nil
	}
	level, err := zerolog.ParseLevel(cfg.Service.LogLevel)
	if err != nil {
		mainLog.Load().Warn().Err(err).Msg("could not set log level")
		return nil
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

// normalizeLogFilePath resolves a relative log path against the home directory.
func normalizeLogFilePath(logFilePath string) string {
	if logFilePath == "" || filepath.IsAbs(logFilePath) {
		return logFilePath
	}
	dir, _ := os.UserHomeDir()
	if dir == "" {
		return logFilePath
	}
	return filepath.Join(dir, logFilePath)
}
