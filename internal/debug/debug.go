package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "FLOW_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  *log.Logger
)

// Logger returns the shared debug logger. On first use it opens the file
// named by FLOW_DEBUG; without it (or when the file cannot be opened) the
// logger discards everything.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		if path := os.Getenv(EnvVar); path != "" {
			if err := initLocked(path); err == nil {
				return logger
			}
		}
		logger = newLogger(io.Discard)
	}
	return logger
}

// Init directs debug logging to the specified file path.
// If path is empty, uses "flow-debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "flow-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	if logger == nil {
		logger = newLogger(f)
	} else {
		logger.SetOutput(f)
		logger.SetLevel(log.DebugLevel)
	}
	return nil
}

// Close closes the debug log file and reverts to discarding.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	if logger != nil {
		logger.SetOutput(io.Discard)
	}
	return err
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.DebugLevel,
		Prefix:          "layout",
	})
}
