package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logsDir           = "logs"
	fileBufferSize    = 32 * 1024
	consoleBufferSize = 4096
)

// Closer flushes and releases the log sinks. It is safe to call once.
type Closer func()

// NewLogger builds the process logger. Entries are JSON, written
// asynchronously to logs/<name>.log and echoed on the console.
func NewLogger(name string) (*logrus.Logger, Closer) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})

	if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	if name == "" {
		name = "inclusionguard"
	}
	logFile := filepath.Clean(filepath.Join(logsDir, fmt.Sprintf("%s.log", name)))
	if !strings.HasPrefix(logFile, logsDir+string(filepath.Separator)) {
		log.Fatalf("Invalid log file path: must be in logs directory")
	}

	if err := os.MkdirAll(logsDir, 0750); err != nil {
		log.Fatalf("Failed to create logs directory: %v", err)
	}

	asyncWriter, err := NewAsyncFileWriter(logFile, fileBufferSize)
	if err != nil {
		log.Fatalf("Failed to initialize async log writer: %v", err)
	}
	logger.SetOutput(asyncWriter)

	consoleHook := NewAsyncConsoleHook(consoleBufferSize)
	logger.AddHook(NewSensitiveFieldsHook())
	logger.AddHook(consoleHook)

	return logger, func() {
		consoleHook.Close()
		asyncWriter.Close()
	}
}
