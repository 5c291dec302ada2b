package logger

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path"
	"strings"

	"github.com/op/go-logging"
)

var logLevels = map[string]logging.Level{
	"CRITICAL": logging.CRITICAL,
	"ERROR":    logging.ERROR,
	"WARNING":  logging.WARNING,
	"NOTICE":   logging.NOTICE,
	"INFO":     logging.INFO,
	"DEBUG":    logging.DEBUG,
}

/*
InitLogger creates and returns a logger suitable for logging
human-readable messages to writer. The bucket tester passes
os.Stderr, so every diagnostic ends up on the error stream.
*/
func InitLogger(writer io.Writer, logLevel logging.Level) *logging.Logger {
	processName := path.Base(os.Args[0])
	log := logging.MustGetLogger(processName)
	format := logging.MustStringFormatter("[%{level}] %{message}")
	logBackend := logging.NewLogBackend(writer, "", stdlog.LstdFlags|stdlog.LUTC)
	formatted := logging.NewBackendFormatter(logBackend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logLevel, processName)
	log.SetBackend(leveled)
	return log
}

// ParseLevel converts a level name such as "INFO" or "debug" into a
// logging.Level. Unknown names return an error.
func ParseLevel(name string) (logging.Level, error) {
	level, ok := logLevels[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return logging.INFO, fmt.Errorf("unknown log level '%s'", name)
	}
	return level, nil
}
