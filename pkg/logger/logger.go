// pkg/logger/logger.go
package logger

import (
	"log"
	"os"
	"path/filepath"
)

// Logger is a wrapper around the standard log.Logger writing to a run log file.
type Logger struct {
	*log.Logger
	file *os.File
}

// New creates a logger appending to the file at path, creating the parent
// directory on first run.
func New(path string) (*Logger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	return &Logger{
		Logger: log.New(f, "", log.LstdFlags),
		file:   f,
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(v ...interface{}) {
	l.print("INFO:", v...)
}

// Error logs an error message.
func (l *Logger) Error(v ...interface{}) {
	l.print("ERROR:", v...)
}

// Warn logs a warning message.
func (l *Logger) Warn(v ...interface{}) {
	l.print("WARN:", v...)
}

func (l *Logger) print(level string, v ...interface{}) {
	l.Println(append([]interface{}{level}, v...)...)
}

// Close closes the underlying log file.
func (l *Logger) Close() error {
	return l.file.Close()
}
