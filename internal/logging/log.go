package logging

import (
	"io"
	"log"
	"os"
)

// Logger writes leveled lines to a log.Logger.
type Logger struct {
	l *log.Logger
}

func New(w io.Writer) *Logger {
	return &Logger{l: log.New(w, "", log.LstdFlags)}
}

var std = New(os.Stderr)

// Default returns the process-wide logger.
func Default() *Logger {
	return std
}

func (lg *Logger) Infof(format string, v ...any) {
	lg.l.Printf("[INFO] "+format, v...)
}

func (lg *Logger) Errorf(format string, v ...any) {
	lg.l.Printf("[ERROR] "+format, v...)
}

func (lg *Logger) Fatalf(format string, v ...any) {
	lg.l.Fatalf("[FATAL] "+format, v...)
}

func Infof(format string, v ...any) {
	std.Infof(format, v...)
}

func Errorf(format string, v ...any) {
	std.Errorf(format, v...)
}

func Fatalf(format string, v ...any) {
	std.Fatalf(format, v...)
}
