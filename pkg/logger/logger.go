package logger

import (
	"fmt"
	"io"
	"time"
)

type LogLevel string

const (
	DEBUG   LogLevel = "DEBUG"
	INFO    LogLevel = "INFO"
	WARNING LogLevel = "WARNING"
	ERROR   LogLevel = "ERROR"
)

var levelRank = map[LogLevel]int{
	DEBUG:   0,
	INFO:    1,
	WARNING: 2,
	ERROR:   3,
}

// Logger writes leveled, prefixed log lines for a single module.
// The context string carries per-request information (request id, "System" for
// process-level logging).
type Logger struct {
	out        io.Writer
	moduleName string
	level      LogLevel
	context    string
}

func NewLogger(out io.Writer, moduleName string, level LogLevel, context string) *Logger {
	if _, ok := levelRank[level]; !ok {
		level = INFO
	}
	return &Logger{
		out:        out,
		moduleName: moduleName,
		level:      level,
		context:    context,
	}
}

func (l *Logger) write(level LogLevel, format string, args ...any) {
	if levelRank[level] < levelRank[l.level] {
		return
	}
	fmt.Fprintf(l.out, "[%s] [%s] [%s] [%s] %s\n",
		time.Now().Format(time.RFC3339),
		level,
		l.moduleName,
		l.context,
		fmt.Sprintf(format, args...),
	)
}

func (l *Logger) Printf(format string, args ...any) {
	l.write(INFO, format, args...)
}

func (l *Logger) PrintfInfo(format string, args ...any) {
	l.write(INFO, format, args...)
}

func (l *Logger) PrintfDebug(format string, args ...any) {
	l.write(DEBUG, format, args...)
}

func (l *Logger) PrintfWarning(format string, args ...any) {
	l.write(WARNING, format, args...)
}

func (l *Logger) PrintfError(format string, args ...any) {
	l.write(ERROR, format, args...)
}
