package utils

import (
	"fmt"
	"log"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	// DebugMode enables the orbit camera and verbose logging.
	DebugMode bool

	CurrentLevel   LogLevel = LevelWarn
	ShowRaylibInfo bool
)

const colorReset = "\033[0m"

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

var levelColors = [...]string{
	"\033[36m", // cyan
	"\033[34m", // blue
	"\033[33m", // yellow
	"\033[31m", // red
}

func (l LogLevel) String() string {
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

func logMessage(level LogLevel, format string, v ...interface{}) {
	if level < CurrentLevel {
		return
	}
	prefix := fmt.Sprintf("%s[%s]%s ", levelColors[level], level, colorReset)
	log.Printf(prefix+format, v...)
}

func Debug(format string, v ...interface{}) { logMessage(LevelDebug, format, v...) }
func Info(format string, v ...interface{})  { logMessage(LevelInfo, format, v...) }
func Warn(format string, v ...interface{})  { logMessage(LevelWarn, format, v...) }
func Error(format string, v ...interface{}) { logMessage(LevelError, format, v...) }

// RaylibLogCallback routes raylib's internal log output through the
// leveled logger so it honors the same verbosity settings. Raylib INFO
// is noisy, so it stays hidden unless ShowRaylibInfo or debug logging
// is on.
func RaylibLogCallback(level int, text string) {
	const tag = "\033[35m[RAYLIB]\033[0m "
	switch level {
	case 2: // LOG_TRACE, LOG_DEBUG
		Debug("%s%s", tag, text)
	case 3: // LOG_INFO
		if ShowRaylibInfo || CurrentLevel <= LevelDebug {
			Info("%s%s", tag, text)
		}
	case 4: // LOG_WARNING
		Warn("%s%s", tag, text)
	case 5, 6: // LOG_ERROR, LOG_FATAL
		Error("%s%s", tag, text)
	}
}
