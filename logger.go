package main

import (
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var currentLevel = LevelInfo

var levelNames = map[string]LogLevel{
	"DEBUG":   LevelDebug,
	"INFO":    LevelInfo,
	"WARN":    LevelWarn,
	"WARNING": LevelWarn,
	"ERROR":   LevelError,
}

// SetLogLevel sets the minimum level that gets written. Unknown names fall back to INFO.
func SetLogLevel(level string) {
	l, ok := levelNames[strings.ToUpper(strings.TrimSpace(level))]
	if !ok {
		log.Printf("[WARN] Unknown log level %q, using INFO", level)
		l = LevelInfo
	}
	currentLevel = l
}

func logf(level LogLevel, prefix, format string, args ...interface{}) {
	if level < currentLevel {
		return
	}
	log.Printf(prefix+" "+format, args...)
}

func Debug(format string, args ...interface{}) {
	logf(LevelDebug, "[DEBUG]", format, args...)
}

func Info(format string, args ...interface{}) {
	logf(LevelInfo, "[INFO]", format, args...)
}

func Warn(format string, args ...interface{}) {
	logf(LevelWarn, "[WARN]", format, args...)
}

func Error(format string, args ...interface{}) {
	logf(LevelError, "[ERROR]", format, args...)
}

// Fatal always logs, regardless of level, and exits.
func Fatal(format string, args ...interface{}) {
	log.Printf("[FATAL] "+format, args...)
	os.Exit(1)
}
