// Package logx is a minimal leveled logger used across the service.
package logx

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
)

// Level controls which messages are emitted.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var currentLevel atomic.Int32

var std = log.New(os.Stdout, "", log.LstdFlags|log.Lmsgprefix)

func init() {
	currentLevel.Store(int32(LevelInfo))
}

// SetLevel sets the minimum level that will be logged.
func SetLevel(l Level) {
	currentLevel.Store(int32(l))
}

func enabled(l Level) bool {
	return int32(l) >= currentLevel.Load()
}

func output(l Level, prefix, msg string) {
	if !enabled(l) {
		return
	}
	std.Printf("%s %s", prefix, msg)
}

func Debug(msg string) { output(LevelDebug, "DEBUG", msg) }
func Info(msg string)  { output(LevelInfo, "INFO", msg) }
func Warn(msg string)  { output(LevelWarn, "WARN", msg) }
func Error(msg string) { output(LevelError, "ERROR", msg) }

func Debugf(format string, args ...any) { output(LevelDebug, "DEBUG", fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { output(LevelInfo, "INFO", fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { output(LevelWarn, "WARN", fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { output(LevelError, "ERROR", fmt.Sprintf(format, args...)) }

// Fatal logs at error level and exits.
func Fatal(msg string) {
	output(LevelError, "FATAL", msg)
	os.Exit(1)
}

// Fatalf logs at error level and exits.
func Fatalf(format string, args ...any) {
	output(LevelError, "FATAL", fmt.Sprintf(format, args...))
	os.Exit(1)
}
