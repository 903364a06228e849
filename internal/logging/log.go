// Package logging prints levelled, coloured messages for the strseg command
// and mirrors them into a rotating log file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/coregx/coregex"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Colors
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[91m"
	ColorYellow = "\033[93m"
	ColorCyan   = "\033[96m"
)

// Tags
const (
	RedError      = ColorRed + "[ERROR] " + ColorReset
	YellowWarning = ColorYellow + "[Warning] " + ColorReset
	YellowDebug   = ColorYellow + "[Debug] " + ColorReset
	CyanInfo      = ColorCyan + "[Info] " + ColorReset
)

// LogFile is the name of the log file inside the log directory.
const LogFile = "strseg.log"

var (
	// Level is the debug level. D messages print when 0 < l <= Level.
	Level = 0

	// Out receives console messages. Results go to stdout, so messages
	// default to stderr.
	Out io.Writer = os.Stderr

	mu      sync.Mutex
	logger  *log.Logger
	logFile *lumberjack.Logger
)

// ansiEscape matches ANSI color codes, which are kept out of the log file.
var ansiEscape = coregex.MustCompile(`\x1b\[[0-9;]*m`)

// SetupLogging opens (or creates) the rotating log file in targetDir.
func SetupLogging(targetDir string) error {
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()

	logFile = &lumberjack.Logger{
		Filename:   filepath.Join(targetDir, LogFile),
		MaxSize:    1, // MB
		MaxBackups: 3,
		Compress:   true,
	}
	logger = log.New(logFile, "", log.LstdFlags)
	logger.Printf(":\n=========== %v ===========\n\n", time.Now().Format(time.RFC1123Z))
	return nil
}

// Close closes the log file, if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile, logger = nil, nil
	return err
}

// E prints an error.
func E(format string, args ...any) string {
	return emit(RedError, format, args...)
}

// W prints a warning.
func W(format string, args ...any) string {
	return emit(YellowWarning, format, args...)
}

// I prints an informational message.
func I(format string, args ...any) string {
	return emit(CyanInfo, format, args...)
}

// D prints a debug message at level l. Debug messages never print at
// level 0.
func D(l int, format string, args ...any) string {
	if l <= 0 || l > Level {
		return ""
	}
	return emit(YellowDebug, format, args...)
}

func emit(tag, format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := tag + fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprint(Out, msg)
	write(msg)
	return msg
}

// write mirrors msg into the log file. Callers hold mu.
func write(msg string) {
	if logger == nil {
		return
	}
	logger.Print(ansiEscape.ReplaceAllString(msg, ""))
}
