package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
)

// Log levels
const (
	LevelError = iota
	LevelWarning
	LevelInfo
	LevelDebug
)

var (
	mu        sync.Mutex
	out       io.Writer = os.Stdout
	errOut    io.Writer = os.Stderr
	logLevel            = LevelInfo
	useColors           = true
)

// SetOutput redirects log output. Mainly useful in tests.
func SetOutput(stdout, stderr io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if stdout != nil {
		out = stdout
	}
	if stderr != nil {
		errOut = stderr
	}
}

// SetLevel sets the logging level.
func SetLevel(level int) {
	mu.Lock()
	defer mu.Unlock()
	if level >= LevelError && level <= LevelDebug {
		logLevel = level
	}
}

// DisableColors disables colored output.
func DisableColors() {
	mu.Lock()
	defer mu.Unlock()
	useColors = false
}

func Debugf(format string, v ...interface{}) {
	logf(LevelDebug, colorPurple, "DEBUG", format, v...)
}

func Infof(format string, v ...interface{}) {
	logf(LevelInfo, colorBlue, "INFO", format, v...)
}

func Warningf(format string, v ...interface{}) {
	logf(LevelWarning, colorYellow, "WARNING", format, v...)
}

func Errorf(format string, v ...interface{}) {
	logf(LevelError, colorRed, "ERROR", format, v...)
}

func logf(level int, color, prefix, format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if level > logLevel {
		return
	}

	w := out
	if level == LevelError {
		w = errOut
	}

	if useColors {
		prefix = color + prefix + ":" + colorReset
	} else {
		prefix += ":"
	}

	fmt.Fprintf(w, "%s %s %s\n",
		time.Now().Format("2006/01/02 15:04:05"), prefix, fmt.Sprintf(format, v...))
}
