package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

const (
	White = iota
	Black = iota + 30
	Red
	Green
	Yellow
	Blue
	Purple
	Cyan
	Grey
)

// Level is the severity of a log line. Lines below the logger's level are dropped.
type Level int

const (
	LevelTrace Level = iota + 1
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelPanic
	LevelOff
)

// levelDefault is used by Print; it is never filtered.
const levelDefault Level = 0

var ErrBadLevel = errors.New("logger: unknown log level")

const (
	color = iota
	prefix
)

var colors = map[int]string{
	White:  "\033[0m",
	Black:  "\033[30m",
	Red:    "\033[31m",
	Green:  "\033[32m",
	Yellow: "\033[33m",
	Blue:   "\033[34m",
	Purple: "\033[35m",
	Cyan:   "\033[36m",
	Grey:   "\033[37m",
}

var levels = map[Level][2]string{
	LevelTrace:   {colors[Grey], "TRCE"},
	LevelDebug:   {colors[Grey], "DBUG"},
	LevelInfo:    {colors[Blue], "INFO"},
	LevelWarn:    {colors[Yellow], "WARN"},
	LevelError:   {colors[Red], "EROR"},
	LevelFatal:   {colors[Red], "FATL"},
	LevelPanic:   {colors[Red], "PANC"},
	levelDefault: {colors[White], "NORM"},
}

var names = map[string]Level{
	"trace": LevelTrace,
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,
	"fatal": LevelFatal,
	"panic": LevelPanic,
	"off":   LevelOff,
}

// ParseLevel maps a level name such as "debug" or "WARN" to a Level.
func ParseLevel(name string) (Level, error) {
	lvl, ok := names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadLevel, name)
	}
	return lvl, nil
}

func (lvl Level) String() string {
	for name, l := range names {
		if l == lvl {
			return name
		}
	}
	return "default"
}

var DefaultLogger = NewLogger(os.Stderr)

type Logger struct {
	lock      sync.Mutex    // sync
	log       *log.Logger   // actual logger
	buf       *bytes.Buffer // buffer
	level     Level         // minimum level written
	color     bool
	printFunc bool
	printFile bool
	dep       int // call depth
}

// NewLogger returns a Logger writing to w at LevelInfo. Colors are on only when
// w is a terminal that supports them.
func NewLogger(w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	l := &Logger{
		log:   log.New(w, "", log.LstdFlags),
		buf:   new(bytes.Buffer),
		level: LevelInfo,
		color: termenv.NewOutput(w).ColorProfile() != termenv.Ascii,
		dep:   4,
	}
	return l
}

func (l *Logger) logInternal(level Level, depth int, format string, args ...interface{}) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if level != levelDefault && level < l.level {
		return
	}
	levelInfo, ok := levels[level]
	if !ok {
		levelInfo = levels[levelDefault]
	}
	l.buf.Reset()
	l.buf.WriteString("| ")
	if l.color {
		l.buf.WriteString(levelInfo[color])
	}
	l.buf.WriteString(levelInfo[prefix])
	if l.color {
		l.buf.WriteString(colors[White])
	}
	l.buf.WriteString(" | ")
	if l.printFunc || l.printFile {
		if level != LevelPanic {
			fn, file := trace(depth)
			if l.printFunc {
				l.buf.WriteByte('[')
				l.buf.WriteString(fn)
				l.buf.WriteByte(']')
			}
			if l.printFunc && l.printFile {
				l.buf.WriteByte(' ')
			}
			if l.printFile {
				l.buf.WriteString(file)
			}
			l.buf.WriteString(" - ")
		}
	}
	if len(args) == 0 {
		l.buf.WriteString(format)
		l.log.Print(l.buf.String())
		return
	}
	fmt.Fprintf(l.buf, format, args...)
	l.log.Print(l.buf.String())
}

func (l *Logger) SetLevel(level Level) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.level = level
}

func (l *Logger) Level() Level {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.level
}

func (l *Logger) SetColor(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.color = ok
}

// SetFlags sets the flags of the underlying log.Logger, f.ex. 0 to drop timestamps.
func (l *Logger) SetFlags(flags int) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.log.SetFlags(flags)
}

func (l *Logger) SetPrintFunc(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.printFunc = ok
}

func (l *Logger) SetPrintFile(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.printFile = ok
}

func (l *Logger) Trace(message string) {
	l.logInternal(LevelTrace, l.dep, message)
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logInternal(LevelTrace, l.dep, format, args...)
}

func (l *Logger) Debug(message string) {
	l.logInternal(LevelDebug, l.dep, message)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logInternal(LevelDebug, l.dep, format, args...)
}

func (l *Logger) Info(message string) {
	l.logInternal(LevelInfo, l.dep, message)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logInternal(LevelInfo, l.dep, format, args...)
}

func (l *Logger) Warn(message string) {
	l.logInternal(LevelWarn, l.dep, message)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logInternal(LevelWarn, l.dep, format, args...)
}

func (l *Logger) Error(message string) {
	l.logInternal(LevelError, l.dep, message)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logInternal(LevelError, l.dep, format, args...)
}

func (l *Logger) Fatal(message string) {
	l.logInternal(LevelFatal, l.dep, message)
	os.Exit(1)
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logInternal(LevelFatal, l.dep, format, args...)
	os.Exit(1)
}

func (l *Logger) Panic(message string) {
	l.logInternal(LevelPanic, l.dep, message)
	panic(message)
}

func (l *Logger) Panicf(format string, args ...interface{}) {
	l.logInternal(LevelPanic, l.dep, format, args...)
	panic(fmt.Sprintf(format, args...))
}

func (l *Logger) Print(message string) {
	l.logInternal(levelDefault, l.dep, message)
}

func (l *Logger) Printf(format string, args ...interface{}) {
	l.logInternal(levelDefault, l.dep, format, args...)
}

// trace reports the function and file:line calldepth frames above runtime.Callers.
// Frames are resolved through CallersFrames so inlined log calls still report
// their caller.
func trace(calldepth int) (string, string) {
	pc := make([]uintptr, 1)
	if runtime.Callers(calldepth, pc) == 0 {
		return "?", "?"
	}
	frame, _ := runtime.CallersFrames(pc).Next()
	if frame.Function == "" {
		return "?", "?"
	}
	name := filepath.Base(frame.Function)
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name, fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}
