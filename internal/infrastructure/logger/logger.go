package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

// Options configures the application logger.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	File   string // optional rotating log file, stdout is always written
}

// AppLogger is the logrus-backed IAppLogger.
type AppLogger struct {
	log *logrus.Logger
}

var _ usecasecontract.IAppLogger = (*AppLogger)(nil)

// NewLogger builds a logger from opts. Unknown levels fall back to info.
func NewLogger(opts Options) *AppLogger {
	l := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.EqualFold(opts.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05Z07:00"})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02T15:04:05Z07:00"})
	}

	var out io.Writer = os.Stdout
	if opts.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	l.SetOutput(out)

	return &AppLogger{log: l}
}

// NewWithWriter is used by tests to capture output.
func NewWithWriter(w io.Writer, level logrus.Level) *AppLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return &AppLogger{log: l}
}

// WithFields returns a logrus entry for structured request logs.
func (l *AppLogger) WithFields(fields map[string]interface{}) *logrus.Entry {
	return l.log.WithFields(logrus.Fields(fields))
}

func (l *AppLogger) Debugf(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

func (l *AppLogger) Infof(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

func (l *AppLogger) Warnf(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

// Warningf is an alias of Warnf kept for callers that prefer the long name.
func (l *AppLogger) Warningf(format string, args ...interface{}) {
	l.log.Warningf(format, args...)
}

func (l *AppLogger) Errorf(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

// Fatalf logs and exits the process.
func (l *AppLogger) Fatalf(format string, args ...interface{}) {
	l.log.Fatalf(format, args...)
}
