package logger

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type LogOptions struct {
	// Verbose switches the level to debug.
	Verbose bool
	// Format is "text" (default) or "json".
	Format string
	// DisableColor if true will disable outputting colors.
	DisableColor bool
	// Output defaults to stderr when nil.
	Output io.Writer
}

func Init(options LogOptions) error {
	return Configure(logrus.StandardLogger(), options)
}

// Configure applies options to l.
func Configure(l *logrus.Logger, options LogOptions) error {
	if options.Verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	if options.Output != nil {
		l.SetOutput(options.Output)
	}

	switch options.Format {
	case "", "text":
		l.SetFormatter(&Formatter{DisableColor: options.DisableColor})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("unsupported log format %q", options.Format)
	}
	return nil
}

const (
	colorRed    = 31
	colorYellow = 33
	colorBlue   = 36
	colorGray   = 37
)

const defaultTimestampFormat = "2006-01-02 15:04:05"

func getColorByLevel(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return colorGray
	case logrus.WarnLevel:
		return colorYellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return colorRed
	default:
		return colorBlue
	}
}

// Formatter prints "<time> [LEVEL] message key=value ...".
type Formatter struct {
	DisableColor    bool
	HideLogTime     bool
	TimestampFormat string
}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = defaultTimestampFormat
	}
	if !f.HideLogTime {
		b.WriteString(entry.Time.Format(timestampFormat))
		b.WriteByte(' ')
	}

	level := "[" + strings.ToUpper(entry.Level.String()) + "]"
	if f.DisableColor {
		b.WriteString(level)
	} else {
		fmt.Fprintf(b, "\x1b[%dm%s\x1b[0m", getColorByLevel(entry.Level), level)
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
