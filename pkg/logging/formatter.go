/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: formatter.go
Description: Custom log formatters for recordguess. Colored, single-line output with sorted
structured fields and event prefixes for inference messages.
*/

package logging

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// CustomFormatter provides structured single-line output
type CustomFormatter struct {
	Timestamp bool
	Caller    bool
	Colors    bool
}

// Format formats a log entry
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return f.format(entry, ""), nil
}

func (f *CustomFormatter) format(entry *logrus.Entry, prefix string) []byte {
	var output strings.Builder

	if f.Timestamp {
		output.WriteString(f.paint(36, entry.Time.Format("2006-01-02 15:04:05.000"))) // Cyan
		output.WriteString(" ")
	}

	output.WriteString(f.paint(f.getLevelColor(entry.Level), strings.ToUpper(entry.Level.String())))
	output.WriteString(" ")

	if prefix != "" {
		output.WriteString(f.paint(35, "["+prefix+"]")) // Magenta
		output.WriteString(" ")
	}

	if f.Caller && entry.HasCaller() {
		output.WriteString(f.paint(33, fmt.Sprintf("[%s:%d]", entry.Caller.File, entry.Caller.Line))) // Yellow
		output.WriteString(" ")
	}

	output.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		output.WriteString(" ")
		output.WriteString(f.formatFields(entry.Data))
	}

	output.WriteString("\n")
	return []byte(output.String())
}

func (f *CustomFormatter) paint(color int, text string) string {
	if !f.Colors {
		return text
	}
	return fmt.Sprintf("\033[%dm%s\033[0m", color, text)
}

// getLevelColor returns the ANSI color code for a log level
func (f *CustomFormatter) getLevelColor(level logrus.Level) int {
	switch level {
	case logrus.InfoLevel:
		return 32 // Green
	case logrus.WarnLevel:
		return 33 // Yellow
	case logrus.ErrorLevel:
		return 31 // Red
	case logrus.FatalLevel, logrus.PanicLevel:
		return 35 // Magenta
	default:
		return 37 // White
	}
}

// formatFields formats structured fields sorted by key
func (f *CustomFormatter) formatFields(fields logrus.Fields) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := f.formatValue(fields[key])
		if f.Colors {
			parts = append(parts, fmt.Sprintf("\033[34m%s\033[0m=\033[32m%s\033[0m", key, value)) // Blue key, Green value
		} else {
			parts = append(parts, fmt.Sprintf("%s=%s", key, value))
		}
	}

	return strings.Join(parts, " ")
}

// formatValue formats a field value appropriately
func (f *CustomFormatter) formatValue(value interface{}) string {
	switch v := value.(type) {
	case time.Duration:
		return v.Round(time.Microsecond).String()
	case time.Time:
		return v.Format("15:04:05.000")
	case string:
		if len(v) > 50 {
			return fmt.Sprintf("%s...", v[:50])
		}
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// InferenceFormatter adds an event prefix to inference log lines
type InferenceFormatter struct {
	CustomFormatter
}

// Format formats inference log entries with their event prefix
func (f *InferenceFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return f.format(entry, f.getPrefix(entry.Message)), nil
}

// getPrefix returns a prefix based on the log message
func (f *InferenceFormatter) getPrefix(message string) string {
	switch {
	case strings.HasPrefix(message, "Records loaded"):
		return "SOURCE"
	case strings.HasPrefix(message, "Field resolved"), strings.HasPrefix(message, "Field inferred"):
		return "FIELD"
	case strings.HasPrefix(message, "Field suppressed"), strings.HasPrefix(message, "Field dropped"):
		return "DROP"
	case strings.HasPrefix(message, "Nesting limit"):
		return "DEPTH"
	case strings.HasPrefix(message, "Inference complete"):
		return "INFER"
	case strings.Contains(message, "config"), strings.Contains(message, "Config"):
		return "CONFIG"
	default:
		return ""
	}
}
