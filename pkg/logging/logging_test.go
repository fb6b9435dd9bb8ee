/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logging_test.go
Description: Tests for the logger, formatters and log management.
*/

package logging

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(dir string) *LoggerConfig {
	return &LoggerConfig{
		Level:     LogLevelDebug,
		Format:    LogFormatCustom,
		OutputDir: dir,
		MaxFiles:  3,
	}
}

func TestLoggerConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultLoggerConfig().Validate())

	config := DefaultLoggerConfig()
	config.MaxFiles = 0
	assert.Error(t, config.Validate())

	config = DefaultLoggerConfig()
	config.Format = "xml"
	assert.Error(t, config.Validate())

	config = DefaultLoggerConfig()
	config.Level = "trace"
	assert.Error(t, config.Validate())

	_, err := NewLogger(config)
	assert.Error(t, err)
}

func TestLoggerWritesConsoleAndFile(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	logger, err := newLogger(testConfig(dir), &console)
	require.NoError(t, err)
	require.NotEmpty(t, logger.FilePath())

	logger.LogSource("FileSource", 3, 2*time.Millisecond, nil)
	logger.LogField("title", "string", true, nil)
	logger.LogSuppressed("body", "richText", map[string]interface{}{"preset": "list"})
	logger.LogInference("list", 3, 4, 1, time.Millisecond, nil)
	require.NoError(t, logger.Close())

	output := console.String()
	assert.Contains(t, output, "[SOURCE] Records loaded")
	assert.Contains(t, output, "[FIELD] Field inferred")
	assert.Contains(t, output, "[DROP] Field dropped")
	assert.Contains(t, output, "[INFER] Inference complete")
	assert.Contains(t, output, "field=body preset=list tag=richText")

	content, err := os.ReadFile(logger.FilePath())
	require.NoError(t, err)
	assert.Contains(t, string(content), "Inference complete")

	// Logging after close goes straight to the logger
	assert.NotPanics(t, func() { logger.Info("late", nil) })
	assert.NoError(t, logger.Close())
}

func TestLoggerLevelFilters(t *testing.T) {
	var console bytes.Buffer
	config := testConfig("")
	config.Level = LogLevelInfo

	logger, err := newLogger(config, &console)
	require.NoError(t, err)
	assert.Empty(t, logger.FilePath())

	logger.LogField("title", "string", false, nil)
	logger.Warning("careful", nil)
	require.NoError(t, logger.Close())

	assert.NotContains(t, console.String(), "Field inferred")
	assert.Contains(t, console.String(), "WARNING careful")
}

func TestLoggerJSONFormat(t *testing.T) {
	var console bytes.Buffer
	config := testConfig("")
	config.Format = LogFormatJSON

	logger, err := newLogger(config, &console)
	require.NoError(t, err)
	logger.Entry(map[string]interface{}{"run_id": "abc"}).Info("direct")
	require.NoError(t, logger.Close())

	assert.Contains(t, console.String(), `"run_id":"abc"`)
	assert.Contains(t, console.String(), `"msg":"direct"`)
}

func TestCustomFormatter(t *testing.T) {
	f := &CustomFormatter{}
	entry := logrus.NewEntry(logrus.New()).WithFields(logrus.Fields{
		"b":        2,
		"a":        "x",
		"duration": 1500 * time.Microsecond,
	})
	entry.Level = logrus.InfoLevel
	entry.Message = "hello"

	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "INFO hello a=x b=2 duration=1.5ms\n", string(out))

	colored := &CustomFormatter{Colors: true}
	out, err = colored.Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), "\033[32mINFO\033[0m")
}

func TestInferenceFormatterPrefixes(t *testing.T) {
	f := &InferenceFormatter{}
	assert.Equal(t, "SOURCE", f.getPrefix("Records loaded"))
	assert.Equal(t, "FIELD", f.getPrefix("Field resolved"))
	assert.Equal(t, "DROP", f.getPrefix("Field suppressed"))
	assert.Equal(t, "DEPTH", f.getPrefix("Nesting limit reached, falling back to string"))
	assert.Equal(t, "INFER", f.getPrefix("Inference complete"))
	assert.Equal(t, "", f.getPrefix("hello"))
}

func TestLogManager(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, fmt.Sprintf("recordguess_2026-01-0%d_10-00-00.000.log", i+1))
		content := "INFO [INFER] Inference complete records=2\nDEBUG [FIELD] Field inferred field=id\n"
		require.NoError(t, os.WriteFile(name, []byte(content), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.log"), []byte("x"), 0644))

	manager := NewLogManager(dir, 3)

	stats, err := manager.GetLogStats()
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalFiles)
	assert.Greater(t, stats.TotalSize, int64(0))

	analysis, err := manager.Analyze()
	require.NoError(t, err)
	assert.Equal(t, int64(10), analysis.TotalLines)
	assert.Equal(t, int64(5), analysis.Runs)
	assert.Equal(t, int64(5), analysis.Fields)
	assert.Equal(t, int64(5), analysis.InfoCount)
	assert.Contains(t, analysis.Summary(), "Inference Runs: 5")

	removed, err := manager.CleanupOldLogs()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	remaining, _ := filepath.Glob(filepath.Join(dir, filePattern))
	assert.Len(t, remaining, 3)
	assert.Equal(t, "recordguess_2026-01-03_10-00-00.000.log", filepath.Base(remaining[0]))
	_, err = os.Stat(filepath.Join(dir, "other.log"))
	assert.NoError(t, err)
}
