/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Log management for recordguess. Retention cleanup, file statistics and a
line-based analysis of inference events in past runs.
*/

package logging

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LogManager applies retention to a log directory and reports on it
type LogManager struct {
	logDir   string
	maxFiles int
}

// NewLogManager creates a new log manager
func NewLogManager(logDir string, maxFiles int) *LogManager {
	return &LogManager{
		logDir:   logDir,
		maxFiles: maxFiles,
	}
}

func (lm *LogManager) files() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(lm.logDir, filePattern))
	if err != nil {
		return nil, fmt.Errorf("failed to glob log files: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// CleanupOldLogs removes the oldest log files beyond the retention limit
func (lm *LogManager) CleanupOldLogs() (int, error) {
	files, err := lm.files()
	if err != nil {
		return 0, err
	}
	if lm.maxFiles <= 0 || len(files) <= lm.maxFiles {
		return 0, nil
	}

	toRemove := files[:len(files)-lm.maxFiles]
	for _, file := range toRemove {
		if err := os.Remove(file); err != nil {
			return 0, fmt.Errorf("failed to remove file %s: %w", file, err)
		}
	}
	return len(toRemove), nil
}

// GetLogStats returns statistics about log files
func (lm *LogManager) GetLogStats() (*LogStats, error) {
	files, err := lm.files()
	if err != nil {
		return nil, err
	}

	stats := &LogStats{TotalFiles: len(files)}
	for _, file := range files {
		stat, err := os.Stat(file)
		if err != nil {
			continue
		}

		stats.TotalSize += stat.Size()
		if stats.OldestFile.IsZero() || stat.ModTime().Before(stats.OldestFile) {
			stats.OldestFile = stat.ModTime()
		}
		if stat.ModTime().After(stats.NewestFile) {
			stats.NewestFile = stat.ModTime()
		}
	}

	return stats, nil
}

// Analyze scans all log files for inference events
func (lm *LogManager) Analyze() (*LogAnalysis, error) {
	files, err := lm.files()
	if err != nil {
		return nil, err
	}

	analysis := &LogAnalysis{LogFiles: len(files)}
	for _, file := range files {
		if err := analyzeFile(file, analysis); err != nil {
			return nil, fmt.Errorf("failed to analyze file %s: %w", file, err)
		}
	}
	return analysis, nil
}

// LogStats holds statistics about log files
type LogStats struct {
	TotalFiles int       `json:"total_files"`
	TotalSize  int64     `json:"total_size"`
	OldestFile time.Time `json:"oldest_file"`
	NewestFile time.Time `json:"newest_file"`
}

// LogAnalysis counts log levels and inference events across log files
type LogAnalysis struct {
	LogFiles     int   `json:"log_files"`
	TotalLines   int64 `json:"total_lines"`
	DebugCount   int64 `json:"debug_count"`
	InfoCount    int64 `json:"info_count"`
	WarningCount int64 `json:"warning_count"`
	ErrorCount   int64 `json:"error_count"`
	Runs         int64 `json:"runs"`
	Sources      int64 `json:"sources"`
	Fields       int64 `json:"fields"`
	Dropped      int64 `json:"dropped"`
	DepthLimits  int64 `json:"depth_limits"`
}

func analyzeFile(path string, analysis *LogAnalysis) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		analysis.analyzeLine(scanner.Text())
	}
	return scanner.Err()
}

// analyzeLine counts a single log line
func (la *LogAnalysis) analyzeLine(line string) {
	la.TotalLines++

	switch {
	case strings.Contains(line, "DEBUG"), strings.Contains(line, "level=debug"), strings.Contains(line, `"level":"debug"`):
		la.DebugCount++
	case strings.Contains(line, "INFO"), strings.Contains(line, "level=info"), strings.Contains(line, `"level":"info"`):
		la.InfoCount++
	case strings.Contains(line, "WARN"), strings.Contains(line, "level=warn"), strings.Contains(line, `"level":"warning"`):
		la.WarningCount++
	case strings.Contains(line, "ERROR"), strings.Contains(line, "level=error"), strings.Contains(line, `"level":"error"`):
		la.ErrorCount++
	}

	switch {
	case strings.Contains(line, "Inference complete"):
		la.Runs++
	case strings.Contains(line, "Records loaded"):
		la.Sources++
	case strings.Contains(line, "Field inferred"):
		la.Fields++
	case strings.Contains(line, "Field dropped"):
		la.Dropped++
	case strings.Contains(line, "Nesting limit reached"):
		la.DepthLimits++
	}
}

// Summary returns a printable summary of the analysis
func (la *LogAnalysis) Summary() string {
	return fmt.Sprintf(
		"Log Analysis Summary:\n"+
			"  Files: %d\n"+
			"  Total Lines: %d\n"+
			"  Debug: %d  Info: %d  Warning: %d  Error: %d\n"+
			"  Inference Runs: %d\n"+
			"  Sources Loaded: %d\n"+
			"  Fields Inferred: %d\n"+
			"  Fields Dropped: %d\n"+
			"  Nesting Limits Hit: %d",
		la.LogFiles, la.TotalLines,
		la.DebugCount, la.InfoCount, la.WarningCount, la.ErrorCount,
		la.Runs, la.Sources, la.Fields, la.Dropped, la.DepthLimits,
	)
}
