/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_writer.go
Description: Utility for archiving run results. Writes timestamped JSON files into a
per-kind subdirectory so results of past runs can be compared.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// WriteReport writes result as <baseDir>/<kind>/<timestamp>_<kind>_<label>.json
func WriteReport(baseDir, kind, label string, result interface{}) (string, error) {
	if baseDir == "" {
		return "", fmt.Errorf("report directory must not be empty")
	}
	kind = SafeName(kind)

	dir := filepath.Join(baseDir, kind)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	// e.g. 2026-06-11_01-30-00.000_list_posts.json
	timestamp := time.Now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s_%s.json", timestamp, kind, SafeName(label))
	filePath := filepath.Join(dir, filename)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return filePath, nil
}

// SafeName reduces a label to characters safe in file names
func SafeName(label string) string {
	name := unsafeName.ReplaceAllString(label, "-")
	if name == "" || name == "-" {
		return "run"
	}
	return name
}
