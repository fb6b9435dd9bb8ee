/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config.go
Description: Configuration structures and helpers for record sources. Loaded from config
files, CLI flags or environment variables.
*/

package source

import (
	"fmt"
	"strings"
	"time"
)

// Source kinds
const (
	KindFile   = "file"
	KindAPI    = "api"
	KindSQLite = "sqlite"
)

// SourceConfig holds configuration for the record source of an inference run
type SourceConfig struct {
	Kind     string   `json:"kind" mapstructure:"kind"`         // "file", "api", "sqlite"
	Path     string   `json:"path" mapstructure:"path"`         // file or database path
	URL      string   `json:"url" mapstructure:"url"`           // API endpoint
	Format   string   `json:"format" mapstructure:"format"`     // "json", "yaml", "ndjson"
	Method   string   `json:"method" mapstructure:"method"`     // "GET" or "POST"
	Headers  []string `json:"headers" mapstructure:"headers"`   // e.g. "Authorization: Bearer ..."
	Body     string   `json:"body" mapstructure:"body"`         // POST body (optional)
	Envelope string   `json:"envelope" mapstructure:"envelope"` // key holding the record list
	Table    string   `json:"table" mapstructure:"table"`
	Query    string   `json:"query" mapstructure:"query"`
	Limit    int      `json:"limit" mapstructure:"limit"`
	Dedup    bool     `json:"dedup" mapstructure:"dedup"`
	Timeout  string   `json:"timeout" mapstructure:"timeout"` // e.g. "10s"
}

// DefaultSourceConfig returns a sensible default config
func DefaultSourceConfig() *SourceConfig {
	return &SourceConfig{
		Kind:    KindFile,
		Method:  "GET",
		Headers: []string{},
		Limit:   100,
		Dedup:   true,
		Timeout: "10s",
	}
}

// ParseTimeout parses the timeout string into a time.Duration
func (c *SourceConfig) ParseTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// ParseHeaders parses "Key: Value" headers
func (c *SourceConfig) ParseHeaders() (map[string]string, error) {
	headers := make(map[string]string, len(c.Headers))
	for _, header := range c.Headers {
		idx := strings.Index(header, ":")
		if idx <= 0 {
			return nil, fmt.Errorf("invalid header %q, expected \"Key: Value\"", header)
		}
		headers[strings.TrimSpace(header[:idx])] = strings.TrimSpace(header[idx+1:])
	}
	return headers, nil
}

// Validate checks that the settings needed by the source kind are present
func (c *SourceConfig) Validate() error {
	switch c.kind() {
	case KindFile:
		if c.Path == "" {
			return fmt.Errorf("file source requires a path")
		}
	case KindAPI:
		if c.URL == "" {
			return fmt.Errorf("api source requires a url")
		}
		method := strings.ToUpper(c.Method)
		if method != "" && method != "GET" && method != "POST" {
			return fmt.Errorf("unsupported method: %s", c.Method)
		}
		if _, err := c.ParseHeaders(); err != nil {
			return err
		}
	case KindSQLite:
		if c.Path == "" {
			return fmt.Errorf("sqlite source requires a database path")
		}
		if c.Table == "" && c.Query == "" {
			return fmt.Errorf("sqlite source requires a table or a query")
		}
	default:
		return fmt.Errorf("unknown source kind: %q", c.Kind)
	}

	switch strings.ToLower(c.Format) {
	case "", FormatJSON, FormatYAML, "yml", FormatNDJSON:
	default:
		return fmt.Errorf("unsupported format: %s", c.Format)
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must be non-negative")
	}
	return nil
}

func (c *SourceConfig) kind() string {
	if c.Kind == "" {
		return KindFile
	}
	return strings.ToLower(c.Kind)
}
