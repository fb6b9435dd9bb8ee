/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: manager.go
Description: Helper to build a RecordSource from SourceConfig.
*/

package source

import (
	"fmt"
)

// BuildSourceFromConfig creates the RecordSource described by cfg
func BuildSourceFromConfig(cfg *SourceConfig) (RecordSource, error) {
	if cfg == nil {
		return nil, fmt.Errorf("no source configured")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid source config: %w", err)
	}

	switch cfg.kind() {
	case KindAPI:
		headers, _ := cfg.ParseHeaders()
		var body []byte
		if cfg.Body != "" {
			body = []byte(cfg.Body)
		}
		return NewWebAPISource(
			"WebAPISource",
			fmt.Sprintf("Records from %s", cfg.URL),
			cfg.URL,
			cfg.Format,
			cfg.Method,
			headers,
			body,
			cfg.Envelope,
			cfg.ParseTimeout(),
			cfg.Dedup,
		), nil
	case KindSQLite:
		what := cfg.Table
		if cfg.Query != "" {
			what = "query"
		}
		return NewSQLiteSource(
			"SQLiteSource",
			fmt.Sprintf("Rows of %s in %s", what, cfg.Path),
			cfg.Path,
			cfg.Table,
			cfg.Query,
			cfg.Limit,
			cfg.Dedup,
		), nil
	}

	return NewFileSource(
		"FileSource",
		fmt.Sprintf("Records from %s", cfg.Path),
		cfg.Path,
		cfg.Format,
		cfg.Envelope,
		cfg.Dedup,
	), nil
}
