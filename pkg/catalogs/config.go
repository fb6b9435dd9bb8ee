/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config.go
Description: Catalog configuration. Selects a preset and applies per-tag overrides loaded
from config files, flags or environment variables.
*/

package catalogs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kleascm/recordguess/pkg/inference"
)

// CatalogConfig holds the catalog selection for an inference run.
// An override of "false", "none" or "" disables the tag; "absent" removes it so the
// field falls back to string; any other value is the component display name to use.
type CatalogConfig struct {
	Preset    string            `json:"preset" mapstructure:"preset"`
	Overrides map[string]string `json:"overrides" mapstructure:"overrides"`
}

// DefaultCatalogConfig returns a sensible default config
func DefaultCatalogConfig() *CatalogConfig {
	return &CatalogConfig{
		Preset:    PresetShow,
		Overrides: map[string]string{},
	}
}

// Validate checks the preset name and override tags
func (c *CatalogConfig) Validate() error {
	if _, err := ByName(c.Preset); err != nil {
		return err
	}
	for key := range c.Overrides {
		if _, err := tagFromKey(key); err != nil {
			return fmt.Errorf("invalid catalog override: %w", err)
		}
	}
	return nil
}

// Build returns the preset with the overrides applied to a copy of its catalog
func (c *CatalogConfig) Build() (*Preset, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	preset, _ := ByName(c.Preset)
	catalog := preset.Catalog.Clone()

	keys := make([]string, 0, len(c.Overrides))
	for key := range c.Overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		tag, _ := tagFromKey(key)
		value := strings.TrimSpace(c.Overrides[key])
		switch strings.ToLower(value) {
		case "", "false", "none", "off":
			catalog.Disable(tag)
		case "absent":
			catalog.Remove(tag)
		default:
			catalog.Set(tag, inference.NewDescriptor(value))
		}
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	preset.Catalog = catalog
	return preset, nil
}

// tagFromKey matches tags case-insensitively; viper lowercases map keys
func tagFromKey(key string) (inference.Tag, error) {
	for _, tag := range inference.Tags() {
		if strings.EqualFold(string(tag), strings.TrimSpace(key)) {
			return tag, nil
		}
	}
	return inference.ParseTag(key)
}

// ParseOverrides parses "tag=Component" pairs as given on the command line
func ParseOverrides(pairs []string) (map[string]string, error) {
	overrides := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		idx := strings.Index(pair, "=")
		if idx <= 0 {
			return nil, fmt.Errorf("invalid override %q, expected tag=Component", pair)
		}
		overrides[strings.TrimSpace(pair[:idx])] = strings.TrimSpace(pair[idx+1:])
	}
	return overrides, nil
}
