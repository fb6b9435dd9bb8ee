/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: source.go
Description: Record sources for inference. Defines the RecordSource interface, the shared
document decoder (JSON, YAML and NDJSON through goccy/go-yaml ordered maps) and SHA256
deduplication of fetched records.
*/

package source

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/kleascm/recordguess/pkg/inference"
)

// Document formats
const (
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatNDJSON = "ndjson"
)

// RecordSource fetches sample records to infer from
// Example sources: local files, web APIs, SQLite tables
type RecordSource interface {
	Name() string
	Description() string
	FetchRecords(ctx context.Context) ([]inference.Record, error)
}

// FormatFromPath guesses the document format from a file extension
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".ndjson", ".jsonl":
		return FormatNDJSON
	}
	return FormatJSON
}

// Decode parses a document into ordered records. A document is either a list of objects
// or a single object; when envelope is set and the document is an object, the records
// are read from that key instead.
func Decode(data []byte, format, envelope string) ([]yaml.MapSlice, error) {
	switch strings.ToLower(format) {
	case FormatNDJSON:
		return decodeLines(data)
	case FormatJSON, FormatYAML, "yml", "":
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	var doc interface{}
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return items(doc, envelope)
}

// decodeLines parses one object per non-empty line
func decodeLines(data []byte) ([]yaml.MapSlice, error) {
	var objects []yaml.MapSlice
	for i, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var doc interface{}
		if err := yaml.UnmarshalWithOptions(line, &doc, yaml.UseOrderedMap()); err != nil {
			return nil, fmt.Errorf("failed to decode line %d: %w", i+1, err)
		}
		obj, ok := doc.(yaml.MapSlice)
		if !ok {
			return nil, fmt.Errorf("line %d is not an object", i+1)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

func items(doc interface{}, envelope string) ([]yaml.MapSlice, error) {
	switch v := doc.(type) {
	case nil:
		return nil, nil
	case yaml.MapSlice:
		if envelope == "" {
			return []yaml.MapSlice{v}, nil
		}
		for _, item := range v {
			if fmt.Sprint(item.Key) == envelope {
				return items(item.Value, "")
			}
		}
		return nil, fmt.Errorf("envelope key %q not found", envelope)
	case []interface{}:
		objects := make([]yaml.MapSlice, 0, len(v))
		for i, item := range v {
			obj, ok := item.(yaml.MapSlice)
			if !ok {
				return nil, fmt.Errorf("item %d is not an object", i)
			}
			objects = append(objects, obj)
		}
		return objects, nil
	}
	return nil, fmt.Errorf("document is neither an object nor a list of objects")
}

// ToRecord converts an ordered map into a record, keeping key order at every level
func ToRecord(obj yaml.MapSlice) inference.Record {
	record := make(inference.Record, 0, len(obj))
	for _, item := range obj {
		record = append(record, inference.Field{Name: fmt.Sprint(item.Key), Value: toValue(item.Value)})
	}
	return record
}

func toValue(v interface{}) interface{} {
	switch val := v.(type) {
	case yaml.MapSlice:
		return ToRecord(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = toValue(item)
		}
		return out
	case []byte:
		return string(val)
	}
	return v
}

// dedup tracks records already returned by a source (deduplication by SHA256)
type dedup struct {
	enabled bool
	seen    map[string]struct{}
	mu      sync.Mutex
}

func newDedup(enabled bool) *dedup {
	return &dedup{enabled: enabled, seen: make(map[string]struct{})}
}

// isUnique checks if the record is new
func (d *dedup) isUnique(obj yaml.MapSlice) bool {
	if !d.enabled {
		return true
	}
	data, err := yaml.Marshal(obj)
	if err != nil {
		return true
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	hash := fmt.Sprintf("%x", sha256.Sum256(data))
	if _, exists := d.seen[hash]; exists {
		return false
	}
	d.seen[hash] = struct{}{}
	return true
}

// collect converts decoded objects into records, dropping duplicates
func (d *dedup) collect(objects []yaml.MapSlice) []inference.Record {
	records := make([]inference.Record, 0, len(objects))
	for _, obj := range objects {
		if d.isUnique(obj) {
			records = append(records, ToRecord(obj))
		}
	}
	return records
}
