/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inference.go
Description: Main entry point for record type inference. Defines the tag vocabulary,
the Engine and its configuration, and package-level helpers backed by a default engine.
The engine guesses a semantic tag for every field of sample records and builds UI
element descriptions through a caller-supplied catalog.
*/

package inference

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Tag is the abstract type guessed for a field
type Tag string

const (
	TagArray          Tag = "array"
	TagBoolean        Tag = "boolean"
	TagDate           Tag = "date"
	TagEmail          Tag = "email"
	TagID             Tag = "id"
	TagNumber         Tag = "number"
	TagReference      Tag = "reference"
	TagReferenceArray Tag = "referenceArray"
	TagRichText       Tag = "richText"
	TagString         Tag = "string"
	TagURL            Tag = "url"
)

var allTags = []Tag{
	TagArray,
	TagBoolean,
	TagDate,
	TagEmail,
	TagID,
	TagNumber,
	TagReference,
	TagReferenceArray,
	TagRichText,
	TagString,
	TagURL,
}

// Tags returns the full tag vocabulary in alphabetical order
func Tags() []Tag {
	tags := make([]Tag, len(allTags))
	copy(tags, allTags)
	return tags
}

// Valid reports whether t belongs to the tag vocabulary
func (t Tag) Valid() bool {
	for _, known := range allTags {
		if t == known {
			return true
		}
	}
	return false
}

// ParseTag converts a catalog key into a Tag
func ParseTag(s string) (Tag, error) {
	t := Tag(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown tag: %q", s)
	}
	return t, nil
}

// DefaultMaxDepth bounds descent into nested objects and arrays of objects
const DefaultMaxDepth = 32

// EngineConfig holds the configuration for an inference engine
type EngineConfig struct {
	MaxDepth int           `json:"max_depth"`
	Logger   *logrus.Entry `json:"-"`
}

// Engine resolves fields into inferred elements. It holds no per-call state and is
// safe for concurrent use as long as the catalogs passed to it are not modified.
type Engine struct {
	maxDepth int
	logger   *logrus.Entry
}

// NewEngine creates a new inference engine. A nil config yields the defaults and a
// logger that discards everything.
func NewEngine(config *EngineConfig) *Engine {
	if config == nil {
		config = &EngineConfig{}
	}

	e := &Engine{
		maxDepth: config.MaxDepth,
		logger:   config.Logger,
	}
	if e.maxDepth <= 0 {
		e.maxDepth = DefaultMaxDepth
	}
	if e.logger == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)
		e.logger = logrus.NewEntry(silent)
	}

	return e
}

// MaxDepth returns the nesting cap used by the engine
func (e *Engine) MaxDepth() int {
	return e.maxDepth
}

// begin starts a single inference call with its own run id
func (e *Engine) begin(catalog *Catalog, mode string) *resolution {
	return &resolution{
		catalog:  catalog,
		maxDepth: e.maxDepth,
		log: e.logger.WithFields(logrus.Fields{
			"run_id": uuid.New().String(),
			"mode":   mode,
		}),
	}
}

var defaultEngine = NewEngine(nil)

// Resolve guesses the element for a single value using the default engine
func Resolve(name string, value interface{}, catalog *Catalog) *InferredElement {
	return defaultEngine.Resolve(name, value, catalog)
}

// ResolveMany guesses the element for sampled values using the default engine
func ResolveMany(name string, values []interface{}, catalog *Catalog) *InferredElement {
	return defaultEngine.ResolveMany(name, values, catalog)
}

// InferFromRecord returns the elements inferred from one record using the default engine
func InferFromRecord(record Record, catalog *Catalog) []interface{} {
	return defaultEngine.InferFromRecord(record, catalog)
}

// InferFromRecords returns the elements inferred from several records using the default engine
func InferFromRecords(records []Record, catalog *Catalog, checkRequired bool) []interface{} {
	return defaultEngine.InferFromRecords(records, catalog, checkRequired)
}
