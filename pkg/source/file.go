/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: file.go
Description: RecordSource implementation for local JSON, YAML and NDJSON files.
*/

package source

import (
	"context"
	"fmt"
	"os"

	"github.com/kleascm/recordguess/pkg/inference"
)

// FileSource reads records from a local document
type FileSource struct {
	NameStr        string
	DescriptionStr string
	Path           string
	Format         string // "json", "yaml", "ndjson"; guessed from the extension when empty
	Envelope       string
	dedup          *dedup
}

// NewFileSource creates a new FileSource
func NewFileSource(name, desc, path, format, envelope string, dedupe bool) *FileSource {
	if format == "" {
		format = FormatFromPath(path)
	}
	return &FileSource{
		NameStr:        name,
		DescriptionStr: desc,
		Path:           path,
		Format:         format,
		Envelope:       envelope,
		dedup:          newDedup(dedupe),
	}
}

func (fs *FileSource) Name() string        { return fs.NameStr }
func (fs *FileSource) Description() string { return fs.DescriptionStr }

// FetchRecords reads and decodes the file
func (fs *FileSource) FetchRecords(ctx context.Context) ([]inference.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fs.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fs.Path, err)
	}

	objects, err := Decode(data, fs.Format, fs.Envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fs.Path, err)
	}
	return fs.dedup.collect(objects), nil
}
