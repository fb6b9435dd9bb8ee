/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sqlite.go
Description: RecordSource implementation for SQLite databases. Each row of a table (or of a
custom SELECT) becomes a record whose field order follows the result columns.
*/

package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/kleascm/recordguess/pkg/inference"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver
)

// SQLiteSource samples rows from a SQLite database
type SQLiteSource struct {
	NameStr        string
	DescriptionStr string
	Path           string
	Table          string
	Query          string // overrides Table when set
	Limit          int
	dedup          *dedup
}

// NewSQLiteSource creates a new SQLiteSource
func NewSQLiteSource(name, desc, path, table, query string, limit int, dedupe bool) *SQLiteSource {
	return &SQLiteSource{
		NameStr:        name,
		DescriptionStr: desc,
		Path:           path,
		Table:          table,
		Query:          query,
		Limit:          limit,
		dedup:          newDedup(dedupe),
	}
}

func (ss *SQLiteSource) Name() string        { return ss.NameStr }
func (ss *SQLiteSource) Description() string { return ss.DescriptionStr }

// FetchRecords runs the query and converts each row into a record
func (ss *SQLiteSource) FetchRecords(ctx context.Context) ([]inference.Record, error) {
	query, args, err := ss.statement()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", ss.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var objects []yaml.MapSlice
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		obj := make(yaml.MapSlice, len(columns))
		for i, column := range columns {
			value := values[i]
			if b, ok := value.([]byte); ok {
				value = string(b)
			}
			obj[i] = yaml.MapItem{Key: column, Value: value}
		}
		objects = append(objects, obj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return ss.dedup.collect(objects), nil
}

// statement builds the SELECT to run
func (ss *SQLiteSource) statement() (string, []interface{}, error) {
	if ss.Query != "" {
		return ss.Query, nil, nil
	}
	if ss.Table == "" {
		return "", nil, fmt.Errorf("sqlite source needs a table or a query")
	}

	query := "SELECT * FROM " + quoteIdentifier(ss.Table)
	if ss.Limit > 0 {
		return query + " LIMIT ?", []interface{}{ss.Limit}, nil
	}
	return query, nil, nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
