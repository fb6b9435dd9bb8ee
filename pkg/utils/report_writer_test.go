/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_writer_test.go
Description: Tests for the report writer.
*/

package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	result := map[string]interface{}{"preset": "list", "records": 2}

	path, err := WriteReport(dir, "list", "posts.json", result)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "list"), filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, "_list_posts-json.json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "list", decoded["preset"])

	_, err = WriteReport("", "list", "x", result)
	assert.Error(t, err)

	_, err = WriteReport(dir, "list", "x", func() {})
	assert.Error(t, err)
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "Records-from-http-localhost-posts", SafeName("Records from http://localhost/posts"))
	assert.Equal(t, "run", SafeName(""))
	assert.Equal(t, "run", SafeName("///"))
	assert.Equal(t, "posts_2026", SafeName("posts_2026"))
}
