/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: webapi.go
Description: RecordSource implementation for web API endpoints. Supports GET/POST, custom
headers, JSON or YAML responses and an optional envelope key holding the record list.
*/

package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kleascm/recordguess/pkg/inference"
)

// WebAPISource fetches records from a web API endpoint
type WebAPISource struct {
	NameStr        string
	DescriptionStr string
	URL            string
	Format         string // "json", "yaml", "ndjson"; taken from Content-Type when empty
	Method         string // "GET" or "POST"
	Headers        map[string]string
	Body           []byte
	Envelope       string
	Timeout        time.Duration
	dedup          *dedup
}

// NewWebAPISource creates a new WebAPISource
func NewWebAPISource(name, desc, url, format, method string, headers map[string]string, body []byte, envelope string, timeout time.Duration, dedupe bool) *WebAPISource {
	return &WebAPISource{
		NameStr:        name,
		DescriptionStr: desc,
		URL:            url,
		Format:         format,
		Method:         method,
		Headers:        headers,
		Body:           body,
		Envelope:       envelope,
		Timeout:        timeout,
		dedup:          newDedup(dedupe),
	}
}

func (ws *WebAPISource) Name() string        { return ws.NameStr }
func (ws *WebAPISource) Description() string { return ws.DescriptionStr }

// FetchRecords calls the API and decodes the response
func (ws *WebAPISource) FetchRecords(ctx context.Context) ([]inference.Record, error) {
	client := &http.Client{Timeout: ws.Timeout}
	var req *http.Request
	var err error

	if strings.EqualFold(ws.Method, http.MethodPost) {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, ws.URL, bytes.NewReader(ws.Body))
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, ws.URL, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")
	for k, v := range ws.Headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call API: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read API response: %w", err)
	}

	format := ws.Format
	if format == "" {
		format = formatFromContentType(resp.Header.Get("Content-Type"))
	}
	objects, err := Decode(data, format, ws.Envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}
	return ws.dedup.collect(objects), nil
}

func formatFromContentType(contentType string) string {
	contentType = strings.ToLower(contentType)
	switch {
	case strings.Contains(contentType, "ndjson"), strings.Contains(contentType, "jsonl"):
		return FormatNDJSON
	case strings.Contains(contentType, "yaml"):
		return FormatYAML
	}
	return FormatJSON
}
