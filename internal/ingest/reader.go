// SPDX-License-Identifier: Apache-2.0

// Package ingest turns raw export payloads into tabular datasets. Each file
// family (delimited text, spreadsheet) has its own Reader; the pipeline picks
// the first reader that claims a source.
package ingest

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pricelens/pricelens-mcp/internal/tabular"
)

// Source describes the raw input to the extraction pipeline.
type Source struct {
	// Content is the raw file payload.
	Content []byte
	// Filename is used for extension dispatch and export-tool hinting only.
	Filename string
	// Charset optionally declares the text encoding of Content.
	Charset string
}

// Ext returns the lowercased filename extension, including the dot.
func (s Source) Ext() string {
	return strings.ToLower(filepath.Ext(s.Filename))
}

// Reader parses one family of file formats into a Dataset.
type Reader interface {
	CanHandle(source Source) bool
	Read(source Source) (*tabular.Dataset, error)
	Name() string
}

// headerNames canonicalizes a raw header row into usable column identifiers:
// blank headers get positional names and duplicates get numeric suffixes, so
// that row maps never collide.
func headerNames(raw []string) []string {
	names := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, h := range raw {
		name := strings.TrimSpace(h)
		if name == "" {
			name = "column_" + strconv.Itoa(i+1)
		}
		if n := seen[name]; n > 0 {
			seen[name] = n + 1
			name = name + "_" + strconv.Itoa(n+1)
		}
		seen[name]++
		names[i] = name
	}
	return names
}
