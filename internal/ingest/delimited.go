// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pricelens/pricelens-mcp/internal/tabular"
)

// DelimitedReader parses delimited-text exports (CSV and friends). The field
// separator is detected from the payload, not the extension, so a
// semicolon-separated ".csv" parses correctly.
type DelimitedReader struct{}

// NewDelimitedReader creates a delimited-text reader.
func NewDelimitedReader() *DelimitedReader {
	return &DelimitedReader{}
}

func (r *DelimitedReader) Name() string {
	return "delimited"
}

// CanHandle claims the common delimited-text extensions.
func (r *DelimitedReader) CanHandle(source Source) bool {
	switch source.Ext() {
	case ".csv", ".tsv", ".txt":
		return true
	}
	return false
}

// Read decodes the payload, detects its delimiter and builds a Dataset with
// the first row as header. Ragged rows are tolerated: short rows are padded
// with empty cells, overlong rows are truncated to the header width.
func (r *DelimitedReader) Read(source Source) (*tabular.Dataset, error) {
	text := decodeText(source.Content, source.Charset)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("file %q is empty", source.Filename)
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = tabular.DetectDelimiter(text)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	ds := tabular.NewDataset(headerNames(header))
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Row-level failure: skip the row, keep the rest.
			continue
		}
		cells := make([]tabular.Cell, len(record))
		empty := true
		for i, v := range record {
			cells[i] = tabular.TextCell(v)
			if !cells[i].IsEmpty() {
				empty = false
			}
		}
		if empty {
			continue
		}
		ds.Append(cells)
	}
	return ds, nil
}
