// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pricelens/pricelens-mcp/internal/tabular"
)

// SheetReader parses OOXML spreadsheet exports via excelize. Only the first
// sheet is read; market-research tools export one sheet per file. Legacy
// binary .xls is not supported and falls through to the unsupported path.
type SheetReader struct{}

// NewSheetReader creates a spreadsheet reader.
func NewSheetReader() *SheetReader {
	return &SheetReader{}
}

func (r *SheetReader) Name() string {
	return "spreadsheet"
}

func (r *SheetReader) CanHandle(source Source) bool {
	switch source.Ext() {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

// Read opens the workbook in memory and converts the first sheet to a
// Dataset, first row as header.
func (r *SheetReader) Read(source Source) (*tabular.Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(source.Content))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %q has no sheets", source.Filename)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	ds := tabular.NewDataset(headerNames(rows[0]))
	for _, record := range rows[1:] {
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
