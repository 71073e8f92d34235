// SPDX-License-Identifier: Apache-2.0

package tabular

// Row maps a column identifier to its cell value. Every row in a Dataset
// carries exactly the header's column set; readers pad short rows with empty
// cells and drop overflow cells to keep the invariant.
type Row map[string]Cell

// Dataset is an ordered tabular view of one parsed export. It lives for the
// duration of a single extraction and is never persisted.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// NewDataset creates an empty dataset over the given column identifiers.
func NewDataset(columns []string) *Dataset {
	return &Dataset{Columns: columns}
}

// Append adds a row built from cells in column order. Short rows are padded
// with empty cells; cells beyond the header width are discarded.
func (d *Dataset) Append(cells []Cell) {
	row := make(Row, len(d.Columns))
	for i, col := range d.Columns {
		if i < len(cells) {
			row[col] = cells[i]
		} else {
			row[col] = EmptyCell()
		}
	}
	d.Rows = append(d.Rows, row)
}

// RenameColumn rewrites a column identifier in the header and in every row.
func (d *Dataset) RenameColumn(from, to string) {
	if from == to {
		return
	}
	for i, col := range d.Columns {
		if col == from {
			d.Columns[i] = to
		}
	}
	for _, row := range d.Rows {
		if cell, ok := row[from]; ok {
			row[to] = cell
			delete(row, from)
		}
	}
}

// Sample returns up to limit non-empty cells from a column, in row order.
func (d *Dataset) Sample(column string, limit int) []Cell {
	var out []Cell
	for _, row := range d.Rows {
		cell := row[column]
		if cell.IsEmpty() {
			continue
		}
		out = append(out, cell)
		if len(out) == limit {
			break
		}
	}
	return out
}
