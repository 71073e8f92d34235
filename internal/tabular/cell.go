// SPDX-License-Identifier: Apache-2.0

// Package tabular holds the dataset model shared by the extraction engine:
// a tagged cell value, an ordered dataset, and the locale-tolerant number,
// date and delimiter normalizers that operate on raw exports.
package tabular

import (
	"strconv"
	"time"
)

// Kind identifies which arm of a Cell is populated.
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	}
	return "unknown"
}

// Cell is the tagged union carried through the pipeline. Raw ingestion
// produces only Empty and Text cells; the structural cleaner rewrites whole
// columns to Number or Date cells once a column has been classified.
type Cell struct {
	Kind   Kind
	Text   string
	Number float64
	Date   time.Time
}

// EmptyCell returns the empty cell value.
func EmptyCell() Cell {
	return Cell{Kind: KindEmpty}
}

// TextCell wraps a raw string. Blank strings collapse to the empty cell so
// that sampling and row validation never have to special-case whitespace.
func TextCell(s string) Cell {
	if isBlank(s) {
		return EmptyCell()
	}
	return Cell{Kind: KindText, Text: s}
}

// NumberCell wraps a normalized numeric value.
func NumberCell(f float64) Cell {
	return Cell{Kind: KindNumber, Number: f}
}

// DateCell wraps a normalized date.
func DateCell(t time.Time) Cell {
	return Cell{Kind: KindDate, Date: t}
}

// IsEmpty reports whether the cell carries no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// String renders the cell canonically: numbers in minimal decimal notation,
// dates as ISO 8601 calendar dates, text verbatim.
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindDate:
		return c.Date.Format("2006-01-02")
	}
	return ""
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
