// SPDX-License-Identifier: Apache-2.0

// Package clean canonicalizes column identifiers and classifies column
// content so later stages can rely on normalized cells and stable names.
package clean

import (
	"regexp"
	"strings"

	"github.com/pricelens/pricelens-mcp/internal/tabular"
)

// ColumnType is the inferred content type of a column.
type ColumnType string

const (
	TypeNumeric ColumnType = "numeric"
	TypeDate    ColumnType = "date"
	TypeText    ColumnType = "text"
	TypeUnknown ColumnType = "unknown"
)

// ColumnProfile records the canonical name and inferred type of one column.
type ColumnProfile struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// ColumnClassifier infers a column's content type from a bounded sample of
// its non-empty cells. Implementations are interchangeable so classification
// strategies can be unit-tested and swapped independently of the cleaning
// pass.
type ColumnClassifier interface {
	Classify(samples []tabular.Cell) ColumnType
}

// numericShape matches an optionally signed run of digits with grouping
// separators, e.g. "1.234,56" or "-1 200".
var numericShape = regexp.MustCompile(`^-?[0-9][0-9,.\s]*$`)

// SampleClassifier is the default heuristic classifier: a column is numeric
// when every sample has a numeric shape, a date when every sample carries a
// date separator and enough digits, text otherwise. Columns with too few or
// atypical samples may be misclassified; that is accepted behavior, not a
// bug to fix here.
type SampleClassifier struct {
	// DateDigitThreshold is the minimum mean digit count per sample for a
	// column to qualify as a date column.
	DateDigitThreshold float64
}

// NewSampleClassifier creates a SampleClassifier with the default threshold.
func NewSampleClassifier() *SampleClassifier {
	return &SampleClassifier{DateDigitThreshold: 4.0}
}

func (sc *SampleClassifier) Classify(samples []tabular.Cell) ColumnType {
	if len(samples) == 0 {
		return TypeUnknown
	}

	// Already-normalized columns keep their type; reclassification must be
	// a no-op on cleaned data.
	if allKind(samples, tabular.KindNumber) {
		return TypeNumeric
	}
	if allKind(samples, tabular.KindDate) {
		return TypeDate
	}

	numeric := true
	datelike := true
	digits := 0
	for _, s := range samples {
		text := strings.TrimSpace(s.String())
		if !numericShape.MatchString(text) {
			numeric = false
		}
		if !strings.ContainsAny(text, "/-") {
			datelike = false
		}
		digits += countDigits(text)
	}
	if numeric {
		return TypeNumeric
	}
	if datelike && float64(digits)/float64(len(samples)) > sc.DateDigitThreshold {
		return TypeDate
	}
	return TypeText
}

func allKind(cells []tabular.Cell, kind tabular.Kind) bool {
	for _, c := range cells {
		if c.Kind != kind {
			return false
		}
	}
	return true
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
