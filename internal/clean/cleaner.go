// SPDX-License-Identifier: Apache-2.0

package clean

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pricelens/pricelens-mcp/internal/tabular"
)

// nonAlnumRun matches any run of characters outside [a-z0-9] in an
// already-lowercased identifier.
var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// CanonicalName reduces a raw column header to lowercase alphanumeric tokens
// joined by single underscores: "Monthly Sales (units)" -> "monthly_sales_units".
func CanonicalName(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	return strings.Trim(nonAlnumRun.ReplaceAllString(lower, "_"), "_")
}

// Cleaner canonicalizes column identifiers and normalizes column content
// according to the classifier's verdict.
type Cleaner struct {
	classifier ColumnClassifier
	sampleSize int
}

// NewCleaner creates a Cleaner using the given classification strategy.
// sampleSize bounds how many non-empty cells per column are inspected.
func NewCleaner(classifier ColumnClassifier, sampleSize int) *Cleaner {
	if sampleSize <= 0 {
		sampleSize = 10
	}
	return &Cleaner{classifier: classifier, sampleSize: sampleSize}
}

// Clean canonicalizes every column identifier, classifies each column from a
// bounded sample, and rewrites numeric and date columns to normalized cells.
// The dataset is modified in place and returned alongside the per-column
// profiles. Cleaning is deterministic and idempotent: cleaning an
// already-clean dataset changes nothing.
func (c *Cleaner) Clean(ds *tabular.Dataset) (*tabular.Dataset, []ColumnProfile) {
	c.canonicalizeColumns(ds)

	profiles := make([]ColumnProfile, 0, len(ds.Columns))
	for _, col := range ds.Columns {
		samples := ds.Sample(col, c.sampleSize)
		colType := c.classifier.Classify(samples)
		switch colType {
		case TypeNumeric:
			for _, row := range ds.Rows {
				if cell := row[col]; !cell.IsEmpty() {
					row[col] = tabular.NumberCell(tabular.NormalizeNumber(cell))
				}
			}
		case TypeDate:
			for _, row := range ds.Rows {
				if cell := row[col]; !cell.IsEmpty() {
					row[col] = tabular.NormalizeDate(cell)
				}
			}
		}
		profiles = append(profiles, ColumnProfile{Name: col, Type: colType})
	}
	return ds, profiles
}

// canonicalizeColumns renames every column to its canonical identifier,
// suffixing collisions so distinct source columns stay distinct.
func (c *Cleaner) canonicalizeColumns(ds *tabular.Dataset) {
	used := make(map[string]bool, len(ds.Columns))
	for _, col := range ds.Columns {
		name := CanonicalName(col)
		if name == "" {
			name = "column"
		}
		if name != col {
			base := name
			for n := 2; used[name] || contains(ds.Columns, name); n++ {
				name = fmt.Sprintf("%s_%d", base, n)
			}
		}
		used[name] = true
		ds.RenameColumn(col, name)
	}
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
