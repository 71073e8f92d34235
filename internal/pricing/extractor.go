// SPDX-License-Identifier: Apache-2.0

package pricing

import (
	"math"

	"github.com/pricelens/pricelens-mcp/internal/config"
	"github.com/pricelens/pricelens-mcp/internal/report"
	"github.com/pricelens/pricelens-mcp/internal/schema"
	"github.com/pricelens/pricelens-mcp/internal/tabular"
)

// Extractor walks a cleaned, role-mapped dataset and produces validated price
// records plus aggregate statistics.
type Extractor struct {
	recordCap     int
	maxIdentifier int
	maxTitle      int
	reporter      *report.Reporter
}

// NewExtractor creates an Extractor. A nil reporter is replaced with a
// discarding one.
func NewExtractor(cfg config.ExtractionConfig, reporter *report.Reporter) *Extractor {
	if reporter == nil {
		reporter = report.Discard()
	}
	return &Extractor{
		recordCap:     cfg.RecordCap,
		maxIdentifier: cfg.MaxIdentifierLength,
		maxTitle:      cfg.MaxTitleLength,
		reporter:      reporter,
	}
}

// Extract builds price records from every row whose resolved price is
// strictly positive. Rows with a non-positive or unparsable price are
// skipped, never aborting the extraction. Aggregates cover the full valid
// set; the returned record list is capped.
func (e *Extractor) Extract(ds *tabular.Dataset, roles schema.RoleMap, sourceFile string) ExtractionResult {
	priceCol := schema.ColumnFor(roles, ds.Columns, schema.RolePrice)
	if priceCol == "" {
		e.reporter.Warn("[extract] %s: no column maps to price, skipping row scan", sourceFile)
		return failed(sourceFile, "no price column resolved")
	}

	identCol := schema.ColumnFor(roles, ds.Columns, schema.RoleIdentifier)
	titleCol := schema.ColumnFor(roles, ds.Columns, schema.RoleTitle)
	unitsCol := schema.ColumnFor(roles, ds.Columns, schema.RoleUnits)
	revenueCol := schema.ColumnFor(roles, ds.Columns, schema.RoleRevenue)
	rankCol := schema.ColumnFor(roles, ds.Columns, schema.RoleRank)
	reviewsCol := schema.ColumnFor(roles, ds.Columns, schema.RoleReviews)

	result := ExtractionResult{SourceFile: sourceFile}
	var sum, min, max float64

	for _, row := range ds.Rows {
		price := tabular.NormalizeNumber(row[priceCol])
		if price <= 0 {
			result.SkippedRows++
			continue
		}

		record := PriceRecord{
			Identifier: truncate(cellText(row, identCol), e.maxIdentifier),
			Title:      truncate(cellText(row, titleCol), e.maxTitle),
			Price:      price,
			Units:      nonNegativeInt(row, unitsCol),
			Revenue:    math.Max(0, cellNumber(row, revenueCol)),
			Rank:       nonNegativeInt(row, rankCol),
			Reviews:    nonNegativeInt(row, reviewsCol),
		}

		if result.TotalProducts == 0 || price < min {
			min = price
		}
		if result.TotalProducts == 0 || price > max {
			max = price
		}
		sum += price
		result.TotalProducts++
		if len(result.Products) < e.recordCap {
			result.Products = append(result.Products, record)
		}
	}

	if result.TotalProducts > 0 {
		result.HasRealData = true
		result.AveragePrice = round2(sum / float64(result.TotalProducts))
		result.PriceRange = PriceRange{Min: min, Max: max}
	}
	e.reporter.Info("[extract] %s: %d valid records (%d returned, %d skipped)",
		sourceFile, result.TotalProducts, len(result.Products), result.SkippedRows)
	return result
}

func cellText(row tabular.Row, column string) string {
	if column == "" {
		return ""
	}
	return row[column].String()
}

func cellNumber(row tabular.Row, column string) float64 {
	if column == "" {
		return 0
	}
	return tabular.NormalizeNumber(row[column])
}

func nonNegativeInt(row tabular.Row, column string) int {
	n := int(math.Round(cellNumber(row, column)))
	if n < 0 {
		return 0
	}
	return n
}

// truncate bounds a string to max runes without splitting a multi-byte
// character.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
