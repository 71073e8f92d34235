// SPDX-License-Identifier: Apache-2.0

// Package pricing implements pricing-export detection, price-record
// extraction and the pipeline that ties readers, cleaner and role mapping
// together.
package pricing

// PriceRecord is one validated, positively-priced product entry extracted
// from a dataset. Identifier and title are truncated defensively against
// malformed exports; auxiliary fields default to zero when their column is
// unmapped or unparsable.
type PriceRecord struct {
	Identifier string  `json:"identifier"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	Units      int     `json:"units"`
	Revenue    float64 `json:"revenue"`
	Rank       int     `json:"rank"`
	Reviews    int     `json:"reviews"`
}

// PriceRange is the min/max over all valid prices in an extraction.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ExtractionResult is the engine's output. TotalProducts, AveragePrice and
// PriceRange are computed over the full set of valid records; Products is
// the capped view. Downstream consumers rely on the aggregates covering more
// data than the record list, so the asymmetry is a contract.
type ExtractionResult struct {
	HasRealData   bool          `json:"hasRealData"`
	Products      []PriceRecord `json:"products"`
	AveragePrice  float64       `json:"averagePrice"`
	PriceRange    PriceRange    `json:"priceRange"`
	TotalProducts int           `json:"totalProducts"`
	SourceFile    string        `json:"sourceFile"`
	// SkippedRows counts rows dropped for a non-positive or unparsable
	// price, so degraded inputs stay observable.
	SkippedRows int `json:"skippedRows,omitempty"`
	// Error carries the reason when HasRealData is false for a structural
	// cause (unsupported file, unreadable payload, no price column). It is a
	// value, never a thrown error: callers gate pipeline continuation on it.
	Error string `json:"error,omitempty"`
}

// failed builds the structured degraded result used on every non-extracting
// path.
func failed(sourceFile, reason string) ExtractionResult {
	return ExtractionResult{
		HasRealData: false,
		SourceFile:  sourceFile,
		Error:       reason,
	}
}
