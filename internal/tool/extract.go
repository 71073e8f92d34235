// SPDX-License-Identifier: Apache-2.0

// Package tool exposes the extraction pipeline as an MCP tool.
package tool

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pricelens/pricelens-mcp/internal/config"
	"github.com/pricelens/pricelens-mcp/internal/ingest"
	"github.com/pricelens/pricelens-mcp/internal/pricing"
	"github.com/pricelens/pricelens-mcp/internal/report"
)

// MetadataExtractPricing describes the extract_pricing tool.
var MetadataExtractPricing = &mcp.Tool{
	Name: "extract_pricing",
	Description: "Extract validated price records from a market-research export " +
		"(CSV/TSV/TXT or XLSX/XLSM). The engine detects the field delimiter, " +
		"normalizes locale-ambiguous numbers and dates, maps columns to semantic " +
		"roles (price, units, revenue, rank, identifier, title, reviews) and " +
		"returns up to 20 records plus aggregate statistics computed over all " +
		"valid rows. Results are ground-truth-derived, never estimated: when " +
		"hasRealData is false the caller should fall back to model estimates.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content", "filename"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Raw file content. Use base64 (with content_encoding set) for binary spreadsheet formats.",
			},
			"content_encoding": map[string]interface{}{
				"type":        "string",
				"description": "How content is encoded. Defaults to text.",
				"enum":        []string{"text", "base64"},
			},
			"filename": map[string]interface{}{
				"type":        "string",
				"description": "Original filename; used for extension dispatch and export-tool hinting.",
			},
			"charset": map[string]interface{}{
				"type":        "string",
				"description": "Optional declared character encoding of text content (e.g. iso-8859-1). Invalid UTF-8 is tolerated either way.",
			},
		},
	},
}

// InputExtractPricing is the input for the ExtractPricing tool.
type InputExtractPricing struct {
	Content         string `json:"content"`
	ContentEncoding string `json:"content_encoding"`
	Filename        string `json:"filename"`
	Charset         string `json:"charset"`
}

// OutputExtractPricing is the output for the ExtractPricing tool.
type OutputExtractPricing struct {
	pricing.ExtractionResult
}

// NewExtractPricingHandler builds a handler around a configured pipeline.
// The only hard errors are missing required fields and undecodable base64;
// every malformed payload comes back as a structured result so pipeline
// callers can gate on hasRealData.
func NewExtractPricingHandler(cfg *config.Config, reporter *report.Reporter) func(ctx context.Context, req *mcp.CallToolRequest, input InputExtractPricing) (*mcp.CallToolResult, OutputExtractPricing, error) {
	pipeline := pricing.NewPipeline(cfg, reporter)

	return func(_ context.Context, _ *mcp.CallToolRequest, input InputExtractPricing) (*mcp.CallToolResult, OutputExtractPricing, error) {
		if input.Content == "" {
			return nil, OutputExtractPricing{}, fmt.Errorf("content is required")
		}
		if input.Filename == "" {
			return nil, OutputExtractPricing{}, fmt.Errorf("filename is required")
		}

		content := []byte(input.Content)
		if input.ContentEncoding == "base64" {
			decoded, err := base64.StdEncoding.DecodeString(input.Content)
			if err != nil {
				return nil, OutputExtractPricing{}, fmt.Errorf("decode base64 content: %w", err)
			}
			content = decoded
		}

		result := pipeline.Extract(ingest.Source{
			Content:  content,
			Filename: input.Filename,
			Charset:  input.Charset,
		})
		return nil, OutputExtractPricing{ExtractionResult: result}, nil
	}
}

// ExtractPricing runs the extraction pipeline with default configuration.
var ExtractPricing = NewExtractPricingHandler(config.Default(), nil)
