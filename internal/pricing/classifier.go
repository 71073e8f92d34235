// SPDX-License-Identifier: Apache-2.0

package pricing

import (
	"strings"

	"github.com/pricelens/pricelens-mcp/internal/config"
	"github.com/pricelens/pricelens-mcp/internal/schema"
)

// Classifier decides whether a dataset is a pricing intelligence export
// worth extracting. Two independent signals, either alone sufficient: the
// filename mentions a known export tool, or the schema mapper resolves
// enough distinct roles from the columns.
type Classifier struct {
	keywords []string
	minRoles int
}

// NewClassifier creates a Classifier from detection settings.
func NewClassifier(cfg config.DetectionConfig) *Classifier {
	keywords := make([]string, len(cfg.ExportToolKeywords))
	for i, kw := range cfg.ExportToolKeywords {
		keywords[i] = strings.ToLower(kw)
	}
	return &Classifier{keywords: keywords, minRoles: cfg.MinRoles}
}

// IsPricingExport reports whether the file should be extracted.
func (c *Classifier) IsPricingExport(filename string, roles schema.RoleMap) bool {
	lower := strings.ToLower(filename)
	for _, kw := range c.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return schema.DistinctRoles(roles) >= c.minRoles
}
