// SPDX-License-Identifier: Apache-2.0

package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pricelens/pricelens-mcp/internal/config"
	"github.com/pricelens/pricelens-mcp/internal/schema"
)

func TestClassifier_IsPricingExport(t *testing.T) {
	classifier := NewClassifier(config.Default().Detection)

	tests := []struct {
		name     string
		filename string
		columns  []string
		want     bool
	}{
		{
			name:     "filename signal alone is sufficient",
			filename: "Helium10_XRAY_2024.csv",
			columns:  []string{"colA", "colB"},
			want:     true,
		},
		{
			name:     "filename matching is case insensitive",
			filename: "JUNGLESCOUT-export.xlsx",
			columns:  nil,
			want:     true,
		},
		{
			name:     "three roles with no filename hint",
			filename: "data.csv",
			columns:  []string{"asin", "price", "title"},
			want:     true,
		},
		{
			name:     "two roles and no filename hint is not enough",
			filename: "data.csv",
			columns:  []string{"asin", "price", "brand"},
			want:     false,
		},
		{
			name:     "duplicate roles count once",
			filename: "data.csv",
			columns:  []string{"price", "launch_price", "list_price"},
			want:     false,
		},
		{
			name:     "no signal at all",
			filename: "notes.csv",
			columns:  []string{"comment", "author"},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles := schema.MapRoles(tt.columns)
			assert.Equal(t, tt.want, classifier.IsPricingExport(tt.filename, roles))
		})
	}
}
