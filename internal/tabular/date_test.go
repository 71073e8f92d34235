// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantDate string // empty means passthrough expected
	}{
		{name: "iso", input: "2024-01-15", wantDate: "2024-01-15"},
		{name: "alt iso", input: "2024/01/15", wantDate: "2024-01-15"},
		{name: "day first", input: "15/01/2024", wantDate: "2024-01-15"},
		{name: "ambiguous resolves day first", input: "03/04/2024", wantDate: "2024-04-03"},
		{name: "textual month", input: "15-Jan-2024", wantDate: "2024-01-15"},
		{name: "full textual", input: "January 15, 2024", wantDate: "2024-01-15"},
		{name: "sql datetime", input: "2024-01-15 10:30:00", wantDate: "2024-01-15"},
		{name: "unrecognized passes through", input: "Q3 2024"},
		{name: "free text passes through", input: "sometime soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDate(TextCell(tt.input))
			if tt.wantDate == "" {
				require.Equal(t, KindText, got.Kind, "unparsable dates must pass through as text")
				assert.Equal(t, tt.input, got.Text)
				return
			}
			require.Equal(t, KindDate, got.Kind)
			assert.Equal(t, tt.wantDate, got.String())
		})
	}
}

func TestNormalizeDate_NonTextCellsUntouched(t *testing.T) {
	d := NormalizeDate(TextCell("2024-01-15"))
	require.Equal(t, KindDate, d.Kind)
	assert.Equal(t, d, NormalizeDate(d), "date cells must be stable under renormalization")
	assert.Equal(t, EmptyCell(), NormalizeDate(EmptyCell()))
	assert.Equal(t, NumberCell(42), NormalizeDate(NumberCell(42)))
}
