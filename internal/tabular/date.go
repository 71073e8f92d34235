// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"strings"
	"time"
)

// dateLayouts is the ordered list of accepted date notations. ISO comes
// first, then day/month/year before month/day/year, then textual month
// forms. For ambiguous all-numeric dates the day-first reading wins.
var dateLayouts = []string{
	"2006-01-02",          // ISO: 2024-01-15
	"2006/01/02",          // Alt ISO
	"02/01/2006",          // EU: 15/01/2024
	"01/02/2006",          // US: 01/15/2024
	"02-01-2006",          // EU dashed
	"02-Jan-2006",         // Text: 15-Jan-2024
	"January 2, 2006",     // Full text
	"2006-01-02 15:04:05", // SQL datetime
	time.RFC3339,          // With time and zone
}

// NormalizeDate converts a date-looking text cell into a Date cell using the
// first layout that parses. Unrecognized shapes are passed through unchanged
// as text — deliberately not an error, so no value is ever lost to an
// unknown date format. Date cells pass through untouched.
func NormalizeDate(c Cell) Cell {
	if c.Kind != KindText {
		return c
	}
	s := strings.TrimSpace(c.Text)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateCell(t)
		}
	}
	return c
}
