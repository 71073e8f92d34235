// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// ErrNotNumeric is returned by ParseNumber when no numeric value can be
// recovered from the input.
var ErrNotNumeric = errors.New("value is not numeric")

// ParseNumber converts a numeric-looking string in arbitrary locale notation
// into a float64. It strips everything except digits, separators, whitespace
// and a leading sign, then resolves the decimal separator by position: the
// separator kind that occurs last is the decimal point, the other is
// thousands grouping.
//
// Known limitation: a bare grouped integer such as "1.234" is ambiguous
// (1234 vs 1.234) and resolves to 1.234 under the last-separator rule. This
// matches the behavior downstream consumers already depend on.
func ParseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrNotNumeric
	}
	negative := strings.HasPrefix(s, "-")

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	s = strings.TrimSpace(b.String())
	if s == "" {
		return 0, ErrNotNumeric
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0 && lastDot > lastComma:
		// "1,234.56" — dot is decimal, commas are grouping.
		s = strings.ReplaceAll(s, ",", "")
	case lastDot >= 0 && lastComma >= 0 && lastComma > lastDot:
		// "1.234,56" — comma is decimal, dots are grouping.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	default:
		// One separator kind or none: "1 234,56", "49.99", "17".
		s = strings.ReplaceAll(s, ",", ".")
	}
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return 0, ErrNotNumeric
	}
	if negative {
		s = "-" + s
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrNotNumeric
	}
	return f, nil
}

// NormalizeNumber converts a cell to a float64 and never fails: Number cells
// pass through unchanged (idempotence), anything unparsable collapses to 0.
func NormalizeNumber(c Cell) float64 {
	switch c.Kind {
	case KindNumber:
		return c.Number
	case KindText:
		f, err := ParseNumber(c.Text)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}
