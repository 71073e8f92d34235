// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"encoding/csv"
	"strings"
)

// delimiterCandidates are tried in order; the first that splits the prefix
// into more than one field wins.
var delimiterCandidates = []rune{',', ';', '\t', '|'}

// detectPrefixBytes bounds how much of the payload the detector inspects.
const detectPrefixBytes = 4096

// DetectDelimiter determines the field separator of a raw delimited-text
// payload. It never fails: if no candidate yields more than one column the
// comma is returned and the caller ends up with a single-column dataset.
func DetectDelimiter(text string) rune {
	if len(text) > detectPrefixBytes {
		text = text[:detectPrefixBytes]
	}
	for _, cand := range delimiterCandidates {
		r := csv.NewReader(strings.NewReader(text))
		r.Comma = cand
		r.LazyQuotes = true
		r.FieldsPerRecord = -1
		record, err := r.Read()
		if err == nil && len(record) > 1 {
			return cand
		}
	}
	return ','
}
