// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  rune
	}{
		{name: "comma", input: "asin,price,title\nB0001,9.99,Widget\n", want: ','},
		{name: "semicolon", input: "asin;price;title\nB0001;9,99;Widget\n", want: ';'},
		{name: "tab", input: "asin\tprice\ttitle\nB0001\t9.99\tWidget\n", want: '\t'},
		{name: "pipe", input: "asin|price|title\nB0001|9.99|Widget\n", want: '|'},
		{name: "quoted comma inside semicolon file", input: `"name, long";price` + "\nfoo;1\n", want: ';'},
		{name: "single column falls back to comma", input: "just_one_header\nvalue\n", want: ','},
		{name: "empty input falls back to comma", input: "", want: ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectDelimiter(tt.input))
		})
	}
}
