// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeText converts a raw payload to a UTF-8 string. A declared single-byte
// charset is honored; anything else falls back to tolerant UTF-8 where
// invalid byte sequences become U+FFFD instead of failing the extraction.
func decodeText(content []byte, charset string) string {
	content = bytes.TrimPrefix(content, utf8BOM)

	switch normalizeCharset(charset) {
	case "latin1":
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
		if err == nil {
			return string(decoded)
		}
	case "windows1252":
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(content)
		if err == nil {
			return string(decoded)
		}
	}
	return strings.ToValidUTF8(string(content), "�")
}

func normalizeCharset(charset string) string {
	switch strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(charset, "-", ""), "_", "")) {
	case "latin1", "iso88591", "l1":
		return "latin1"
	case "windows1252", "cp1252":
		return "windows1252"
	}
	return "utf8"
}
