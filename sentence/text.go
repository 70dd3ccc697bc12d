package sentence

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/ftl/iec61162/iec"
)

/* TXT text related functions */

var textCodec encoding.Encoding = charmap.ISO8859_1

// PrepareText transcodes the given UTF-8 text for transmission in a TXT
// sentence. Characters outside the printable ASCII range and the reserved
// characters of [61162-1] table 1 are escaped as ^XX with the two hex digits
// of their ISO 8859-1 code point.
func PrepareText(text string) string {
	encoder := textCodec.NewEncoder()
	encodedBytes, err := encoder.Bytes([]byte(text))
	if err != nil { // something went wrong, but be lenient and use the raw bytes
		encodedBytes = []byte(text)
	}

	var b strings.Builder
	for _, c := range encodedBytes {
		if mustEscape(c) {
			fmt.Fprintf(&b, "^%02X", c)
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// mustEscape indicates if the given character is reserved as per [61162-1]
// table 1 or outside the printable ASCII range.
func mustEscape(c byte) bool {
	switch c {
	case '$', '!', '*', ',', '\\', '^', '~':
		return true
	}
	return c < 0x20 || c > 0x7E
}

// splitEscapedText splits prepared text into fragments of at most maxChars
// characters, never splitting a ^XX escape sequence across fragments.
func splitEscapedText(text string, maxChars int, maxFragments int) ([]string, error) {
	if len(text) <= maxChars {
		return []string{text}, nil
	}

	totalChars := len(text)
	result := make([]string, 0, totalChars/maxChars+1)
	for len(text) > 0 {
		end := maxChars
		if end >= len(text) {
			result = append(result, text)
			break
		}
		for i := end - 2; i < end; i++ {
			if text[i] == '^' {
				end = i
				break
			}
		}
		result = append(result, text[:end])
		text = text[end:]
	}

	if len(result) > maxFragments {
		return nil, iec.PayloadTooLargeError{Formatter: string(TXT), Chars: totalChars, MaxChars: maxFragments * maxChars}
	}
	return result, nil
}
