package sentence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepareText(t *testing.T) {
	tt := []struct {
		desc     string
		value    string
		expected string
	}{
		{
			desc:     "plain ASCII",
			value:    "Hello",
			expected: "Hello",
		},
		{
			desc:     "comma",
			value:    "A,B",
			expected: "A^2CB",
		},
		{
			desc:     "circumflex",
			value:    "a^b",
			expected: "a^5Eb",
		},
		{
			desc:     "start delimiters",
			value:    "$!",
			expected: "^24^21",
		},
		{
			desc:     "line ending",
			value:    "a\r\n",
			expected: "a^0D^0A",
		},
		{
			desc:     "non-ASCII via ISO 8859-1",
			value:    "Über",
			expected: "^DCber",
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual := PrepareText(tc.value)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestSplitEscapedText(t *testing.T) {
	tt := []struct {
		desc     string
		value    string
		max      int
		expected []string
	}{
		{
			desc:     "empty text",
			value:    "",
			max:      61,
			expected: []string{""},
		},
		{
			desc:     "fits into one fragment",
			value:    "Hello",
			max:      61,
			expected: []string{"Hello"},
		},
		{
			desc:     "split at the boundary",
			value:    strings.Repeat("a", 62),
			max:      61,
			expected: []string{strings.Repeat("a", 61), "a"},
		},
		{
			desc:     "escape sequence is not split",
			value:    strings.Repeat("a", 60) + "^2C",
			max:      61,
			expected: []string{strings.Repeat("a", 60), "^2C"},
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual, err := splitEscapedText(tc.value, tc.max, 99)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}
