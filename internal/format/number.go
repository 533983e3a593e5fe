package format

import (
	"strconv"
	"strings"
)

// FormatNumberString inserts comma thousand separators into a decimal number
// string. The input is assumed to be a plain integer, optionally signed.
//
// Parameters:
//   - s: The number string to format.
//
// Returns:
//   - string: The input with separators inserted every three digits.
func FormatNumberString(s string) string {
	digits := strings.TrimPrefix(s, "-")
	if len(digits) <= 3 {
		return s
	}

	var b strings.Builder
	if len(digits) < len(s) {
		b.WriteByte('-')
	}

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatNumber renders n in decimal with thousand separators.
func FormatNumber(n uint64) string {
	return FormatNumberString(strconv.FormatUint(n, 10))
}
