package normalize

import (
	"regexp"
	"strconv"
)

var nonNumeric = regexp.MustCompile(`[^0-9\-]`)

// ParseInt coerces a raw amount or quantity cell into a whole number.
//
// Everything except digits and '-' is stripped before parsing, so currency
// symbols and thousands separators disappear ("1.200.000đ" -> 1200000).
// Empty, all-stripped or otherwise unparseable input yields 0.
func ParseInt(raw string) int64 {
	digits := nonNumeric.ReplaceAllString(raw, "")
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
