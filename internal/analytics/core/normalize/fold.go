package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold reduces a column name to a comparison key: lower case, Vietnamese
// diacritics removed, đ mapped to d, and spaces, underscores and hyphens
// dropped. "Thời gian tạo đơn" and "thoi_gian_tao_don" fold to the same key.
func Fold(s string) string {
	// transformers carry state; build one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range strings.ToLower(stripped) {
		switch {
		case r == 'đ':
			b.WriteRune('d')
		case unicode.IsSpace(r), r == '_', r == '-':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
