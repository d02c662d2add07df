package cache

import (
	"strings"
	"unicode"
)

// Namespace converts a resource type name to its snake_case cache namespace
// (e.g. "BannerItem" -> "banner_item"). Punctuation that can show up in
// reflected type names (pointers, generic brackets) is collapsed to
// underscores; anything else would break prefix-based invalidation and
// produce keys external cache backends reject.
func Namespace(name string) string {
	if name == "" {
		return ""
	}

	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(runes) + len(runes)/2)

	lastSep := false
	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			if b.Len() > 0 && !lastSep {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || nextLower {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			lastSep = false
		case unicode.IsLower(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSep = false
		default:
			if b.Len() > 0 && !lastSep {
				b.WriteByte('_')
				lastSep = true
			}
		}
	}

	return strings.Trim(b.String(), "_")
}
