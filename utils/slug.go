package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FallbackSlug is used when a name slugifies to nothing (e.g. only symbols).
const FallbackSlug = "invitation"

// MaxSlugLen bounds the base slug so suffixes still fit the column.
const MaxSlugLen = 150

// Slugify lower-cases s, folds accented Latin letters to ASCII and collapses
// every run of other characters into a single "-".
//
//	Slugify("Ann Lee and Tom Lee") == "ann-lee-and-tom-lee"
//	Slugify("  Zoë & José ")      == "zoe-jose"
func Slugify(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimRight(b.String(), "-")
	if len(out) > MaxSlugLen {
		out = strings.TrimRight(out[:MaxSlugLen], "-")
	}
	return out
}

// CoupleSlug is the default slug base for an invitation.
func CoupleSlug(bride, groom string) string {
	s := Slugify(strings.TrimSpace(bride) + " and " + strings.TrimSpace(groom))
	if s == "" || s == "and" {
		return FallbackSlug
	}
	return s
}
