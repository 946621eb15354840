package store

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mrz1836/roadmap/internal/constants"
)

// Slugify derives an on-disk name fragment from a title: diacritics
// folded away, lowercased, non-alphanumeric runs collapsed to single
// hyphens, truncated to the slug length limit.
func Slugify(title string) string {
	folded, _, err := transform.String(transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	), title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := b.String()
	if len(slug) > constants.MaxSlugLength {
		slug = slug[:constants.MaxSlugLength]
	}
	return strings.Trim(slug, "-")
}
