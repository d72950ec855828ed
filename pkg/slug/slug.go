// Package slug derives stable, URL-safe identifiers from display names.
// The same name always yields the same identifier, which is what makes the
// venue and beer upserts idempotent.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	VenuePrefix = "user-"
	BeerPrefix  = "beer-"

	venueMaxLen = 40
	beerMaxLen  = 48
)

// Make normalizes a display name into a lowercase string of [a-z0-9-] with
// diacritics stripped and no leading or trailing hyphen. A name with no
// alphanumeric content yields the empty string.
func Make(name string) string {
	// transformers carry state, so each call builds its own chain
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		folded = name
	}

	folded = strings.ToLower(folded)

	var builder strings.Builder

	builder.Grow(len(folded))

	pendingHyphen := false

	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && builder.Len() > 0 {
				builder.WriteByte('-')
			}

			pendingHyphen = false

			builder.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}

	return builder.String()
}

// VenueID derives the identifier for a user-created venue. Pre-seeded venues
// carry externally assigned identifiers and never pass through here.
func VenueID(name string) string {
	return VenuePrefix + truncate(Make(name), venueMaxLen)
}

// BeerID derives the identifier for a beer.
func BeerID(name string) string {
	return BeerPrefix + truncate(Make(name), beerMaxLen)
}

func truncate(slug string, maxLen int) string {
	if len(slug) > maxLen {
		slug = slug[:maxLen]
	}

	return strings.TrimRight(slug, "-")
}
