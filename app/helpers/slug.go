package helpers

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify lowercases a title, strips accents and replaces spaces with
// hyphens: "Hôtel Carlton" -> "hotel-carlton".
func Slugify(title string) string {
	folded, _, err := transform.String(foldAccents, title)
	if err != nil {
		folded = title
	}
	return strings.ReplaceAll(strings.ToLower(folded), " ", "-")
}

// ListingSlug appends a millisecond timestamp so duplicate titles still get
// unique slugs.
func ListingSlug(title string, now time.Time) string {
	return Slugify(title) + "-" + strconv.FormatInt(now.UnixMilli(), 10)
}
