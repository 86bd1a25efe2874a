// internal/utils/format.go
package utils

import (
	"fmt"
	"math"
	"strings"
)

// SplitTags turns a comma-separated tag string into a clean slice: pieces
// are trimmed and empties discarded, order preserved. Blank input yields an
// empty (non-nil) slice.
func SplitTags(raw string) []string {
	tags := []string{}
	for _, piece := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(piece); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// SlugifyTitle produces the seed used for placeholder cover images:
// whitespace becomes hyphens, an empty title falls back to "beat".
func SlugifyTitle(title string) string {
	slug := strings.Join(strings.Fields(title), "-")
	if slug == "" {
		return "beat"
	}
	return slug
}

// PlaceholderCoverURL builds a deterministic placeholder image reference.
// The image is never fetched by this service, only handed to clients.
func PlaceholderCoverURL(seed string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/400/400", seed)
}

// RoundPrice truncates a price to cents.
func RoundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}
