// internal/models/product.go
package models

// Genre is the closed set of genres a beat may carry. External input
// (form submissions, AI output) must be validated against this set before
// it enters the catalog.
type Genre string

const (
	GenreHipHop    Genre = "Hip Hop"
	GenreTrap      Genre = "Trap"
	GenreRnB       Genre = "R&B"
	GenrePop       Genre = "Pop"
	GenreEDM       Genre = "EDM"
	GenreLoFi      Genre = "Lo-Fi"
	GenreAmbient   Genre = "Ambient"
	GenreCinematic Genre = "Cinematic"
	GenreOther     Genre = "Other"
)

// GenreFallback is substituted for any out-of-set genre string.
const GenreFallback = GenreOther

var allGenres = []Genre{
	GenreHipHop,
	GenreTrap,
	GenreRnB,
	GenrePop,
	GenreEDM,
	GenreLoFi,
	GenreAmbient,
	GenreCinematic,
	GenreOther,
}

// AllGenres returns the genre set in its fixed order. The order matters:
// the mock catalog cycles through it by index.
func AllGenres() []Genre {
	genres := make([]Genre, len(allGenres))
	copy(genres, allGenres)
	return genres
}

// GenreByIndex cycles through the genre set for deterministic mock data.
func GenreByIndex(i int) Genre {
	return allGenres[i%len(allGenres)]
}

func (g Genre) Valid() bool {
	for _, known := range allGenres {
		if g == known {
			return true
		}
	}
	return false
}

// NormalizeGenre accepts an untrusted genre string and returns a member of
// the closed set, substituting the fallback for anything unknown.
func NormalizeGenre(raw string) Genre {
	if g := Genre(raw); g.Valid() {
		return g
	}
	return GenreFallback
}

// Product is a sellable beat. Records are immutable once added to the
// catalog; there are no edit or delete operations. The audio URL is an
// opaque reference and is never dereferenced for playback.
type Product struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Producer        string   `json:"producer"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Genre           Genre    `json:"genre"`
	Tags            []string `json:"tags"`
	CoverImageURL   string   `json:"cover_image_url"`
	AudioFileURL    string   `json:"audio_file_url"`
	BPM             *int     `json:"bpm,omitempty"`
	Key             *string  `json:"key,omitempty"`
	DurationMinutes *float64 `json:"duration_minutes,omitempty"`
}

// SuggestionType selects which single field a suggestion request targets.
type SuggestionType string

const (
	SuggestionTypeTitle       SuggestionType = "title"
	SuggestionTypeDescription SuggestionType = "description"
)

// SuggestionRequest is the transient value handed to the suggestion client.
// ProductInfo carries whatever partial context the caller already has.
type SuggestionRequest struct {
	Type        SuggestionType `json:"type"`
	ProductInfo ProductInfo    `json:"product"`
	Keywords    string         `json:"keywords,omitempty"`
}

// ProductInfo is the partial product context for a suggestion prompt.
type ProductInfo struct {
	Title string `json:"title,omitempty"`
	Genre Genre  `json:"genre,omitempty"`
}
