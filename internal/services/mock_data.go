// internal/services/mock_data.go
package services

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/beatbazaar/beatbazaar/internal/models"
	"github.com/beatbazaar/beatbazaar/internal/utils"
)

var mockKeySignatures = []string{"C", "Dm", "Em", "F", "G", "Am", "Bdim"}

// MockCatalogBatch builds the demo catalog for first paint: ids unique per
// batch, prices randomized in [10, 30), genres cycled deterministically
// through the closed set, and a per-index mood tag.
func MockCatalogBatch(count int) []models.Product {
	now := time.Now().UnixMilli()

	products := make([]models.Product, count)
	for i := range products {
		genre := models.GenreByIndex(i)
		bpm := 90 + i*5
		key := mockKeySignatures[i%len(mockKeySignatures)]

		products[i] = models.Product{
			ID:       fmt.Sprintf("mock-%d-%d", i, now),
			Title:    fmt.Sprintf("Beat Title %d", i+1),
			Producer: fmt.Sprintf("Producer %c", 'A'+rune(i%5)),
			Description: fmt.Sprintf(
				"This is a cool beat #%d. Perfect for your next project. It features a unique blend of sounds and rhythms.",
				i+1),
			Price:         randomPrice(10, 20),
			Genre:         genre,
			Tags:          []string{"instrumental", fmt.Sprintf("mood%d", i+1), strings.ToLower(string(genre))},
			CoverImageURL: utils.PlaceholderCoverURL(strconv.FormatInt(now+int64(i), 10)),
			AudioFileURL:  fmt.Sprintf("audio_mock_%d.mp3", i+1),
			BPM:           &bpm,
			Key:           &key,
		}
	}
	return products
}

// aiKeywordPool feeds the one-click synthesis path when the caller supplies
// no keywords of their own.
var aiKeywordPool = []string{
	"modern", "trap", "dark", "energetic", "synth",
	"808", "lofi", "chill", "upbeat", "cinematic",
}

// RandomBeatKeywords picks a seed phrase for one-click product synthesis.
func RandomBeatKeywords() string {
	return fmt.Sprintf("A %s beat", aiKeywordPool[rand.Intn(len(aiKeywordPool))])
}
