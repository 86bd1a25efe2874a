// internal/models/product_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeGenre(t *testing.T) {
	assert.Equal(t, GenreEDM, NormalizeGenre("EDM"))
	assert.Equal(t, GenreHipHop, NormalizeGenre("Hip Hop"))
	assert.Equal(t, GenreFallback, NormalizeGenre("Dubstep"))
	assert.Equal(t, GenreFallback, NormalizeGenre(""))
}

func TestGenreByIndexCycles(t *testing.T) {
	genres := AllGenres()
	assert.Equal(t, genres[0], GenreByIndex(0))
	assert.Equal(t, genres[0], GenreByIndex(len(genres)))
	assert.Equal(t, genres[2], GenreByIndex(len(genres)+2))
}

func TestAllGenresIsACopy(t *testing.T) {
	genres := AllGenres()
	genres[0] = "Mutated"
	assert.Equal(t, GenreHipHop, AllGenres()[0])
}
