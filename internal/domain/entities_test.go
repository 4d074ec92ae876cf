package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogItemFormattedRating(t *testing.T) {
	assert.Equal(t, "7.8", CatalogItem{Rating: 7.84}.FormattedRating())
	assert.Equal(t, "N/A", CatalogItem{}.FormattedRating())
	assert.Equal(t, "N/A", CatalogItem{Rating: -1}.FormattedRating())
}

func TestCatalogItemFormattedPrice(t *testing.T) {
	assert.Equal(t, "$7.80", CatalogItem{Rating: 7.8}.FormattedPrice())
	assert.Equal(t, "$0.00", CatalogItem{}.FormattedPrice())
}

func TestCatalogItemShortOverview(t *testing.T) {
	assert.Equal(t, "No description", CatalogItem{}.ShortOverview())

	short := CatalogItem{Overview: "A quiet heist."}
	assert.Equal(t, "A quiet heist.", short.ShortOverview())

	long := CatalogItem{Overview: strings.Repeat("x", 80)}
	got := long.ShortOverview()
	assert.Equal(t, strings.Repeat("x", 50)+"...", got)
}

func TestCatalogItemPosterURL(t *testing.T) {
	item := CatalogItem{PosterPath: "/abc123.jpg"}
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc123.jpg",
		item.PosterURL("https://image.tmdb.org/t/p/w500"))
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc123.jpg",
		item.PosterURL("https://image.tmdb.org/t/p/w500/"))
	assert.Equal(t, "", CatalogItem{}.PosterURL("https://image.tmdb.org/t/p/w500"))
}
