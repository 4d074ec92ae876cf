package tmdb

import "github.com/okatz/marquee/internal/domain"

// mapMovies converts TMDB movie records to catalog items, preserving
// the provider's ordering
func mapMovies(movies []Movie) []domain.CatalogItem {
	items := make([]domain.CatalogItem, 0, len(movies))
	for _, m := range movies {
		items = append(items, domain.CatalogItem{
			ID:         m.ID,
			Title:      m.Title,
			Rating:     m.VoteAverage,
			PosterPath: m.PosterPath,
			Overview:   m.Overview,
		})
	}
	return items
}
