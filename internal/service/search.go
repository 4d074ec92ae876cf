package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/okatz/marquee/internal/domain"
)

// SearchService runs provider-backed searches for the handoff flow. A
// blank query is a local validation failure and never reaches the
// provider.
type SearchService struct {
	provider domain.CatalogProvider
	logger   *slog.Logger
}

// NewSearchService creates a search service over the provider.
func NewSearchService(provider domain.CatalogProvider, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchService{provider: provider, logger: logger}
}

// Search queries the provider and returns results ranked by relevance.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.CatalogItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyQuery
	}

	s.logger.Debug("searching", "query", query)

	results, err := s.provider.SearchMovies(ctx, query)
	if err != nil {
		s.logger.Warn("provider search failed", "query", query, "error", err)
		return nil, err
	}

	ranked := rankResults(results, query)
	s.logger.Debug("search complete", "query", query, "results", len(ranked))
	return ranked, nil
}

// rankResults applies fuzzy ranking to provider results
func rankResults(items []domain.CatalogItem, query string) []domain.CatalogItem {
	if len(items) == 0 {
		return items
	}

	query = strings.ToLower(strings.TrimSpace(query))

	type rankedItem struct {
		item  domain.CatalogItem
		score int
	}

	ranked := make([]rankedItem, 0, len(items))
	for _, item := range items {
		title := strings.ToLower(item.Title)
		ranked = append(ranked, rankedItem{item: item, score: matchScore(title, query)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score < ranked[j].score
	})

	results := make([]domain.CatalogItem, len(ranked))
	for i, r := range ranked {
		results[i] = r.item
	}
	return results
}

// matchScore scores a lowercase title against a lowercase query.
// Lower is better.
func matchScore(title, query string) int {
	if title == query {
		return 0
	}
	if strings.HasPrefix(title, query) {
		return 10
	}
	if strings.Contains(title, query) {
		return 50
	}
	return 100 + fuzzy.LevenshteinDistance(query, title)
}
