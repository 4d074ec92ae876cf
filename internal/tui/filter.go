package tui

import (
	"github.com/sahilm/fuzzy"

	"github.com/okatz/marquee/internal/domain"
)

// itemSource adapts a catalog slice for fuzzy matching by title
type itemSource []domain.CatalogItem

func (s itemSource) String(i int) string { return s[i].Title }
func (s itemSource) Len() int            { return len(s) }

// filterItems narrows items to fuzzy title matches, best match first.
// A blank query returns the items unchanged.
func filterItems(query string, items []domain.CatalogItem) []domain.CatalogItem {
	if query == "" {
		return items
	}
	matches := fuzzy.FindFrom(query, itemSource(items))
	filtered := make([]domain.CatalogItem, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, items[m.Index])
	}
	return filtered
}
