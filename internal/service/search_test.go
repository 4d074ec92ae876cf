package service

import (
	"context"
	"errors"
	"testing"

	"github.com/okatz/marquee/internal/domain"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	results []domain.CatalogItem
	err     error
	calls   int
}

func (f *fakeProvider) SearchMovies(ctx context.Context, query string) ([]domain.CatalogItem, error) {
	f.calls++
	return f.results, f.err
}

func (f *fakeProvider) Popular(ctx context.Context) ([]domain.CatalogItem, error) {
	f.calls++
	return f.results, f.err
}

func TestSearchRejectsBlankQueryLocally(t *testing.T) {
	provider := &fakeProvider{}
	search := NewSearchService(provider, nil)

	_, err := search.Search(context.Background(), "   ")
	require.ErrorIs(t, err, domain.ErrEmptyQuery)
	require.Zero(t, provider.calls, "blank query must not reach the provider")
}

func TestSearchPropagatesProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("boom")}
	search := NewSearchService(provider, nil)

	_, err := search.Search(context.Background(), "batman")
	require.Error(t, err)
}

func TestSearchRanksResults(t *testing.T) {
	provider := &fakeProvider{results: []domain.CatalogItem{
		{ID: 1, Title: "The Batman"},
		{ID: 2, Title: "Batman Returns"},
		{ID: 3, Title: "Batman"},
	}}
	search := NewSearchService(provider, nil)

	results, err := search.Search(context.Background(), "batman")
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, "Batman", results[0].Title, "exact match ranks first")
	require.Equal(t, "Batman Returns", results[1].Title, "prefix match ranks second")
	require.Equal(t, "The Batman", results[2].Title)
}
