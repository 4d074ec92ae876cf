package service

import (
	"testing"

	"github.com/okatz/marquee/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestCatalogLoadReplacesWholesale(t *testing.T) {
	catalog := NewCatalogService()
	require.Zero(t, catalog.Len())

	catalog.Load([]domain.CatalogItem{{ID: 1}, {ID: 2}})
	require.Equal(t, 2, catalog.Len())

	catalog.Load([]domain.CatalogItem{{ID: 3}})
	items := catalog.Items()
	require.Len(t, items, 1)
	require.Equal(t, int64(3), items[0].ID)
}

func TestCatalogItemsReturnsCopy(t *testing.T) {
	catalog := NewCatalogService()
	catalog.Load([]domain.CatalogItem{{ID: 1, Title: "Solaris"}})

	items := catalog.Items()
	items[0].Title = "mutated"

	require.Equal(t, "Solaris", catalog.Items()[0].Title)
}
