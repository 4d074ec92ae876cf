package service

import (
	"testing"

	"github.com/okatz/marquee/internal/domain"
	"github.com/okatz/marquee/internal/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.StateStore {
	t.Helper()
	s, err := store.New("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestFavoritesTogglePersistsImmediately(t *testing.T) {
	st := newTestStore(t)
	favs := NewFavoritesService(st, nil)

	item := domain.CatalogItem{ID: 42, Title: "Heat"}
	require.True(t, favs.Toggle(item))
	require.True(t, favs.IsFavorite(42))

	// A fresh instance rehydrates the persisted set
	favs2 := NewFavoritesService(st, nil)
	require.True(t, favs2.IsFavorite(42))
	require.Equal(t, favs.Items(), favs2.Items())
}

func TestFavoritesToggleParity(t *testing.T) {
	st := newTestStore(t)
	favs := NewFavoritesService(st, nil)
	item := domain.CatalogItem{ID: 1, Title: "Alien"}

	for i := 0; i < 4; i++ {
		favs.Toggle(item)
	}
	require.False(t, favs.IsFavorite(1), "even toggle count returns to original membership")

	for i := 0; i < 3; i++ {
		favs.Toggle(item)
	}
	require.True(t, favs.IsFavorite(1), "odd toggle count flips membership")
}

func TestFavoritesPreserveInsertionOrder(t *testing.T) {
	st := newTestStore(t)
	favs := NewFavoritesService(st, nil)

	favs.Toggle(domain.CatalogItem{ID: 3, Title: "c"})
	favs.Toggle(domain.CatalogItem{ID: 1, Title: "a"})
	favs.Toggle(domain.CatalogItem{ID: 2, Title: "b"})

	fresh := NewFavoritesService(st, nil)
	items := fresh.Items()
	require.Len(t, items, 3)
	require.Equal(t, int64(3), items[0].ID)
	require.Equal(t, int64(1), items[1].ID)
	require.Equal(t, int64(2), items[2].ID)
}

func TestFavoritesRemove(t *testing.T) {
	st := newTestStore(t)
	favs := NewFavoritesService(st, nil)

	favs.Toggle(domain.CatalogItem{ID: 5, Title: "Ran"})
	favs.Remove(5)
	require.False(t, favs.IsFavorite(5))

	// Removing an absent id is a no-op
	favs.Remove(99)
	require.Empty(t, favs.Items())
}

func TestFavoritesRehydrateAbsentKey(t *testing.T) {
	st := newTestStore(t)
	favs := NewFavoritesService(st, nil)
	require.Empty(t, favs.Items())
}
