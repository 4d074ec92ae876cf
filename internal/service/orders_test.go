package service

import (
	"testing"

	"github.com/okatz/marquee/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestOrdersAddAndRoundTrip(t *testing.T) {
	st := newTestStore(t)
	orders := NewOrderService(st, nil)

	require.NoError(t, orders.Add(domain.CatalogItem{ID: 1, Title: "Dune"}))
	require.NoError(t, orders.Add(domain.CatalogItem{ID: 2, Title: "Tenet"}))
	require.Equal(t, 2, orders.Len())

	fresh := NewOrderService(st, nil)
	items := fresh.Items()
	require.Len(t, items, 2)
	require.Equal(t, "Dune", items[0].Title)
	require.Equal(t, "Tenet", items[1].Title)
}

func TestOrdersDuplicateAddIsNoOp(t *testing.T) {
	st := newTestStore(t)
	orders := NewOrderService(st, nil)

	require.NoError(t, orders.Add(domain.CatalogItem{ID: 1, Title: "Dune"}))
	err := orders.Add(domain.CatalogItem{ID: 1, Title: "Dune"})
	require.ErrorIs(t, err, domain.ErrDuplicateOrder)
	require.Equal(t, 1, orders.Len(), "duplicate add must not mutate the queue")
}

func TestOrdersComplete(t *testing.T) {
	st := newTestStore(t)
	orders := NewOrderService(st, nil)

	require.NoError(t, orders.Add(domain.CatalogItem{ID: 1, Title: "Dune"}))
	require.NoError(t, orders.Add(domain.CatalogItem{ID: 2, Title: "Tenet"}))

	item, err := orders.Complete(1)
	require.NoError(t, err)
	require.Equal(t, "Dune", item.Title)
	require.Equal(t, 1, orders.Len())

	_, err = orders.Complete(1)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
	require.Equal(t, 1, orders.Len())
}

func TestOrdersCancel(t *testing.T) {
	st := newTestStore(t)
	orders := NewOrderService(st, nil)

	require.NoError(t, orders.Add(domain.CatalogItem{ID: 1, Title: "Dune"}))
	orders.Cancel(1)
	require.Zero(t, orders.Len())

	// Absent id is a no-op
	orders.Cancel(1)
	require.Zero(t, orders.Len())
}

func TestOrdersReAddAfterRemovalIsFreshInsertion(t *testing.T) {
	st := newTestStore(t)
	orders := NewOrderService(st, nil)

	require.NoError(t, orders.Add(domain.CatalogItem{ID: 1, Title: "Dune"}))
	_, err := orders.Complete(1)
	require.NoError(t, err)

	require.NoError(t, orders.Add(domain.CatalogItem{ID: 1, Title: "Dune"}))
	require.Equal(t, 1, orders.Len())
}
