package service

import (
	"encoding/json"
	"log/slog"

	"github.com/okatz/marquee/internal/domain"
)

// OrderService owns the persisted pending-order queue. Ordering is
// append-only; an item leaves the queue by cancellation or completion
// and may be re-added afterwards as a fresh insertion.
type OrderService struct {
	store  domain.Store
	logger *slog.Logger
	items  []domain.CatalogItem
}

// NewOrderService creates an order manager rehydrated from the store.
func NewOrderService(store domain.Store, logger *slog.Logger) *OrderService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &OrderService{store: store, logger: logger}
	s.rehydrate()
	return s
}

func (s *OrderService) rehydrate() {
	data, ok := s.store.Get(domain.KeyOrders)
	if !ok {
		s.items = nil
		return
	}
	var items []domain.CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn("discarding undecodable orders", "error", err)
		s.items = nil
		return
	}
	s.items = items
}

// Items returns the queue in order.
func (s *OrderService) Items() []domain.CatalogItem {
	return cloneItems(s.items)
}

// Len returns the number of pending orders.
func (s *OrderService) Len() int {
	return len(s.items)
}

// Add appends the item to the queue and persists. A duplicate id leaves
// the queue untouched and returns ErrDuplicateOrder so the caller can
// surface the notice.
func (s *OrderService) Add(item domain.CatalogItem) error {
	for _, it := range s.items {
		if it.ID == item.ID {
			return domain.ErrDuplicateOrder
		}
	}
	s.items = append(s.items, item)
	s.persist()
	return nil
}

// Cancel removes the id from the queue; no-op when absent.
func (s *OrderService) Cancel(id int64) {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// Complete removes the id and returns the removed item for the one-shot
// notification. Returns ErrOrderNotFound when the id is not queued.
func (s *OrderService) Complete(id int64) (domain.CatalogItem, error) {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return it, nil
		}
	}
	return domain.CatalogItem{}, domain.ErrOrderNotFound
}

func (s *OrderService) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger.Error("failed to encode orders", "error", err)
		return
	}
	if err := s.store.Set(domain.KeyOrders, data); err != nil {
		s.logger.Error("failed to persist orders", "error", err)
	}
}
