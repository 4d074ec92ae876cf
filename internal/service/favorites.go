package service

import (
	"encoding/json"
	"log/slog"

	"github.com/okatz/marquee/internal/domain"
)

// FavoritesService owns the persisted favorites set. Each view mounts a
// fresh instance, which rehydrates from the store; every mutation
// persists the full set immediately. Membership is keyed by item id;
// insertion order is preserved for display.
type FavoritesService struct {
	store  domain.Store
	logger *slog.Logger
	items  []domain.CatalogItem
}

// NewFavoritesService creates a favorites manager rehydrated from the store.
func NewFavoritesService(store domain.Store, logger *slog.Logger) *FavoritesService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &FavoritesService{store: store, logger: logger}
	s.rehydrate()
	return s
}

func (s *FavoritesService) rehydrate() {
	data, ok := s.store.Get(domain.KeyFavorites)
	if !ok {
		s.items = nil
		return
	}
	var items []domain.CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn("discarding undecodable favorites", "error", err)
		s.items = nil
		return
	}
	s.items = items
}

// Items returns the favorites in insertion order.
func (s *FavoritesService) Items() []domain.CatalogItem {
	return cloneItems(s.items)
}

// IsFavorite reports membership by id.
func (s *FavoritesService) IsFavorite(id int64) bool {
	for _, it := range s.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Toggle flips membership for the item's id and persists. Returns true
// when the item is a favorite after the call.
func (s *FavoritesService) Toggle(item domain.CatalogItem) bool {
	for i, it := range s.items {
		if it.ID == item.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return false
		}
	}
	s.items = append(s.items, item)
	s.persist()
	return true
}

// Remove drops the id from the set; no-op when absent.
func (s *FavoritesService) Remove(id int64) {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *FavoritesService) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger.Error("failed to encode favorites", "error", err)
		return
	}
	if err := s.store.Set(domain.KeyFavorites, data); err != nil {
		s.logger.Error("failed to persist favorites", "error", err)
	}
}
