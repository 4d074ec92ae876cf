package service

import (
	"sync"

	"github.com/okatz/marquee/internal/domain"
)

// CatalogService holds the catalog page currently on display. It is a
// disposable in-memory snapshot of the provider's last response and is
// never persisted; each browse activation refetches and replaces it.
type CatalogService struct {
	mu    sync.RWMutex
	items []domain.CatalogItem
}

// NewCatalogService creates an empty catalog snapshot.
func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// Load replaces the held sequence wholesale. No merging, no pagination
// accumulation.
func (s *CatalogService) Load(items []domain.CatalogItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = cloneItems(items)
}

// Items returns a copy of the current snapshot.
func (s *CatalogService) Items() []domain.CatalogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.items)
}

// Len returns the number of items on display.
func (s *CatalogService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func cloneItems(items []domain.CatalogItem) []domain.CatalogItem {
	if len(items) == 0 {
		return nil
	}
	dup := make([]domain.CatalogItem, len(items))
	copy(dup, items)
	return dup
}
