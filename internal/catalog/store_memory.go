package catalog

import (
	"context"
	"sync"
)

// MemStore keeps categories and products in maps guarded by one lock.
// Insertion order is tracked separately so listings stay stable.
type MemStore struct {
	mu        sync.RWMutex
	cats      map[string]Category
	catOrder  []string
	prods     map[string]Product
	prodOrder []string
}

func NewMemStore() *MemStore {
	return &MemStore{
		cats:  map[string]Category{},
		prods: map[string]Product{},
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) ListCategories(ctx context.Context) ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Category, 0, len(s.catOrder))
	for _, id := range s.catOrder {
		out = append(out, s.cats[id])
	}
	return out, nil
}

func (s *MemStore) GetCategoryBySlug(ctx context.Context, slug string) (Category, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.catOrder {
		if c := s.cats[id]; c.Slug == slug {
			return c, true, nil
		}
	}
	return Category{}, false, nil
}

func (s *MemStore) CreateCategory(ctx context.Context, in CategoryInput) (Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.catOrder {
		if s.cats[id].Slug == in.Slug {
			return Category{}, ErrSlugExists
		}
	}

	c := buildCategory(in)
	s.cats[c.ID] = c
	s.catOrder = append(s.catOrder, c.ID)
	return c, nil
}

func (s *MemStore) ListAllProducts(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.prodOrder))
	for _, id := range s.prodOrder {
		out = append(out, s.prods[id])
	}
	return out, nil
}

func (s *MemStore) ListProductsByCategory(ctx context.Context, categoryID string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0)
	for _, id := range s.prodOrder {
		if p := s.prods[id]; p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) CreateProduct(ctx context.Context, in ProductInput) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cats[in.CategoryID]; !ok {
		return Product{}, ErrCategoryNotFound
	}

	p := buildProduct(in)
	s.prods[p.ID] = p
	s.prodOrder = append(s.prodOrder, p.ID)
	return p, nil
}
