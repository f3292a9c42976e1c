package memory

import (
	"context"
	"fmt"
	"lingxi/domain"
	"sort"
)

// CatalogRepository serves the static product catalog. Products are seeded
// once at construction and never mutated, so reads need no locking.
type CatalogRepository struct {
	products []domain.Product
	byID     map[string]domain.Product
}

func NewCatalogRepository() *CatalogRepository {
	products := seedProducts()
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &CatalogRepository{
		products: products,
		byID:     byID,
	}
}

// FindAll returns the catalog in its fixed seed order.
func (r *CatalogRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *CatalogRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	return len(r.products), nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	product, ok := r.byID[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product, nil
}

// LowestRisk returns up to n products ordered by ascending risk level,
// skipping the given IDs. Ties keep catalog order.
func (r *CatalogRepository) LowestRisk(ctx context.Context, n int, exclude map[string]bool) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	candidates := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if exclude[p.ID] {
			continue
		}
		candidates = append(candidates, p)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].RiskLevel < candidates[j].RiskLevel
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates, nil
}
