package memory

import (
	"context"
	"sort"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// productRepositoryInMemory — каталог только для чтения, поэтому без блокировок.
type productRepositoryInMemory struct {
	items []domain.Product
}

// NewProductRepository возвращает in-memory каталог из products, упорядоченный по ID.
func NewProductRepository(products ...domain.Product) domain.ProductRepository {
	items := append([]domain.Product(nil), products...)
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return &productRepositoryInMemory{items: items}
}

func (r *productRepositoryInMemory) List(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return window(append([]domain.Product(nil), r.items...), offset, limit), nil
}

func (r *productRepositoryInMemory) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(r.items), nil
}

// window возвращает срез [offset, offset+limit), обрезанный по границам items.
func window[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

var _ domain.ProductRepository = (*productRepositoryInMemory)(nil)
