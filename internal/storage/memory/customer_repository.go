package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type customerRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[int64]domain.Customer
}

// NewCustomerRepository возвращает in-memory репозиторий клиентов, заполненный customers.
func NewCustomerRepository(customers ...domain.Customer) domain.CustomerRepository {
	items := make(map[int64]domain.Customer, len(customers))
	for _, customer := range customers {
		items[customer.ID] = customer
	}
	return &customerRepositoryInMemory{items: items}
}

func (r *customerRepositoryInMemory) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[id]
	return ok, nil
}

func (r *customerRepositoryInMemory) List(ctx context.Context, offset, limit int) ([]domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	result := make([]domain.Customer, 0, len(r.items))
	for _, customer := range r.items {
		result = append(result, customer)
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return window(result, offset, limit), nil
}

func (r *customerRepositoryInMemory) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

var _ domain.CustomerRepository = (*customerRepositoryInMemory)(nil)
