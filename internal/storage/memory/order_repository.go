package memory

import (
	"context"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]domain.Order
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[int64]domain.Order),
	}
}

// Create присваивает заказу ID и сохраняет его.
func (r *orderRepositoryInMemory) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	order.ID = r.nextID
	order.OrderDate = order.OrderDate.UTC()
	r.items[order.ID] = order
	return order, nil
}

// HasOrderSince проверяет наличие заказа клиента с датой не раньше since.
func (r *orderRepositoryInMemory) HasOrderSince(ctx context.Context, customerID int64, since time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.items {
		if order.CustomerID == customerID && !order.OrderDate.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

// HasAnyOrder проверяет, есть ли у клиента хотя бы один заказ.
func (r *orderRepositoryInMemory) HasAnyOrder(ctx context.Context, customerID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.items {
		if order.CustomerID == customerID {
			return true, nil
		}
	}
	return false, nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
