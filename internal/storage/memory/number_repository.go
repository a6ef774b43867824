package memory

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// numberRepositoryInMemory хранит значения под мьютексом: проверка и вставка
// выполняются атомарно, как уникальный индекс в базе.
type numberRepositoryInMemory struct {
	mu     sync.Mutex
	nextID int64
	values map[int]domain.UniqueNumber
}

// NewUniqueNumberRepository возвращает in-memory хранилище сгенерированных значений.
func NewUniqueNumberRepository() domain.UniqueNumberRepository {
	return &numberRepositoryInMemory{
		values: make(map[int]domain.UniqueNumber),
	}
}

// Insert сохраняет значение или возвращает ErrUniqueNumberConflict.
func (r *numberRepositoryInMemory) Insert(ctx context.Context, number domain.UniqueNumber) (domain.UniqueNumber, error) {
	if err := ctx.Err(); err != nil {
		return domain.UniqueNumber{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.values[number.Value]; exists {
		return domain.UniqueNumber{}, domain.ErrUniqueNumberConflict
	}
	r.nextID++
	number.ID = r.nextID
	number.CreatedAt = number.CreatedAt.UTC()
	r.values[number.Value] = number
	return number, nil
}

var _ domain.UniqueNumberRepository = (*numberRepositoryInMemory)(nil)
