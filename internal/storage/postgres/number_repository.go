package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type uniqueNumberRepository struct {
	db *sql.DB
}

// NewUniqueNumberRepository создаёт PostgreSQL-реализацию UniqueNumberRepository.
// Уникальность обеспечивает ограничение uq_unique_numbers_value.
func NewUniqueNumberRepository(store *Store) domain.UniqueNumberRepository {
	return &uniqueNumberRepository{db: store.DB()}
}

func (r *uniqueNumberRepository) Insert(ctx context.Context, number domain.UniqueNumber) (domain.UniqueNumber, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	number.CreatedAt = number.CreatedAt.UTC()
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO unique_numbers (value, created_at)
		VALUES ($1, $2)
		RETURNING id
	`, number.Value, number.CreatedAt).Scan(&number.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.UniqueNumber{}, fmt.Errorf("%w: value %d", domain.ErrUniqueNumberConflict, number.Value)
		}
		return domain.UniqueNumber{}, fmt.Errorf("insert unique number: %w", err)
	}

	return number, nil
}

var _ domain.UniqueNumberRepository = (*uniqueNumberRepository)(nil)
