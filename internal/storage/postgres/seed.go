package postgres

import (
	"context"
	"fmt"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Seed записывает клиентов и товары с заданными ID. Существующие строки не меняются.
func (s *Store) Seed(ctx context.Context, customers []domain.Customer, products []domain.Product) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, customer := range customers {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO customers (id, name) VALUES ($1, $2)
			ON CONFLICT (id) DO NOTHING
		`, customer.ID, customer.Name); err != nil {
			return fmt.Errorf("seed customer %d: %w", customer.ID, err)
		}
	}
	for _, product := range products {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO products (id, name, price) VALUES ($1, $2, $3)
			ON CONFLICT (id) DO NOTHING
		`, product.ID, product.Name, product.Price); err != nil {
			return fmt.Errorf("seed product %d: %w", product.ID, err)
		}
	}

	// Явные ID не двигают BIGSERIAL; выравниваем последовательности.
	for _, table := range []string{"customers", "products"} {
		if _, err = tx.ExecContext(ctx, fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)",
			table,
		)); err != nil {
			return fmt.Errorf("sync %s sequence: %w", table, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
