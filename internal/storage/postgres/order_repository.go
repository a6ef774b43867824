package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

func (r *orderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	order.OrderDate = order.OrderDate.UTC()
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (
			value, customer_id, order_date, payment_method,
			payment_provider, payment_status, payment_transaction_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		order.Value, order.CustomerID, order.OrderDate, order.PaymentMethod,
		order.PaymentProvider, string(order.PaymentStatus), order.PaymentTransactionID,
	).Scan(&order.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}

	return order, nil
}

func (r *orderRepository) HasOrderSince(ctx context.Context, customerID int64, since time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM orders
			WHERE customer_id = $1
			  AND order_date >= $2
		)
	`, customerID, since.UTC()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("select recent order: %w", err)
	}
	return exists, nil
}

func (r *orderRepository) HasAnyOrder(ctx context.Context, customerID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM orders WHERE customer_id = $1)
	`, customerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("select any order: %w", err)
	}
	return exists, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
