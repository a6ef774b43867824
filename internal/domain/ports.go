package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Clock отдаёт текущее время. Реализации обязаны возвращать UTC.
type Clock interface {
	Now() time.Time
}

// CustomerRepository описывает требования к хранилищу клиентов.
type CustomerRepository interface {
	// Exists проверяет наличие клиента по идентификатору.
	Exists(ctx context.Context, id int64) (bool, error)
	// List возвращает клиентов, упорядоченных по ID.
	List(ctx context.Context, offset, limit int) ([]Customer, error)
	Count(ctx context.Context) (int, error)
}

// ProductRepository описывает требования к каталогу товаров.
type ProductRepository interface {
	// List возвращает товары, упорядоченные по ID.
	List(ctx context.Context, offset, limit int) ([]Product, error)
	Count(ctx context.Context) (int, error)
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет новый заказ и возвращает его с присвоенным ID.
	Create(ctx context.Context, order Order) (Order, error)
	// HasOrderSince проверяет, есть ли у клиента заказ с OrderDate >= since.
	HasOrderSince(ctx context.Context, customerID int64, since time.Time) (bool, error)
	// HasAnyOrder проверяет, делал ли клиент хотя бы один заказ.
	HasAnyOrder(ctx context.Context, customerID int64) (bool, error)
}

// UniqueNumberRepository хранит сгенерированные значения.
type UniqueNumberRepository interface {
	// Insert сохраняет значение одной атомарной операцией.
	// Если значение уже существует, возвращает ErrUniqueNumberConflict и ничего не пишет.
	Insert(ctx context.Context, number UniqueNumber) (UniqueNumber, error)
}

// PaymentProcessor — стратегия оплаты для конкретного способа (pix, creditcard, ...).
type PaymentProcessor interface {
	// Method возвращает ключ способа оплаты.
	Method() string
	// Pay списывает сумму. Реализация может вернуть ошибку, таймаут или статус DECLINED.
	Pay(ctx context.Context, amount decimal.Decimal, customerID int64) (Settlement, error)
}

// OrderEventPublisher публикует события о созданных заказах во внешние системы.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, order Order) error
}
