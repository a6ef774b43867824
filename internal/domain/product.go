package domain

import "github.com/shopspring/decimal"

// Product — позиция каталога, доступна только для чтения.
type Product struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}
