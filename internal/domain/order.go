package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoneyScale задаёт число знаков после запятой, с которым хранятся суммы (NUMERIC(18,2)).
const MoneyScale = 2

// ValidateAmount проверяет, что сумма положительна и представима без округления.
func ValidateAmount(v decimal.Decimal) error {
	if !v.IsPositive() {
		return ErrAmountNotPositive
	}
	if !v.Equal(v.Truncate(MoneyScale)) {
		return ErrAmountPrecision
	}
	return nil
}

// Order фиксирует успешно оплаченную покупку клиента.
// Создаётся ровно один раз после успешного платежа и больше не изменяется.
type Order struct {
	ID         int64
	Value      decimal.Decimal
	CustomerID int64
	// OrderDate всегда хранится в UTC.
	OrderDate            time.Time
	PaymentMethod        string
	PaymentProvider      string
	PaymentStatus        PaymentStatus
	PaymentTransactionID string
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.CustomerID <= 0 {
		errs = append(errs, ErrCustomerIDInvalid)
	}
	if err := ValidateAmount(o.Value); err != nil {
		errs = append(errs, err)
	}
	if o.PaymentMethod == "" {
		errs = append(errs, ErrPaymentMethodRequired)
	}

	return errs
}
