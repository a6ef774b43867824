package payment

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Ключи встроенных способов оплаты.
const (
	MethodPix        = "pix"
	MethodCreditCard = "creditcard"
	MethodPayPal     = "paypal"
)

// SimulatedProcessor имитирует вызов внешнего провайдера и всегда подтверждает платёж.
type SimulatedProcessor struct {
	method   string
	provider string
}

// NewSimulatedProcessor создаёт процессор для способа method от имени provider.
func NewSimulatedProcessor(method, provider string) *SimulatedProcessor {
	return &SimulatedProcessor{method: method, provider: provider}
}

// NewPixProcessor возвращает симулятор Pix.
func NewPixProcessor() *SimulatedProcessor {
	return NewSimulatedProcessor(MethodPix, "Pix")
}

// NewCreditCardProcessor возвращает симулятор оплаты картой.
func NewCreditCardProcessor() *SimulatedProcessor {
	return NewSimulatedProcessor(MethodCreditCard, "CreditCard")
}

// NewPayPalProcessor возвращает симулятор PayPal.
func NewPayPalProcessor() *SimulatedProcessor {
	return NewSimulatedProcessor(MethodPayPal, "PayPal")
}

// DefaultProcessors возвращает набор процессоров, доступных сервису из коробки.
func DefaultProcessors() []domain.PaymentProcessor {
	return []domain.PaymentProcessor{
		NewPixProcessor(),
		NewCreditCardProcessor(),
		NewPayPalProcessor(),
	}
}

func (p *SimulatedProcessor) Method() string {
	return p.method
}

// Pay выдаёт новый непрозрачный идентификатор транзакции (32 hex-символа).
func (p *SimulatedProcessor) Pay(ctx context.Context, _ decimal.Decimal, _ int64) (domain.Settlement, error) {
	if err := ctx.Err(); err != nil {
		return domain.Settlement{}, err
	}

	return domain.Settlement{
		TransactionID: strings.ReplaceAll(uuid.NewString(), "-", ""),
		Provider:      p.provider,
		Status:        domain.PaymentStatusApproved,
	}, nil
}

var _ domain.PaymentProcessor = (*SimulatedProcessor)(nil)
