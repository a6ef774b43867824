package payment

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// MockProcessor — конфигурируемая заглушка PaymentProcessor для тестов.
type MockProcessor struct {
	MethodKey  string
	Settlement domain.Settlement
	PayErr     error
	// Block заставляет Pay ждать отмены контекста (имитация таймаута провайдера).
	Block bool

	mu       sync.Mutex
	payCalls int
}

// NewMockProcessor возвращает mock с успешным сценарием по умолчанию.
func NewMockProcessor(method string) *MockProcessor {
	return &MockProcessor{
		MethodKey: method,
		Settlement: domain.Settlement{
			TransactionID: "mock-transaction",
			Provider:      "Mock",
			Status:        domain.PaymentStatusApproved,
		},
	}
}

// Method возвращает настроенный ключ способа оплаты.
func (m *MockProcessor) Method() string {
	return m.MethodKey
}

// Pay возвращает заранее настроенный результат и считает вызовы.
func (m *MockProcessor) Pay(ctx context.Context, _ decimal.Decimal, _ int64) (domain.Settlement, error) {
	m.mu.Lock()
	m.payCalls++
	m.mu.Unlock()

	if m.Block {
		<-ctx.Done()
		return domain.Settlement{}, ctx.Err()
	}
	if m.PayErr != nil {
		return domain.Settlement{}, m.PayErr
	}
	return m.Settlement, nil
}

// PayCalls возвращает количество вызовов Pay.
func (m *MockProcessor) PayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.payCalls
}

var _ domain.PaymentProcessor = (*MockProcessor)(nil)
