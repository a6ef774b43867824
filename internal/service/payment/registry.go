package payment

import (
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Registry сопоставляет ключ способа оплаты с процессором.
// Собирается один раз при старте и после этого не меняется.
type Registry struct {
	processors map[string]domain.PaymentProcessor
}

// NewRegistry строит реестр из списка процессоров.
// Ключи сравниваются без учёта регистра. При дублировании ключа
// побеждает последний зарегистрированный процессор; это фиксируется в логе.
func NewRegistry(logger *log.Entry, processors ...domain.PaymentProcessor) *Registry {
	if logger == nil {
		logger = log.New().WithField("component", "payment-registry")
	}

	byMethod := make(map[string]domain.PaymentProcessor, len(processors))
	for _, processor := range processors {
		if processor == nil {
			continue
		}
		key := normalizeMethod(processor.Method())
		if key == "" {
			logger.WithField("processor", fmt.Sprintf("%T", processor)).Warn("payment processor without method key skipped")
			continue
		}
		if _, exists := byMethod[key]; exists {
			logger.WithField("method", key).Warn("duplicate payment method, last registered processor wins")
		}
		byMethod[key] = processor
	}

	return &Registry{processors: byMethod}
}

// Resolve возвращает процессор для способа оплаты или ErrPaymentMethodUnsupported.
func (r *Registry) Resolve(method string) (domain.PaymentProcessor, error) {
	processor, ok := r.processors[normalizeMethod(method)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrPaymentMethodUnsupported, method)
	}
	return processor, nil
}

// Methods возвращает отсортированный список поддерживаемых ключей.
func (r *Registry) Methods() []string {
	methods := make([]string, 0, len(r.processors))
	for method := range r.processors {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return methods
}

func normalizeMethod(method string) string {
	return strings.ToLower(strings.TrimSpace(method))
}
