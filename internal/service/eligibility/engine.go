package eligibility

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
)

// Rule — правило, которое определило решение.
type Rule string

const (
	RuleNone Rule = "none"
	// У клиента есть заказ за последний календарный месяц.
	RuleRecentPurchase Rule = "recent_purchase"
	// Первая покупка дороже лимита.
	RuleFirstPurchaseCeiling Rule = "first_purchase_ceiling"
	// Вне рабочего времени или в выходной.
	RuleBusinessHours Rule = "business_hours"
)

const (
	businessHourStart = 8
	businessHourEnd   = 18
)

var firstPurchaseCeiling = decimal.NewFromInt(100)

// Decision — результат проверки с указанием правила, отказавшего первым.
type Decision struct {
	Allowed bool
	Rule    Rule
}

// Engine решает, может ли клиент совершить покупку. Ничего не изменяет.
type Engine struct {
	customers domain.CustomerRepository
	orders    domain.OrderRepository
	clock     domain.Clock
	logger    *log.Entry
	metrics   *metrics.StorefrontMetrics
}

// NewEngine создаёт движок допуска к покупке. metrics может быть nil.
func NewEngine(
	customers domain.CustomerRepository,
	orders domain.OrderRepository,
	clk domain.Clock,
	m *metrics.StorefrontMetrics,
	logger *log.Entry,
) *Engine {
	if logger == nil {
		logger = log.New().WithField("component", "eligibility")
	}
	return &Engine{
		customers: customers,
		orders:    orders,
		clock:     clk,
		logger:    logger,
		metrics:   m,
	}
}

// CanPurchase возвращает true, если клиенту разрешена покупка на сумму value.
func (e *Engine) CanPurchase(ctx context.Context, customerID int64, value decimal.Decimal) (bool, error) {
	decision, err := e.Evaluate(ctx, customerID, value)
	if err != nil {
		return false, err
	}
	return decision.Allowed, nil
}

// Evaluate применяет правила по порядку; первое нарушенное правило даёт отказ.
// Все правила используют один снимок текущего времени.
func (e *Engine) Evaluate(ctx context.Context, customerID int64, value decimal.Decimal) (Decision, error) {
	if customerID <= 0 {
		return Decision{}, domain.ErrCustomerIDInvalid
	}
	if err := domain.ValidateAmount(value); err != nil {
		return Decision{}, err
	}

	exists, err := e.customers.Exists(ctx, customerID)
	if err != nil {
		return Decision{}, fmt.Errorf("check customer exists: %w", err)
	}
	if !exists {
		return Decision{}, fmt.Errorf("%w: id %d", domain.ErrCustomerNotFound, customerID)
	}

	now := e.clock.Now().UTC()

	decision, err := e.evaluateRules(ctx, customerID, value, now)
	if err != nil {
		return Decision{}, err
	}

	if e.metrics != nil {
		e.metrics.RecordEligibilityDecision(decision.Allowed, string(decision.Rule))
	}
	e.logger.WithFields(log.Fields{
		"customer_id": customerID,
		"value":       value.String(),
		"allowed":     decision.Allowed,
		"rule":        decision.Rule,
	}).Debug("purchase eligibility evaluated")

	return decision, nil
}

func (e *Engine) evaluateRules(ctx context.Context, customerID int64, value decimal.Decimal, now time.Time) (Decision, error) {
	// Не более одной покупки за календарный месяц; граница включительна.
	recent, err := e.orders.HasOrderSince(ctx, customerID, SubtractMonth(now))
	if err != nil {
		return Decision{}, fmt.Errorf("check recent orders: %w", err)
	}
	if recent {
		return Decision{Allowed: false, Rule: RuleRecentPurchase}, nil
	}

	// Первая покупка не дороже 100 (ровно 100 разрешено).
	hasAny, err := e.orders.HasAnyOrder(ctx, customerID)
	if err != nil {
		return Decision{}, fmt.Errorf("check order history: %w", err)
	}
	if !hasAny && value.GreaterThan(firstPurchaseCeiling) {
		return Decision{Allowed: false, Rule: RuleFirstPurchaseCeiling}, nil
	}

	if !WithinBusinessHours(now) {
		return Decision{Allowed: false, Rule: RuleBusinessHours}, nil
	}

	return Decision{Allowed: true, Rule: RuleNone}, nil
}

// WithinBusinessHours проверяет будний день и час в [8, 18] без перевода часового пояса.
func WithinBusinessHours(now time.Time) bool {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	hour := now.Hour()
	return hour >= businessHourStart && hour <= businessHourEnd
}

// SubtractMonth вычитает один календарный месяц. Если в предыдущем месяце
// нет такого дня, берётся его последний день (31 марта → 28/29 февраля).
func SubtractMonth(t time.Time) time.Time {
	year, month, day := t.Date()
	firstOfPrev := time.Date(year, month-1, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	lastDay := firstOfPrev.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfPrev.Year(), firstOfPrev.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
