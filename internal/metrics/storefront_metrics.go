package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics содержит метрики бизнес-операций сервиса.
type StorefrontMetrics struct {
	// Заказы и платежи
	ordersPlaced       *prometheus.CounterVec
	paymentFailures    *prometheus.CounterVec
	placeOrderDuration prometheus.Histogram

	// Решения движка допуска к покупке
	eligibilityDecisions *prometheus.CounterVec

	// Генератор уникальных значений
	numberAttempts  prometheus.Counter
	numberConflicts prometheus.Counter
	numberGenerated prometheus.Counter
	numberExhausted prometheus.Counter
}

// NewStorefrontMetrics создаёт метрики в DefaultRegisterer.
func NewStorefrontMetrics() *StorefrontMetrics {
	return NewStorefrontMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewStorefrontMetricsWithRegisterer создаёт метрики в переданном реестре.
func NewStorefrontMetricsWithRegisterer(registerer prometheus.Registerer) *StorefrontMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &StorefrontMetrics{
		ordersPlaced: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Total number of orders persisted after a successful payment",
		}, []string{"method"}),
		paymentFailures: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "storefront_payment_failures_total",
			Help: "Total number of failed or declined payments",
		}, []string{"method"}),
		placeOrderDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "storefront_place_order_duration_seconds",
			Help:    "Duration of order placement in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}),
		eligibilityDecisions: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "storefront_eligibility_decisions_total",
			Help: "Total number of purchase eligibility decisions by outcome and deciding rule",
		}, []string{"allowed", "rule"}),
		numberAttempts: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_unique_number_attempts_total",
			Help: "Total number of unique number insert attempts",
		}),
		numberConflicts: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_unique_number_conflicts_total",
			Help: "Total number of unique number insert attempts rejected by the store",
		}),
		numberGenerated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_unique_numbers_generated_total",
			Help: "Total number of unique numbers generated",
		}),
		numberExhausted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_unique_number_exhausted_total",
			Help: "Total number of generation calls that ran out of attempts",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderPlaced увеличивает счётчик сохранённых заказов.
func (m *StorefrontMetrics) RecordOrderPlaced(method string) {
	m.ordersPlaced.WithLabelValues(method).Inc()
}

// RecordPaymentFailure увеличивает счётчик неуспешных платежей.
func (m *StorefrontMetrics) RecordPaymentFailure(method string) {
	m.paymentFailures.WithLabelValues(method).Inc()
}

// RecordPlaceOrderDuration записывает время оформления заказа.
func (m *StorefrontMetrics) RecordPlaceOrderDuration(duration time.Duration) {
	m.placeOrderDuration.Observe(duration.Seconds())
}

// RecordEligibilityDecision учитывает решение и правило, которое его определило.
func (m *StorefrontMetrics) RecordEligibilityDecision(allowed bool, rule string) {
	m.eligibilityDecisions.WithLabelValues(strconv.FormatBool(allowed), rule).Inc()
}

// RecordNumberAttempt учитывает одну попытку вставки.
func (m *StorefrontMetrics) RecordNumberAttempt() {
	m.numberAttempts.Inc()
}

// RecordNumberConflict учитывает попытку, отклонённую ограничением уникальности.
func (m *StorefrontMetrics) RecordNumberConflict() {
	m.numberConflicts.Inc()
}

// RecordNumberGenerated учитывает успешную генерацию.
func (m *StorefrontMetrics) RecordNumberGenerated() {
	m.numberGenerated.Inc()
}

// RecordNumberExhausted учитывает вызов, исчерпавший все попытки.
func (m *StorefrontMetrics) RecordNumberExhausted() {
	m.numberExhausted.Inc()
}
