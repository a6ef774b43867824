package ordering

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
	"github.com/vladislavdragonenkov/storefront/internal/service/payment"
)

// DefaultPersistTimeout ограничивает запись заказа после успешной оплаты.
const DefaultPersistTimeout = 5 * time.Second

// Workflow проводит заказ: проверка → оплата → сохранение.
type Workflow struct {
	customers      domain.CustomerRepository
	orders         domain.OrderRepository
	registry       *payment.Registry
	clock          domain.Clock
	publisher      domain.OrderEventPublisher
	metrics        *metrics.StorefrontMetrics
	logger         *log.Entry
	persistTimeout time.Duration
}

// NewWorkflow создаёт сценарий оформления заказа.
// publisher и m могут быть nil.
func NewWorkflow(
	customers domain.CustomerRepository,
	orders domain.OrderRepository,
	registry *payment.Registry,
	clk domain.Clock,
	publisher domain.OrderEventPublisher,
	m *metrics.StorefrontMetrics,
	logger *log.Entry,
) *Workflow {
	if logger == nil {
		logger = log.New().WithField("component", "ordering")
	}
	return &Workflow{
		customers:      customers,
		orders:         orders,
		registry:       registry,
		clock:          clk,
		publisher:      publisher,
		metrics:        m,
		logger:         logger,
		persistTimeout: DefaultPersistTimeout,
	}
}

// WithPersistTimeout переопределяет таймаут записи заказа.
func (w *Workflow) WithPersistTimeout(timeout time.Duration) *Workflow {
	if timeout > 0 {
		w.persistTimeout = timeout
	}
	return w
}

// PlaceOrder оплачивает и сохраняет заказ. Повторных попыток оплаты нет.
func (w *Workflow) PlaceOrder(ctx context.Context, method string, amount decimal.Decimal, customerID int64) (domain.Order, error) {
	started := time.Now()
	defer func() {
		if w.metrics != nil {
			w.metrics.RecordPlaceOrderDuration(time.Since(started))
		}
	}()

	if strings.TrimSpace(method) == "" {
		return domain.Order{}, domain.ErrPaymentMethodRequired
	}
	if err := domain.ValidateAmount(amount); err != nil {
		return domain.Order{}, err
	}

	exists, err := w.customers.Exists(ctx, customerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("check customer exists: %w", err)
	}
	if !exists {
		return domain.Order{}, fmt.Errorf("%w: id %d", domain.ErrCustomerNotFound, customerID)
	}

	processor, err := w.registry.Resolve(method)
	if err != nil {
		return domain.Order{}, err
	}

	logger := w.logger.WithFields(log.Fields{
		"customer_id":    customerID,
		"payment_method": processor.Method(),
		"amount":         amount.String(),
	})

	order := domain.Order{
		Value:         amount,
		CustomerID:    customerID,
		PaymentMethod: processor.Method(),
	}
	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return domain.Order{}, errors.Join(errs...)
	}

	if err := ctx.Err(); err != nil {
		return domain.Order{}, err
	}

	settlement, err := processor.Pay(ctx, amount, customerID)
	if err != nil {
		w.recordPaymentFailure(processor.Method())
		logger.WithError(err).Warn("payment failed")
		return domain.Order{}, fmt.Errorf("%w: %w", domain.ErrProcessorFailure, err)
	}
	// Отклонённый или отложенный платёж не сохраняется как заказ: вызывающая
	// сторона получает ErrPaymentDeclined, в хранилище остаются только APPROVED.
	if !settlement.Status.Approved() {
		w.recordPaymentFailure(processor.Method())
		logger.WithFields(log.Fields{
			"payment_status": settlement.Status,
			"transaction_id": settlement.TransactionID,
		}).Warn("payment not approved")
		return domain.Order{}, fmt.Errorf("%w: status %s", domain.ErrPaymentDeclined, settlement.Status)
	}

	order.OrderDate = w.clock.Now().UTC()
	order.PaymentProvider = settlement.Provider
	order.PaymentStatus = settlement.Status
	order.PaymentTransactionID = settlement.TransactionID

	// Деньги уже списаны: отмена вызывающей стороны не должна прерывать запись.
	persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.persistTimeout)
	defer cancel()

	saved, err := w.orders.Create(persistCtx, order)
	if err != nil {
		logger.WithError(err).WithFields(log.Fields{
			"transaction_id": settlement.TransactionID,
			"provider":       settlement.Provider,
		}).Error("order not persisted after successful payment")
		return domain.Order{}, fmt.Errorf("persist order after payment %s: %w", settlement.TransactionID, err)
	}

	if w.metrics != nil {
		w.metrics.RecordOrderPlaced(saved.PaymentMethod)
	}
	logger.WithFields(log.Fields{
		"order_id":       saved.ID,
		"transaction_id": saved.PaymentTransactionID,
	}).Info("order placed")

	w.publish(persistCtx, saved, logger)

	return saved, nil
}

func (w *Workflow) publish(ctx context.Context, order domain.Order, logger *log.Entry) {
	if w.publisher == nil {
		return
	}
	if err := w.publisher.PublishOrderPlaced(ctx, order); err != nil {
		logger.WithError(err).WithField("order_id", order.ID).Warn("failed to publish order placed event")
	}
}

func (w *Workflow) recordPaymentFailure(method string) {
	if w.metrics != nil {
		w.metrics.RecordPaymentFailure(method)
	}
}
