package kafka

import (
	"strconv"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// EventType определяет тип события.
type EventType string

// EventTypeOrderPlaced публикуется, когда заказ оплачен и сохранён.
const EventTypeOrderPlaced EventType = "order.placed"

// TopicOrderEvents используется, если топик не задан в конфигурации.
const TopicOrderEvents = "storefront.order.events"

// OrderPlacedEvent — полезная нагрузка события о созданном заказе.
// Сумма передаётся строкой, чтобы не терять точность.
type OrderPlacedEvent struct {
	EventType            EventType `json:"event_type"`
	OrderID              int64     `json:"order_id"`
	CustomerID           int64     `json:"customer_id"`
	Value                string    `json:"value"`
	PaymentMethod        string    `json:"payment_method"`
	PaymentProvider      string    `json:"payment_provider"`
	PaymentTransactionID string    `json:"payment_transaction_id"`
	OrderDate            time.Time `json:"order_date"`
	Timestamp            time.Time `json:"timestamp"`
}

// NewOrderPlacedEvent собирает событие из сохранённого заказа.
func NewOrderPlacedEvent(order domain.Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		EventType:            EventTypeOrderPlaced,
		OrderID:              order.ID,
		CustomerID:           order.CustomerID,
		Value:                order.Value.String(),
		PaymentMethod:        order.PaymentMethod,
		PaymentProvider:      order.PaymentProvider,
		PaymentTransactionID: order.PaymentTransactionID,
		OrderDate:            order.OrderDate.UTC(),
		Timestamp:            time.Now().UTC(),
	}
}

// Key возвращает ключ партиционирования: события одного клиента идут по порядку.
func (e *OrderPlacedEvent) Key() string {
	return strconv.FormatInt(e.CustomerID, 10)
}
