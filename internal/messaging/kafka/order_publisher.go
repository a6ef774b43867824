package kafka

import (
	"context"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// OrderPublisher отправляет OrderPlaced события через Producer.
type OrderPublisher struct {
	producer *Producer
	topic    string
}

// NewOrderPublisher создаёт publisher. Пустой topic заменяется на TopicOrderEvents.
func NewOrderPublisher(producer *Producer, topic string) *OrderPublisher {
	if topic == "" {
		topic = TopicOrderEvents
	}
	return &OrderPublisher{producer: producer, topic: topic}
}

// PublishOrderPlaced публикует событие о созданном заказе.
func (p *OrderPublisher) PublishOrderPlaced(ctx context.Context, order domain.Order) error {
	event := NewOrderPlacedEvent(order)
	return p.producer.PublishEvent(ctx, p.topic, event.Key(), event)
}

var _ domain.OrderEventPublisher = (*OrderPublisher)(nil)
