package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func testProducer(t *testing.T) (*Producer, *mocks.SyncProducer) {
	t.Helper()
	mockProducer := mocks.NewSyncProducer(t, nil)
	return newProducer(mockProducer, log.WithField("component", "kafka-producer-test")), mockProducer
}

func placedOrder() domain.Order {
	return domain.Order{
		ID:                   17,
		Value:                decimal.RequireFromString("100.10"),
		CustomerID:           3,
		OrderDate:            time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC),
		PaymentMethod:        "pix",
		PaymentProvider:      "Pix",
		PaymentStatus:        domain.PaymentStatusApproved,
		PaymentTransactionID: "abc123",
	}
}

func TestProducer_PublishEvent(t *testing.T) {
	producer, mockProducer := testProducer(t)
	mockProducer.ExpectSendMessageAndSucceed()

	err := producer.PublishEvent(context.Background(), TopicOrderEvents, "3", NewOrderPlacedEvent(placedOrder()))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := producer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishEvent_Error(t *testing.T) {
	producer, mockProducer := testProducer(t)
	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := producer.PublishEvent(context.Background(), TopicOrderEvents, "3", NewOrderPlacedEvent(placedOrder()))
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishEvent_CanceledContext(t *testing.T) {
	producer, mockProducer := testProducer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := producer.PublishEvent(ctx, TopicOrderEvents, "3", struct{}{}); err == nil {
		t.Fatal("expected context error")
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishEvent_MarshalError(t *testing.T) {
	producer, mockProducer := testProducer(t)

	if err := producer.PublishEvent(context.Background(), TopicOrderEvents, "3", make(chan int)); err == nil {
		t.Fatal("expected marshal error")
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestOrderPublisher_PublishOrderPlaced(t *testing.T) {
	producer, mockProducer := testProducer(t)
	mockProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
		var event OrderPlacedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			return err
		}
		if event.EventType != EventTypeOrderPlaced {
			return fmt.Errorf("unexpected event type %q", event.EventType)
		}
		if event.OrderID != 17 || event.CustomerID != 3 {
			return fmt.Errorf("unexpected ids: %+v", event)
		}
		if event.Value != "100.1" {
			return fmt.Errorf("unexpected value %q", event.Value)
		}
		if event.PaymentTransactionID != "abc123" {
			return fmt.Errorf("unexpected transaction %q", event.PaymentTransactionID)
		}
		return nil
	})

	publisher := NewOrderPublisher(producer, "")
	if err := publisher.PublishOrderPlaced(context.Background(), placedOrder()); err != nil {
		t.Fatalf("publish order placed: %v", err)
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNewOrderPlacedEvent(t *testing.T) {
	event := NewOrderPlacedEvent(placedOrder())

	if event.Key() != "3" {
		t.Errorf("expected key 3, got %s", event.Key())
	}
	if event.PaymentMethod != "pix" || event.PaymentProvider != "Pix" {
		t.Errorf("unexpected payment fields: %+v", event)
	}
	if event.Timestamp.IsZero() {
		t.Error("timestamp should not be zero")
	}
	if time.Since(event.Timestamp) > time.Second {
		t.Error("timestamp should be close to current time")
	}
}
