package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func TestMockProcessor(t *testing.T) {
	mock := NewMockProcessor("pix")
	if mock == nil {
		t.Fatal("expected non-nil mock")
	}

	settlement, err := mock.Pay(context.Background(), decimal.NewFromInt(10), 1)
	if err != nil {
		t.Fatalf("unexpected pay error: %v", err)
	}
	if settlement.Status != domain.PaymentStatusApproved {
		t.Fatalf("unexpected pay status: %s", settlement.Status)
	}

	mock.PayErr = errors.New("pay failed")
	if _, err := mock.Pay(context.Background(), decimal.NewFromInt(10), 1); err == nil {
		t.Fatal("expected pay error")
	}

	if mock.PayCalls() != 2 {
		t.Fatalf("unexpected call counter: pay=%d", mock.PayCalls())
	}
}

func TestMockProcessor_BlockHonoursContext(t *testing.T) {
	mock := NewMockProcessor("slow")
	mock.Block = true

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := mock.Pay(ctx, decimal.NewFromInt(1), 1)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
