package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// helper для создания корректного заказа.
func makeOrder() domain.Order {
	return domain.Order{
		ID:                   1,
		Value:                decimal.RequireFromString("49.90"),
		CustomerID:           7,
		OrderDate:            time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC),
		PaymentMethod:        "pix",
		PaymentProvider:      "Pix",
		PaymentStatus:        domain.PaymentStatusApproved,
		PaymentTransactionID: "tx-1",
	}
}

func TestOrderValidateInvariants_Ok(t *testing.T) {
	order := makeOrder()
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestOrderValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(o *domain.Order)
	}{
		{
			name: "no customer",
			mut: func(o *domain.Order) {
				o.CustomerID = 0
			},
		},
		{
			name: "zero value",
			mut: func(o *domain.Order) {
				o.Value = decimal.Zero
			},
		},
		{
			name: "negative value",
			mut: func(o *domain.Order) {
				o.Value = decimal.NewFromInt(-3)
			},
		},
		{
			name: "sub-cent value",
			mut: func(o *domain.Order) {
				o.Value = decimal.RequireFromString("10.005")
			},
		},
		{
			name: "no payment method",
			mut: func(o *domain.Order) {
				o.PaymentMethod = ""
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrder()
			tc.mut(&order)

			if len(order.ValidateInvariants()) == 0 {
				t.Fatalf("expected validation errors for case %s", tc.name)
			}
		})
	}
}

func TestPaymentStatusApproved(t *testing.T) {
	tests := []struct {
		status domain.PaymentStatus
		want   bool
	}{
		{status: domain.PaymentStatusApproved, want: true},
		{status: domain.PaymentStatusDeclined, want: false},
		{status: domain.PaymentStatusPending, want: false},
		{status: domain.PaymentStatus("approved"), want: false},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			if got := tc.status.Approved(); got != tc.want {
				t.Fatalf("status %q approved=%v, want %v", tc.status, got, tc.want)
			}
		})
	}
}

func TestPage(t *testing.T) {
	tests := []struct {
		name       string
		page       domain.Page[int]
		totalPages int
		hasNext    bool
		outOfRange bool
	}{
		{name: "empty", page: domain.Page[int]{Page: 1, PageSize: 10}, totalPages: 0},
		{name: "empty far page", page: domain.Page[int]{Page: 5, PageSize: 10}, totalPages: 0},
		{name: "exact fit", page: domain.Page[int]{Page: 1, PageSize: 10, TotalItems: 10}, totalPages: 1},
		{name: "first of three", page: domain.Page[int]{Page: 1, PageSize: 10, TotalItems: 21}, totalPages: 3, hasNext: true},
		{name: "last", page: domain.Page[int]{Page: 3, PageSize: 10, TotalItems: 21}, totalPages: 3},
		{name: "beyond last", page: domain.Page[int]{Page: 4, PageSize: 10, TotalItems: 21}, totalPages: 3, outOfRange: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.page.TotalPages(); got != tc.totalPages {
				t.Fatalf("TotalPages()=%d, want %d", got, tc.totalPages)
			}
			if got := tc.page.HasNext(); got != tc.hasNext {
				t.Fatalf("HasNext()=%v, want %v", got, tc.hasNext)
			}
			if got := tc.page.OutOfRange(); got != tc.outOfRange {
				t.Fatalf("OutOfRange()=%v, want %v", got, tc.outOfRange)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	cases := []struct {
		value string
		want  error
	}{
		{value: "10", want: nil},
		{value: "10.5", want: nil},
		{value: "10.50", want: nil},
		{value: "0.01", want: nil},
		{value: "10.500", want: nil},
		{value: "0", want: domain.ErrAmountNotPositive},
		{value: "-1.25", want: domain.ErrAmountNotPositive},
		{value: "0.001", want: domain.ErrAmountPrecision},
		{value: "10.005", want: domain.ErrAmountPrecision},
	}

	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			err := domain.ValidateAmount(decimal.RequireFromString(tc.value))
			if tc.want == nil {
				if err != nil {
					t.Fatalf("ValidateAmount(%s) = %v, want nil", tc.value, err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("ValidateAmount(%s) = %v, want %v", tc.value, err, tc.want)
			}
		})
	}
}
