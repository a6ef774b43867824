package memory_test

import (
	"context"
	"testing"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func TestCustomerRepository_ExistsListCount(t *testing.T) {
	repo := memory.NewCustomerRepository(
		domain.Customer{ID: 3, Name: "c"},
		domain.Customer{ID: 1, Name: "a"},
		domain.Customer{ID: 2, Name: "b"},
	)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, 2)
	if err != nil || !exists {
		t.Fatalf("expected customer 2 to exist, got %v (err=%v)", exists, err)
	}
	exists, err = repo.Exists(ctx, 99)
	if err != nil || exists {
		t.Fatalf("expected customer 99 to be absent, got %v (err=%v)", exists, err)
	}

	count, err := repo.Count(ctx)
	if err != nil || count != 3 {
		t.Fatalf("expected count 3, got %d (err=%v)", count, err)
	}

	page, err := repo.List(ctx, 1, 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page) != 1 || page[0].ID != 2 {
		t.Fatalf("expected ordered window with customer 2, got %+v", page)
	}
}

func TestProductRepository_ListWindow(t *testing.T) {
	repo := memory.NewProductRepository(memory.SeedProducts(25)...)
	ctx := context.Background()

	tests := []struct {
		name    string
		offset  int
		limit   int
		wantLen int
		firstID int64
	}{
		{name: "first page", offset: 0, limit: 10, wantLen: 10, firstID: 1},
		{name: "last partial page", offset: 20, limit: 10, wantLen: 5, firstID: 21},
		{name: "beyond end", offset: 30, limit: 10, wantLen: 0},
		{name: "negative offset", offset: -5, limit: 3, wantLen: 3, firstID: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items, err := repo.List(ctx, tc.offset, tc.limit)
			if err != nil {
				t.Fatalf("list failed: %v", err)
			}
			if len(items) != tc.wantLen {
				t.Fatalf("expected %d items, got %d", tc.wantLen, len(items))
			}
			if tc.wantLen > 0 && items[0].ID != tc.firstID {
				t.Fatalf("expected first id %d, got %d", tc.firstID, items[0].ID)
			}
		})
	}

	count, err := repo.Count(ctx)
	if err != nil || count != 25 {
		t.Fatalf("expected count 25, got %d (err=%v)", count, err)
	}
}
