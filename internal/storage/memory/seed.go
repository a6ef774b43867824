package memory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// SeedCustomers генерирует count клиентов с ID 1..count.
func SeedCustomers(count int) []domain.Customer {
	customers := make([]domain.Customer, 0, count)
	for i := 1; i <= count; i++ {
		customers = append(customers, domain.Customer{
			ID:   int64(i),
			Name: fmt.Sprintf("Customer %02d", i),
		})
	}
	return customers
}

// SeedProducts генерирует count товаров с ID 1..count и ценой i*10.
func SeedProducts(count int) []domain.Product {
	products := make([]domain.Product, 0, count)
	for i := 1; i <= count; i++ {
		products = append(products, domain.Product{
			ID:    int64(i),
			Name:  fmt.Sprintf("Product %02d", i),
			Price: decimal.NewFromInt(int64(i * 10)),
		})
	}
	return products
}
