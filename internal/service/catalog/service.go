package catalog

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// DefaultPageSize используется, когда размер страницы не задан.
const DefaultPageSize = 10

// Service отдаёт постраничные списки товаров и клиентов.
type Service struct {
	products  domain.ProductRepository
	customers domain.CustomerRepository
	logger    *log.Entry
}

// NewService создаёт сервис каталога.
func NewService(products domain.ProductRepository, customers domain.CustomerRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "catalog")
	}
	return &Service{products: products, customers: customers, logger: logger}
}

// ListProducts возвращает страницу товаров, упорядоченных по ID.
func (s *Service) ListProducts(ctx context.Context, page, pageSize int) (domain.Page[domain.Product], error) {
	return listPage(ctx, s.logger.WithField("entity", "product"), page, pageSize, s.products.Count, s.products.List)
}

// ListCustomers возвращает страницу клиентов, упорядоченных по ID.
func (s *Service) ListCustomers(ctx context.Context, page, pageSize int) (domain.Page[domain.Customer], error) {
	return listPage(ctx, s.logger.WithField("entity", "customer"), page, pageSize, s.customers.Count, s.customers.List)
}

// NormalizePaging приводит номер страницы к >= 1, а нулевой или
// отрицательный размер заменяет на DefaultPageSize.
func NormalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

func listPage[T any](
	ctx context.Context,
	logger *log.Entry,
	page, pageSize int,
	count func(context.Context) (int, error),
	list func(context.Context, int, int) ([]T, error),
) (domain.Page[T], error) {
	page, pageSize = NormalizePaging(page, pageSize)

	total, err := count(ctx)
	if err != nil {
		return domain.Page[T]{}, fmt.Errorf("count: %w", err)
	}

	result := domain.Page[T]{Items: []T{}, Page: page, PageSize: pageSize, TotalItems: total}
	if result.OutOfRange() || total == 0 {
		return result, nil
	}

	items, err := list(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return domain.Page[T]{}, fmt.Errorf("list: %w", err)
	}
	result.Items = items

	logger.WithFields(log.Fields{
		"page":      page,
		"page_size": pageSize,
		"total":     total,
		"returned":  len(items),
	}).Debug("page listed")

	return result, nil
}
