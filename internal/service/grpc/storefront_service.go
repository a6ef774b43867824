package grpcsvc

import (
	"context"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/eligibility"
)

// NumberGenerator выдаёт уникальные значения.
type NumberGenerator interface {
	Generate(ctx context.Context) (int, error)
}

// Catalog отдаёт постраничные списки.
type Catalog interface {
	ListProducts(ctx context.Context, page, pageSize int) (domain.Page[domain.Product], error)
	ListCustomers(ctx context.Context, page, pageSize int) (domain.Page[domain.Customer], error)
}

// OrderPlacer оформляет заказ.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, method string, amount decimal.Decimal, customerID int64) (domain.Order, error)
}

// EligibilityEvaluator проверяет допуск к покупке.
type EligibilityEvaluator interface {
	Evaluate(ctx context.Context, customerID int64, value decimal.Decimal) (eligibility.Decision, error)
}

// StorefrontService реализует gRPC API поверх сервисов витрины.
type StorefrontService struct {
	numbers     NumberGenerator
	catalog     Catalog
	orders      OrderPlacer
	eligibility EligibilityEvaluator
	logger      *log.Entry
}

// NewStorefrontService конструирует сервис с зависимостями.
func NewStorefrontService(
	numbers NumberGenerator,
	catalog Catalog,
	orders OrderPlacer,
	eligibility EligibilityEvaluator,
	logger *log.Entry,
) *StorefrontService {
	if logger == nil {
		logger = log.New().WithField("component", "storefront-service")
	}
	return &StorefrontService{
		numbers:     numbers,
		catalog:     catalog,
		orders:      orders,
		eligibility: eligibility,
		logger:      logger,
	}
}

// GenerateNumber возвращает новое уникальное значение.
func (s *StorefrontService) GenerateNumber(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	value, err := s.numbers.Generate(ctx)
	if err != nil {
		return nil, s.statusError("GenerateNumber", err)
	}
	return newStruct(map[string]any{"value": value})
}

// ListProducts возвращает страницу каталога.
func (s *StorefrontService) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	page, pageSize, err := pagingFields(req)
	if err != nil {
		return nil, err
	}

	result, err := s.catalog.ListProducts(ctx, page, pageSize)
	if err != nil {
		return nil, s.statusError("ListProducts", err)
	}
	if result.OutOfRange() {
		return nil, status.Error(codes.NotFound, "page out of range")
	}
	return newStruct(pageFields(result, productFields))
}

// ListCustomers возвращает страницу клиентов.
func (s *StorefrontService) ListCustomers(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	page, pageSize, err := pagingFields(req)
	if err != nil {
		return nil, err
	}

	result, err := s.catalog.ListCustomers(ctx, page, pageSize)
	if err != nil {
		return nil, s.statusError("ListCustomers", err)
	}
	if result.OutOfRange() {
		return nil, status.Error(codes.NotFound, "page out of range")
	}
	return newStruct(pageFields(result, customerFields))
}

// PlaceOrder оплачивает и сохраняет заказ.
func (s *StorefrontService) PlaceOrder(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	method, err := stringField(req, "payment_method")
	if err != nil {
		return nil, err
	}
	amount, err := decimalField(req, "amount")
	if err != nil {
		return nil, err
	}
	customerID, err := intField(req, "customer_id")
	if err != nil {
		return nil, err
	}

	order, err := s.orders.PlaceOrder(ctx, method, amount, customerID)
	if err != nil {
		return nil, s.statusError("PlaceOrder", err)
	}
	return newStruct(map[string]any{"order": orderFields(order)})
}

// CanPurchase сообщает, может ли клиент совершить покупку на указанную сумму.
func (s *StorefrontService) CanPurchase(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	customerID, err := intField(req, "customer_id")
	if err != nil {
		return nil, err
	}
	value, err := decimalField(req, "value")
	if err != nil {
		return nil, err
	}

	decision, err := s.eligibility.Evaluate(ctx, customerID, value)
	if err != nil {
		return nil, s.statusError("CanPurchase", err)
	}
	return newStruct(map[string]any{
		"allowed": decision.Allowed,
		"rule":    string(decision.Rule),
	})
}

// statusError переводит ошибку в gRPC-статус. Детали внутренних ошибок
// остаются в логе и не уходят клиенту.
func (s *StorefrontService) statusError(operation string, err error) error {
	code := codeFromError(err)
	entry := s.logger.WithError(err).WithFields(log.Fields{
		"operation": operation,
		"code":      code.String(),
	})
	if code == codes.Internal {
		entry.Error("operation failed")
		return status.Error(codes.Internal, "internal error")
	}
	entry.Debug("operation rejected")
	return status.Error(code, err.Error())
}

var _ StorefrontServer = (*StorefrontService)(nil)
