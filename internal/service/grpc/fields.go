package grpcsvc

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Максимальное целое, которое double передаёт без потерь.
const maxExactFloatInt = 1 << 53

func field(req *structpb.Struct, name string) (*structpb.Value, bool) {
	if req == nil {
		return nil, false
	}
	value, ok := req.GetFields()[name]
	if !ok || value == nil {
		return nil, false
	}
	if _, isNull := value.GetKind().(*structpb.Value_NullValue); isNull {
		return nil, false
	}
	return value, true
}

// intField читает целое из number или строки. Отсутствующее поле даёт 0.
func intField(req *structpb.Struct, name string) (int64, error) {
	value, ok := field(req, name)
	if !ok {
		return 0, nil
	}

	switch kind := value.GetKind().(type) {
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) || math.Abs(n) > maxExactFloatInt {
			return 0, status.Errorf(codes.InvalidArgument, "%s must be an integer", name)
		}
		return int64(n), nil
	case *structpb.Value_StringValue:
		n, err := strconv.ParseInt(strings.TrimSpace(kind.StringValue), 10, 64)
		if err != nil {
			return 0, status.Errorf(codes.InvalidArgument, "%s must be an integer", name)
		}
		return n, nil
	default:
		return 0, status.Errorf(codes.InvalidArgument, "%s must be an integer", name)
	}
}

func pagingFields(req *structpb.Struct) (int, int, error) {
	page, err := intField(req, "page")
	if err != nil {
		return 0, 0, err
	}
	pageSize, err := intField(req, "page_size")
	if err != nil {
		return 0, 0, err
	}
	if page > math.MaxInt32 || pageSize > math.MaxInt32 {
		return 0, 0, status.Error(codes.InvalidArgument, "page and page_size are too large")
	}
	return int(page), int(pageSize), nil
}

// decimalField читает сумму. Строка предпочтительна: "49.90" сохраняет точность.
func decimalField(req *structpb.Struct, name string) (decimal.Decimal, error) {
	value, ok := field(req, name)
	if !ok {
		return decimal.Zero, nil
	}

	switch kind := value.GetKind().(type) {
	case *structpb.Value_StringValue:
		d, err := decimal.NewFromString(strings.TrimSpace(kind.StringValue))
		if err != nil {
			return decimal.Zero, status.Errorf(codes.InvalidArgument, "%s must be a decimal number", name)
		}
		return d, nil
	case *structpb.Value_NumberValue:
		if math.IsNaN(kind.NumberValue) || math.IsInf(kind.NumberValue, 0) {
			return decimal.Zero, status.Errorf(codes.InvalidArgument, "%s must be a decimal number", name)
		}
		return decimal.NewFromFloat(kind.NumberValue), nil
	default:
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "%s must be a decimal number", name)
	}
}

func stringField(req *structpb.Struct, name string) (string, error) {
	value, ok := field(req, name)
	if !ok {
		return "", nil
	}
	kind, isString := value.GetKind().(*structpb.Value_StringValue)
	if !isString {
		return "", status.Errorf(codes.InvalidArgument, "%s must be a string", name)
	}
	return kind.StringValue, nil
}

func newStruct(fields map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to encode response")
	}
	return out, nil
}

func pageFields[T any](page domain.Page[T], encode func(T) map[string]any) map[string]any {
	items := make([]any, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, encode(item))
	}
	return map[string]any{
		"items":       items,
		"page":        page.Page,
		"page_size":   page.PageSize,
		"total_items": page.TotalItems,
		"total_pages": page.TotalPages(),
		"has_next":    page.HasNext(),
	}
}

func productFields(product domain.Product) map[string]any {
	return map[string]any{
		"id":    product.ID,
		"name":  product.Name,
		"price": product.Price.StringFixed(2),
	}
}

func customerFields(customer domain.Customer) map[string]any {
	return map[string]any{
		"id":   customer.ID,
		"name": customer.Name,
	}
}

func orderFields(order domain.Order) map[string]any {
	return map[string]any{
		"id":                     order.ID,
		"value":                  order.Value.StringFixed(2),
		"customer_id":            order.CustomerID,
		"order_date":             order.OrderDate.UTC().Format(time.RFC3339Nano),
		"payment_method":         order.PaymentMethod,
		"payment_provider":       order.PaymentProvider,
		"payment_status":         string(order.PaymentStatus),
		"payment_transaction_id": order.PaymentTransactionID,
	}
}
