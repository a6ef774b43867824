package domain

import (
	"errors"
	"fmt"
)

// Категории ошибок. Конкретные ошибки ниже оборачивают одну из них,
// поэтому вызывающий код может проверять как конкретную ошибку, так и категорию.
var (
	// ErrInvalidArgument означает некорректный ввод; повтор запроса не поможет.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound означает, что упомянутой сущности нет.
	ErrNotFound = errors.New("not found")
	// ErrUnsupported означает неподдерживаемую возможность.
	ErrUnsupported = errors.New("unsupported")
	// ErrConflict означает нарушение ограничения уникальности в хранилище.
	ErrConflict = errors.New("conflict")
	// ErrExhaustedAttempts означает, что лимит попыток исчерпан.
	ErrExhaustedAttempts = errors.New("exhausted attempts")
	// ErrProcessorFailure оборачивает ошибки платёжного процессора.
	ErrProcessorFailure = errors.New("payment processor failure")
)

var (
	// Ошибка отсутствующего способа оплаты.
	ErrPaymentMethodRequired = fmt.Errorf("%w: payment method is required", ErrInvalidArgument)
	// Ошибка неположительной суммы.
	ErrAmountNotPositive = fmt.Errorf("%w: amount must be greater than zero", ErrInvalidArgument)
	// Ошибка суммы с дробной частью мельче копейки.
	ErrAmountPrecision = fmt.Errorf("%w: amount must have at most 2 decimal places", ErrInvalidArgument)
	// Ошибка неположительного идентификатора клиента.
	ErrCustomerIDInvalid = fmt.Errorf("%w: customer_id must be greater than zero", ErrInvalidArgument)
	// ErrCustomerNotFound возвращается, если клиента нет в хранилище.
	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)
	// ErrPaymentMethodUnsupported возвращается, если для способа оплаты нет процессора.
	ErrPaymentMethodUnsupported = fmt.Errorf("payment method %w", ErrUnsupported)
	// ErrUniqueNumberConflict возвращается, если значение уже сохранено.
	ErrUniqueNumberConflict = fmt.Errorf("unique number %w", ErrConflict)
	// ErrPaymentDeclined возвращается, если провайдер ответил не APPROVED.
	ErrPaymentDeclined = fmt.Errorf("%w: payment declined", ErrProcessorFailure)
)

// IsConflict проверяет, является ли ошибка конфликтом уникальности.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsNotFound проверяет, относится ли ошибка к отсутствующей сущности.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidArgument проверяет, вызвана ли ошибка некорректным вводом.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
