package domain

// PaymentStatus описывает итог расчёта, который вернул платёжный провайдер.
type PaymentStatus string

const (
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusDeclined PaymentStatus = "DECLINED"
	PaymentStatusPending  PaymentStatus = "PENDING"
)

// Approved сообщает, можно ли считать платёж завершённым успешно.
func (s PaymentStatus) Approved() bool {
	return s == PaymentStatusApproved
}

// Settlement — результат вызова платёжного процессора.
type Settlement struct {
	TransactionID string
	Provider      string
	Status        PaymentStatus
}
