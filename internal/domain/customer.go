package domain

// Customer — покупатель. Неизменяем после создания, существование проверяется по ID.
type Customer struct {
	ID   int64
	Name string
}
