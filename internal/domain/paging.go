package domain

// Page — срез упорядоченной выборки вместе с общим количеством записей.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalItems int
}

// TotalPages возвращает количество страниц при текущем размере страницы.
func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 || p.TotalItems <= 0 {
		return 0
	}
	return (p.TotalItems + p.PageSize - 1) / p.PageSize
}

// HasNext сообщает, есть ли страница после текущей.
func (p Page[T]) HasNext() bool {
	return p.Page < p.TotalPages()
}

// OutOfRange сообщает, что запрошена страница за пределами непустой выборки.
func (p Page[T]) OutOfRange() bool {
	return p.TotalItems > 0 && p.Page > p.TotalPages()
}
