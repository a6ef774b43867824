package domain

import "time"

// UniqueNumber — сохранённое случайное значение; Value уникально среди всех записей.
type UniqueNumber struct {
	ID        int64
	Value     int
	CreatedAt time.Time
}
