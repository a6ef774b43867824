package clock

import (
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type systemClock struct{}

// NewSystem возвращает часы на основе time.Now, всегда в UTC.
func NewSystem() domain.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed возвращает часы, которые всегда отдают один и тот же момент (для тестов).
func NewFixed(t time.Time) domain.Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}
