package numbers

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
)

// Config задаёт диапазон значений и лимит попыток генератора.
type Config struct {
	// Upper — верхняя граница (не включительно) диапазона [0, Upper).
	Upper       int
	MaxAttempts int
}

// DefaultConfig возвращает диапазон [0, 100) и 7 попыток.
func DefaultConfig() Config {
	return Config{
		Upper:       100,
		MaxAttempts: 7,
	}
}

// Generator выдаёт случайные значения, которые ещё не были сохранены.
// Уникальность обеспечивает ограничение хранилища, а не проверка в процессе,
// поэтому генератор безопасен для конкурентных вызовов из нескольких инстансов.
type Generator struct {
	repo    domain.UniqueNumberRepository
	clock   domain.Clock
	config  Config
	logger  *log.Entry
	metrics *metrics.StorefrontMetrics
	// draw подменяется в тестах для детерминированных последовательностей.
	draw func(upper int) (int, error)
}

// NewGenerator создаёт генератор. metrics может быть nil.
func NewGenerator(
	repo domain.UniqueNumberRepository,
	clk domain.Clock,
	config Config,
	m *metrics.StorefrontMetrics,
	logger *log.Entry,
) *Generator {
	if logger == nil {
		logger = log.New().WithField("component", "unique-numbers")
	}
	defaults := DefaultConfig()
	if config.Upper <= 0 {
		config.Upper = defaults.Upper
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = defaults.MaxAttempts
	}
	return &Generator{
		repo:    repo,
		clock:   clk,
		config:  config,
		logger:  logger,
		metrics: m,
		draw:    cryptoDraw,
	}
}

// Generate сохраняет и возвращает новое уникальное значение.
// При конфликте уникальности попытка повторяется; после MaxAttempts
// возвращается ErrExhaustedAttempts. Прочие ошибки хранилища не повторяются.
func (g *Generator) Generate(ctx context.Context) (int, error) {
	for attempt := 1; attempt <= g.config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		value, err := g.draw(g.config.Upper)
		if err != nil {
			return 0, fmt.Errorf("draw random value: %w", err)
		}

		if g.metrics != nil {
			g.metrics.RecordNumberAttempt()
		}

		_, err = g.repo.Insert(ctx, domain.UniqueNumber{
			Value:     value,
			CreatedAt: g.clock.Now().UTC(),
		})
		if err == nil {
			if g.metrics != nil {
				g.metrics.RecordNumberGenerated()
			}
			if attempt > 1 {
				g.logger.WithFields(log.Fields{
					"value":   value,
					"attempt": attempt,
				}).Debug("unique number generated after retry")
			}
			return value, nil
		}

		if !errors.Is(err, domain.ErrUniqueNumberConflict) {
			return 0, fmt.Errorf("insert unique number: %w", err)
		}

		if g.metrics != nil {
			g.metrics.RecordNumberConflict()
		}
		g.logger.WithFields(log.Fields{
			"value":   value,
			"attempt": attempt,
		}).Debug("unique number already taken, retrying")
	}

	if g.metrics != nil {
		g.metrics.RecordNumberExhausted()
	}
	g.logger.WithField("max_attempts", g.config.MaxAttempts).Warn("failed to generate unique number")

	return 0, fmt.Errorf("%w: no unique number after %d attempts", domain.ErrExhaustedAttempts, g.config.MaxAttempts)
}

func cryptoDraw(upper int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(upper)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
