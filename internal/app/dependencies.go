package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/clock"
	"github.com/vladislavdragonenkov/storefront/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/storefront/internal/health"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
	"github.com/vladislavdragonenkov/storefront/internal/service/catalog"
	"github.com/vladislavdragonenkov/storefront/internal/service/eligibility"
	"github.com/vladislavdragonenkov/storefront/internal/service/numbers"
	"github.com/vladislavdragonenkov/storefront/internal/service/ordering"
	"github.com/vladislavdragonenkov/storefront/internal/service/payment"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
	"github.com/vladislavdragonenkov/storefront/internal/storage/postgres"
)

// runtimeDependencies — хранилища выбранного драйвера и функция их закрытия.
type runtimeDependencies struct {
	customers domain.CustomerRepository
	products  domain.ProductRepository
	orders    domain.OrderRepository
	numbers   domain.UniqueNumberRepository

	storageChecker healthcheck.Checker
	closeFn        func() error
}

func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.StorageDriver {
	case StorageDriverPostgres:
		return initPostgresDependencies(ctx, cfg, logger)
	default:
		return initMemoryDependencies(cfg, logger), nil
	}
}

func initMemoryDependencies(cfg Config, logger *log.Entry) *runtimeDependencies {
	var (
		customers []domain.Customer
		products  []domain.Product
	)
	if cfg.SeedData {
		customers = memory.SeedCustomers(defaultSeedCustomers)
		products = memory.SeedProducts(defaultSeedProducts)
	}
	logger.WithFields(log.Fields{
		"customers": len(customers),
		"products":  len(products),
	}).Info("using in-memory storage")

	return &runtimeDependencies{
		customers: memory.NewCustomerRepository(customers...),
		products:  memory.NewProductRepository(products...),
		orders:    memory.NewOrderRepository(),
		numbers:   memory.NewUniqueNumberRepository(),
		storageChecker: healthcheck.NewPingChecker("storage", func(context.Context) error {
			return nil
		}),
		closeFn: func() error { return nil },
	}
}

func initPostgresDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	store, err := postgres.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	if cfg.PostgresEnsureSchema {
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("ensure postgres schema: %w", err)
		}
		logger.Info("postgres schema ensured")
	}
	if cfg.SeedData {
		if err := store.Seed(ctx, memory.SeedCustomers(defaultSeedCustomers), memory.SeedProducts(defaultSeedProducts)); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("seed postgres: %w", err)
		}
	}
	logger.Info("using postgres storage")

	return &runtimeDependencies{
		customers:      postgres.NewCustomerRepository(store),
		products:       postgres.NewProductRepository(store),
		orders:         postgres.NewOrderRepository(store),
		numbers:        postgres.NewUniqueNumberRepository(store),
		storageChecker: healthcheck.NewPingChecker("storage", store.Ping),
		closeFn:        store.Close,
	}, nil
}

// Services — прикладные сервисы, собранные поверх хранилищ.
type Services struct {
	Registry    *payment.Registry
	Generator   *numbers.Generator
	Catalog     *catalog.Service
	Workflow    *ordering.Workflow
	Eligibility *eligibility.Engine
}

func newServices(
	deps *runtimeDependencies,
	cfg Config,
	clk domain.Clock,
	publisher domain.OrderEventPublisher,
	m *metrics.StorefrontMetrics,
	logger *log.Entry,
) *Services {
	if clk == nil {
		clk = clock.NewSystem()
	}
	registry := payment.NewRegistry(logger.WithField("component", "payment-registry"), payment.DefaultProcessors()...)

	return &Services{
		Registry: registry,
		Generator: numbers.NewGenerator(
			deps.numbers, clk, cfg.Numbers, m,
			logger.WithField("component", "unique-numbers"),
		),
		Catalog: catalog.NewService(deps.products, deps.customers, logger.WithField("component", "catalog")),
		Workflow: ordering.NewWorkflow(
			deps.customers, deps.orders, registry, clk, publisher, m,
			logger.WithField("component", "ordering"),
		).WithPersistTimeout(cfg.PersistTimeout),
		Eligibility: eligibility.NewEngine(
			deps.customers, deps.orders, clk, m,
			logger.WithField("component", "eligibility"),
		),
	}
}
