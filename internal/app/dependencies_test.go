package app

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/clock"
	healthcheck "github.com/vladislavdragonenkov/storefront/internal/health"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
)

func TestInitRuntimeDependencies_MemorySeeded(t *testing.T) {
	deps, err := initRuntimeDependencies(context.Background(), DefaultConfig(), log.WithField("test", "memory-init"))
	require.NoError(t, err)
	defer func() { require.NoError(t, deps.closeFn()) }()

	customers, err := deps.customers.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, defaultSeedCustomers, customers)

	products, err := deps.products.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, defaultSeedProducts, products)

	require.Equal(t, healthcheck.StatusHealthy, deps.storageChecker.Check(context.Background()).Status)
}

func TestInitRuntimeDependencies_MemoryWithoutSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SeedData = false

	deps, err := initRuntimeDependencies(context.Background(), cfg, log.WithField("test", "memory-init"))
	require.NoError(t, err)

	count, err := deps.customers.Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestInitRuntimeDependencies_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StorageDriver = StorageDriverPostgres

	_, err := initRuntimeDependencies(context.Background(), cfg, log.WithField("test", "invalid"))
	require.ErrorContains(t, err, EnvPostgresDSN)
}

func TestInitRuntimeDependencies_PostgresSuccess(t *testing.T) {
	dsn := strings.TrimSpace(os.Getenv("STOREFRONT_POSTGRES_TEST_DSN"))
	if dsn == "" {
		t.Skip("postgres dsn is not available")
	}

	cfg := DefaultConfig()
	cfg.StorageDriver = StorageDriverPostgres
	cfg.PostgresDSN = dsn

	deps, err := initRuntimeDependencies(context.Background(), cfg, log.WithField("test", "postgres-init"))
	if err != nil {
		t.Skipf("postgres is not available for app integration test: %v", err)
	}
	defer func() { _ = deps.closeFn() }()

	require.Equal(t, healthcheck.StatusHealthy, deps.storageChecker.Check(context.Background()).Status)
	count, err := deps.customers.Count(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, count, defaultSeedCustomers)
}

func TestNewServices_EndToEnd(t *testing.T) {
	deps, err := initRuntimeDependencies(context.Background(), DefaultConfig(), log.WithField("test", "services"))
	require.NoError(t, err)

	m := metrics.NewStorefrontMetricsWithRegisterer(prometheus.NewRegistry())
	clk := clock.NewFixed(wednesdayMorning)
	services := newServices(deps, DefaultConfig(), clk, nil, m, log.WithField("test", "services"))

	require.Equal(t, []string{"creditcard", "paypal", "pix"}, services.Registry.Methods())

	value, err := services.Generator.Generate(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, value, 0)
	require.Less(t, value, 100)

	order, err := services.Workflow.PlaceOrder(context.Background(), "Pix", decimal.NewFromInt(50), 1)
	require.NoError(t, err)
	require.Equal(t, "Pix", order.PaymentProvider)

	allowed, err := services.Eligibility.CanPurchase(context.Background(), 1, decimal.NewFromInt(10))
	require.NoError(t, err)
	require.False(t, allowed)

	page, err := services.Catalog.ListProducts(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 10)
	require.False(t, page.HasNext())
}

func TestInitKafkaPublisher_Disabled(t *testing.T) {
	producer, publisher, checker := initKafkaPublisher(DefaultConfig(), log.WithField("test", "kafka"))
	require.Nil(t, producer)
	require.Nil(t, publisher)
	require.Nil(t, checker)

	closeKafka(nil, log.WithField("test", "kafka"))
}

func TestInitKafkaPublisher_UnreachableBrokerDegrades(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KafkaBrokers = []string{"127.0.0.1:1"}

	producer, publisher, checker := initKafkaPublisher(cfg, log.WithField("test", "kafka"))
	require.Nil(t, producer)
	require.Nil(t, publisher)
	require.NotNil(t, checker)

	check := checker.Check(context.Background())
	require.Equal(t, healthcheck.StatusDegraded, check.Status)
}
