package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/storefront/internal/service/numbers"
	"github.com/vladislavdragonenkov/storefront/internal/service/ordering"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Переменные окружения конфигурации.
const (
	EnvGRPCAddr          = "STOREFRONT_GRPC_ADDR"
	EnvMetricsAddr       = "STOREFRONT_METRICS_ADDR"
	EnvStorageDriver     = "STOREFRONT_STORAGE_DRIVER"
	EnvPostgresDSN       = "STOREFRONT_POSTGRES_DSN"
	EnvPostgresSchema    = "STOREFRONT_POSTGRES_ENSURE_SCHEMA"
	EnvSeedData          = "STOREFRONT_SEED_DATA"
	EnvKafkaBrokers      = "STOREFRONT_KAFKA_BROKERS"
	EnvKafkaTopic        = "STOREFRONT_KAFKA_TOPIC"
	EnvNumberUpper       = "STOREFRONT_NUMBER_UPPER"
	EnvNumberMaxAttempts = "STOREFRONT_NUMBER_MAX_ATTEMPTS"
	EnvPersistTimeout    = "STOREFRONT_PERSIST_TIMEOUT"
	EnvLogLevel          = "STOREFRONT_LOG_LEVEL"
	EnvLogFormat         = "STOREFRONT_LOG_FORMAT"
)

const (
	defaultSeedCustomers = 20
	defaultSeedProducts  = 20
)

// Config описывает настройки запуска приложения.
type Config struct {
	GRPCAddr    string
	MetricsAddr string

	StorageDriver        string
	PostgresDSN          string
	PostgresEnsureSchema bool
	// SeedData заполняет хранилище демонстрационными клиентами и товарами.
	SeedData bool

	KafkaBrokers []string
	KafkaTopic   string

	Numbers        numbers.Config
	PersistTimeout time.Duration

	LogLevel  string
	LogFormat string
}

// DefaultConfig возвращает конфигурацию для локального запуска без внешних зависимостей.
func DefaultConfig() Config {
	return Config{
		GRPCAddr:             ":50051",
		MetricsAddr:          ":9090",
		StorageDriver:        StorageDriverMemory,
		PostgresEnsureSchema: true,
		SeedData:             true,
		KafkaTopic:           kafka.TopicOrderEvents,
		Numbers:              numbers.DefaultConfig(),
		PersistTimeout:       ordering.DefaultPersistTimeout,
		LogLevel:             "info",
		LogFormat:            "text",
	}
}

// EnvLookup совместим с os.LookupEnv.
type EnvLookup func(key string) (string, bool)

// LoadConfig читает конфигурацию из окружения. Некорректные значения
// не прерывают запуск: остаётся значение по умолчанию, а в warnings
// попадает описание проблемы.
func LoadConfig(lookup EnvLookup) (Config, []string) {
	cfg := DefaultConfig()
	var warnings []string
	warn := func(key string, err error) {
		warnings = append(warnings, fmt.Sprintf("%s: %v", key, err))
	}

	if v, ok := nonEmpty(lookup, EnvGRPCAddr); ok {
		cfg.GRPCAddr = v
	}
	if v, ok := nonEmpty(lookup, EnvMetricsAddr); ok {
		cfg.MetricsAddr = v
	}
	if v, ok := nonEmpty(lookup, EnvStorageDriver); ok {
		cfg.StorageDriver = strings.ToLower(v)
	}
	if v, ok := nonEmpty(lookup, EnvPostgresDSN); ok {
		cfg.PostgresDSN = v
	}
	if v, ok := nonEmpty(lookup, EnvPostgresSchema); ok {
		if parsed, err := parseBool(v); err != nil {
			warn(EnvPostgresSchema, err)
		} else {
			cfg.PostgresEnsureSchema = parsed
		}
	}
	if v, ok := nonEmpty(lookup, EnvSeedData); ok {
		if parsed, err := parseBool(v); err != nil {
			warn(EnvSeedData, err)
		} else {
			cfg.SeedData = parsed
		}
	}
	if v, ok := nonEmpty(lookup, EnvKafkaBrokers); ok {
		cfg.KafkaBrokers = splitList(v)
	}
	if v, ok := nonEmpty(lookup, EnvKafkaTopic); ok {
		cfg.KafkaTopic = v
	}
	if v, ok := nonEmpty(lookup, EnvNumberUpper); ok {
		if parsed, err := parseInt(v, func(n int) bool { return n > 0 }, "must be > 0"); err != nil {
			warn(EnvNumberUpper, err)
		} else {
			cfg.Numbers.Upper = parsed
		}
	}
	if v, ok := nonEmpty(lookup, EnvNumberMaxAttempts); ok {
		if parsed, err := parseInt(v, func(n int) bool { return n > 0 }, "must be > 0"); err != nil {
			warn(EnvNumberMaxAttempts, err)
		} else {
			cfg.Numbers.MaxAttempts = parsed
		}
	}
	if v, ok := nonEmpty(lookup, EnvPersistTimeout); ok {
		if parsed, err := parseDuration(v, func(d time.Duration) bool { return d > 0 }, "must be > 0"); err != nil {
			warn(EnvPersistTimeout, err)
		} else {
			cfg.PersistTimeout = parsed
		}
	}
	if v, ok := nonEmpty(lookup, EnvLogLevel); ok {
		if _, err := log.ParseLevel(v); err != nil {
			warn(EnvLogLevel, err)
		} else {
			cfg.LogLevel = strings.ToLower(v)
		}
	}
	if v, ok := nonEmpty(lookup, EnvLogFormat); ok {
		switch strings.ToLower(v) {
		case "text", "json":
			cfg.LogFormat = strings.ToLower(v)
		default:
			warn(EnvLogFormat, fmt.Errorf("unsupported log format %q", v))
		}
	}

	return cfg, warnings
}

// Validate проверяет согласованность конфигурации перед запуском.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("%s is required for storage driver %q", EnvPostgresDSN, StorageDriverPostgres)
		}
	default:
		return fmt.Errorf("unsupported storage driver %q", c.StorageDriver)
	}
	return nil
}

// NewLogger настраивает logrus по конфигурации.
func NewLogger(cfg Config) *log.Logger {
	logger := log.New()
	if cfg.LogFormat == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func nonEmpty(lookup EnvLookup, key string) (string, bool) {
	v, ok := lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool value %q", v)
	}
}

func parseInt(v string, valid func(int) bool, rule string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("invalid int value %q", v)
	}
	if !valid(n) {
		return 0, fmt.Errorf("value %d %s", n, rule)
	}
	return n, nil
}

func parseDuration(v string, valid func(time.Duration) bool, rule string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("invalid duration value %q", v)
	}
	if !valid(d) {
		return 0, fmt.Errorf("value %s %s", d, rule)
	}
	return d, nil
}
