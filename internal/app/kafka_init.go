package app

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/storefront/internal/health"
	"github.com/vladislavdragonenkov/storefront/internal/messaging/kafka"
)

var errKafkaUnavailable = errors.New("kafka producer is not available")

// initKafkaPublisher создаёт publisher событий заказов, если заданы брокеры.
// Ошибка подключения не прерывает запуск: сервис работает без событий,
// а проверка kafka переходит в degraded.
func initKafkaPublisher(cfg Config, logger *log.Entry) (*kafka.Producer, domain.OrderEventPublisher, healthcheck.Checker) {
	if len(cfg.KafkaBrokers) == 0 {
		return nil, nil, nil
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, logger.WithField("component", "kafka-producer"))
	if err != nil {
		logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		return nil, nil, healthcheck.NewOptionalChecker("kafka", func(context.Context) error {
			return errKafkaUnavailable
		})
	}

	logger.WithFields(log.Fields{
		"brokers": cfg.KafkaBrokers,
		"topic":   cfg.KafkaTopic,
	}).Info("kafka producer initialized")

	checker := healthcheck.NewOptionalChecker("kafka", func(context.Context) error { return nil })
	return producer, kafka.NewOrderPublisher(producer, cfg.KafkaTopic), checker
}

// closeKafka закрывает Kafka producer если он не nil.
func closeKafka(producer *kafka.Producer, logger *log.Entry) {
	if producer == nil {
		return
	}

	if err := producer.Close(); err != nil {
		logger.WithError(err).Warn("failed to close kafka producer")
	} else {
		logger.Info("kafka producer closed")
	}
}
