package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/app"
	"github.com/vladislavdragonenkov/storefront/internal/version"
)

// loadEnvFiles подгружает переменные из .env-файлов, не перетирая уже заданные.
// Отсутствующий файл ошибкой не считается.
func loadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func main() {
	if err := loadEnvFiles(".env"); err != nil {
		log.WithError(err).Fatal("не удалось прочитать .env")
	}

	cfg, warnings := app.LoadConfig(os.LookupEnv)
	logger := app.NewLogger(cfg)
	entry := logger.WithField("service", "storefront")
	for _, warning := range warnings {
		entry.Warnf("некорректная настройка, используется значение по умолчанию: %s", warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entry.WithFields(log.Fields{
		"grpc_addr":      cfg.GRPCAddr,
		"metrics_addr":   cfg.MetricsAddr,
		"storage_driver": cfg.StorageDriver,
		"version":        version.GetVersion(),
		"commit":         version.GetCommit(),
	}).Info("запускаем Storefront")

	if err := app.RunWithLogger(ctx, cfg, entry); err != nil && !errors.Is(err, context.Canceled) {
		entry.WithError(err).Fatal("приложение завершилось с ошибкой")
	}

	entry.Info("Storefront остановлен")
}
