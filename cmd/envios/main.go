package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"envios-registry/internal/cli"
	"envios-registry/internal/core/config"
	"envios-registry/internal/core/docstore"
	"envios-registry/internal/core/logger"
	customersservice "envios-registry/internal/features/customers/service"
	shipmentsadapters "envios-registry/internal/features/shipments/adapters"
	shipmentsservice "envios-registry/internal/features/shipments/service"
	"envios-registry/internal/registry"
)

func main() {
	// Missing .env is fine; the environment may already carry everything.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("store_backend", cfg.Store.Backend),
	)

	ctx := context.Background()

	store, err := newStore(ctx, cfg)
	if err != nil {
		l.Fatal("Store initialization failed", zap.Error(err))
	}
	defer store.Close()

	reg := registry.New(store)
	reg.Load(ctx)

	deps := cli.Deps{
		Customers: customersservice.NewCustomerService(reg),
		Shipments: shipmentsservice.NewShipmentService(reg, reg),
		Exporter:  shipmentsadapters.NewFileReportExporter(cfg.Reports.ExportDir),
	}

	if err := cli.Execute(deps); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newStore builds the configured document store and verifies it is
// reachable before any records load.
func newStore(ctx context.Context, cfg *config.AppConfig) (docstore.Store, error) {
	var (
		store docstore.Store
		err   error
	)

	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		store, err = docstore.NewRedisStore(cfg.Store.RedisURL)
	default:
		store, err = docstore.NewFileStore(cfg.Store.DataDir)
	}
	if err != nil {
		return nil, err
	}

	if err := store.Ping(ctx); err != nil {
		store.Close()
		return nil, err
	}

	return store, nil
}
