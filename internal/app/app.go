package app

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sagfgh000/grocery/internal/config"
	"github.com/sagfgh000/grocery/internal/datastore"
	httpdelivery "github.com/sagfgh000/grocery/internal/delivery/http"
	"github.com/sagfgh000/grocery/internal/storage"
)

type App struct {
	f     *fiber.App
	cfg   config.Config
	store *datastore.Store
}

func New() *App {
	cfg := config.Load()

	kv, err := newKV(cfg)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}

	store, err := datastore.Open(context.Background(), kv, datastore.Options{
		ShopName:     cfg.ShopName,
		ShopAddress:  cfg.ShopAddress,
		SeedDemoData: cfg.SeedDemoData,
	})
	if err != nil {
		log.Fatalf("datastore open failed: %v", err)
	}

	f := fiber.New(fiber.Config{
		AppName: "grocerease-pos",
	})

	f.Use(recover.New())
	f.Use(logger.New())

	httpdelivery.RegisterRoutes(f, cfg, store)

	return &App{f: f, cfg: cfg, store: store}
}

func (a *App) Run() error {
	return a.f.Listen(":" + a.cfg.Port)
}

// Shutdown stops the listener and flushes state one last time.
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.f.Shutdown(); err != nil {
		return err
	}
	return a.store.Flush(ctx)
}

func newKV(cfg config.Config) (storage.KV, error) {
	switch cfg.StorageBackend {
	case "file":
		return storage.NewFileStore(cfg.DataDir)
	case "redis":
		return storage.NewRedisStore(cfg.RedisAddr), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
