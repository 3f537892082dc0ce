package main

import (
	"log"
	"net/http"
	"sync"

	"github.com/rogerio-castellano/storefront/internal/config"
	router "github.com/rogerio-castellano/storefront/internal/http"
	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rogerio-castellano/storefront/internal/storage"
)

// @title Storefront API
// @version 1.0
// @description REST API for managing products, categories and shopping carts over file-backed JSON collections.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("❌ Could not open %s store: %v", cfg.Store, err)
	}

	rl.Configure(cfg.RateLimit, cfg.RateBurst)
	go rl.StartClientCleanupLoop()

	// One writer lock shared by every repository: read-modify-write cycles
	// against the collections are serialized within the process.
	var mu sync.Mutex
	productRepo := repo.NewStoreProductRepository(store, &mu)
	categoryRepo := repo.NewStoreCategoryRepository(store, &mu)
	cartRepo := repo.NewStoreCartRepository(store, &mu)

	handlers.SetProductRepo(productRepo)
	handlers.SetCategoryRepo(categoryRepo)
	handlers.SetCartRepo(cartRepo)

	metricsRepo := repo.NewStoreMetricsRepository()
	metricsRepo.SetRepositories(productRepo, categoryRepo, cartRepo)
	handlers.SetMetricsRepo(metricsRepo)

	r := router.NewRouter()
	log.Printf("✅ Server running on %s (store: %s)", cfg.Addr, cfg.Store)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}

func openStore(cfg config.Config) (storage.CollectionStore, error) {
	switch cfg.Store {
	case config.StorePostgres:
		return storage.NewPostgresStore(cfg.DatabaseURL)
	case config.StoreRedis:
		return storage.NewRedisStore(cfg.RedisAddr)
	case config.StoreMemory:
		return storage.NewMemoryStore(), nil
	default:
		return storage.NewFileStore(cfg.DataDir)
	}
}
