package handlers

import (
	repo "github.com/rogerio-castellano/storefront/internal/repo"
)

var (
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
	cartRepo     repo.CartRepository
	metricsRepo  repo.MetricsRepository
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

func SetCartRepo(r repo.CartRepository) {
	cartRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}
