package repo

// StoreMetricsRepository derives dashboard metrics from the other
// repositories; nothing is cached or precomputed.
type StoreMetricsRepository struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	cartRepo     CartRepository
}

func NewStoreMetricsRepository() *StoreMetricsRepository {
	return &StoreMetricsRepository{}
}

func (r *StoreMetricsRepository) SetRepositories(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	cartRepo CartRepository,
) {
	r.productRepo = productRepo
	r.categoryRepo = categoryRepo
	r.cartRepo = cartRepo
}

func (r *StoreMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	m := Metrics{}

	products, err := r.productRepo.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalProducts = len(products)
	for _, p := range products {
		if p.Stock == 0 {
			m.OutOfStockCount++
		}
	}

	categories, err := r.categoryRepo.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalCategories = len(categories)

	carts, err := r.cartRepo.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalCarts = len(carts)
	for _, c := range carts {
		m.OpenCartValue += c.Total()
	}

	return m, nil
}
