package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/rogerio-castellano/storefront/docs"
	"github.com/rogerio-castellano/storefront/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RateLimitMiddleware)

	r.Get("/products", handlers.GetProductsHandler)
	r.Post("/products", handlers.CreateProductHandler)
	r.Post("/products/import", handlers.ImportProductsHandler)
	r.Get("/products/category/{categoryId}", handlers.GetProductsByCategoryHandler)
	r.Put("/products/{id}", handlers.UpdateProductHandler)
	r.Delete("/products/{id}", handlers.DeleteProductHandler)

	r.Get("/categories", handlers.GetCategoriesHandler)
	r.Post("/categories", handlers.CreateCategoryHandler)
	r.Put("/categories/{id}", handlers.UpdateCategoryHandler)
	r.Delete("/categories/{id}", handlers.DeleteCategoryHandler)
	r.Post("/categories/{categoryId}/products/{productId}/link", handlers.LinkProductHandler)
	r.Post("/categories/{categoryId}/products/{productId}/unlink", handlers.UnlinkProductHandler)

	r.Get("/carts", handlers.GetCartsHandler)
	r.Post("/carts", handlers.CreateCartHandler)
	r.Get("/carts/user/{userId}", handlers.GetCartByUserIDHandler)
	r.Get("/carts/{id}", handlers.GetCartByIDHandler)
	r.Put("/carts/{id}", handlers.UpdateCartHandler)
	r.Post("/carts/{id}/items", handlers.AddItemHandler)
	r.Post("/carts/{id}/items/batch", handlers.AddItemsHandler)
	r.Put("/carts/{id}/items/{productId}", handlers.UpdateItemHandler)
	r.Delete("/carts/{id}/items/{productId}", handlers.RemoveItemHandler)
	r.Delete("/carts/{id}/clear", handlers.ClearCartHandler)
	r.Get("/carts/{id}/total", handlers.GetCartTotalHandler)
	r.Post("/carts/{id}/checkout", handlers.CheckoutHandler)

	r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

	r.Get("/swagger/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(docs.OpenAPI)
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
