package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/warehousr/inventory-api/docs"
	"github.com/warehousr/inventory-api/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(RateLimit)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", handlers.GetCategoriesHandler)
		r.Post("/categories", handlers.CreateCategoryHandler)

		r.Get("/products", handlers.GetProductsHandler)
		r.Post("/products", handlers.CreateProductHandler)
		r.Get("/products/{id}", handlers.GetProductByIDHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)

		r.Post("/inventory/adjust", handlers.TransferStockHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
