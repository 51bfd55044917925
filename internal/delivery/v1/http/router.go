package http

import (
	"github.com/DRSN-tech/pricing-backend/internal/usecase"
	"github.com/DRSN-tech/pricing-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catUC usecase.CategoryUC, prUC usecase.ProductUC, priceUC usecase.PriceUC) {
	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCategoryRoutes(v1, NewCategoryHandler(catUC, r.logger))
		registerProductRoutes(v1, NewProductHandler(prUC, r.logger))
		registerPriceRoutes(v1, NewPriceHandler(priceUC, r.logger))
	})
}

func registerCategoryRoutes(router chi.Router, h *CategoryHandler) {
	router.Route("/categories", func(cat chi.Router) {
		cat.Get("/", h.listCategories)
		cat.Post("/", h.createCategory)
		cat.Put("/{id}", h.updateCategory)
		cat.Delete("/{id}", h.deleteCategory)
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Post("/", h.createProduct)
		pr.Get("/{id}", h.getProduct)
		pr.Patch("/{id}", h.updateProduct)
		pr.Delete("/{id}", h.archiveProduct)
	})
}

func registerPriceRoutes(router chi.Router, h *PriceHandler) {
	router.Route("/prices/products", func(pc chi.Router) {
		pc.Post("/set-price", h.setPrice)
		pc.Get("/get-price/{id}", h.getAveragePrice)
	})
}
