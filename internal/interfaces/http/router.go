package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sinopos/storefront-api/internal/application/auth"
	"github.com/sinopos/storefront-api/internal/application/cart"
	"github.com/sinopos/storefront-api/internal/application/usecase"
	"github.com/sinopos/storefront-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CatalogUC   *usecase.CatalogUseCase
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	InquiryUC   *usecase.InquiryUseCase
	TelemetryUC *usecase.TelemetryUseCase
	UploadUC    *usecase.UploadUseCase
	CartUC      *cart.UseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", LocaleMiddleware())

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/confirm", authHandler.Confirm)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Storefront catalog (public). Literal product routes go before :slug.
	store := api.Group("/store")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	store.Get("/categories", catalogHandler.ListCategories)
	store.Get("/categories/:id/products", catalogHandler.ListProductsByCategory)
	store.Get("/categories/:slug", catalogHandler.GetCategoryBySlug)
	store.Get("/browse", catalogHandler.Browse)
	store.Get("/products", catalogHandler.ListProducts)
	store.Get("/products/paged", catalogHandler.ListProductsPaged)
	store.Get("/products/featured", catalogHandler.ListFeatured)
	store.Get("/products/new", catalogHandler.ListNew)
	store.Get("/products/:slug", catalogHandler.GetProductBySlug)

	// Inquiry form and page-view beacon (public)
	inquiryHandler := NewInquiryHandler(deps.InquiryUC)
	api.Post("/inquiries", inquiryHandler.Create)
	trackHandler := NewTrackHandler(deps.TelemetryUC)
	api.Post("/track", trackHandler.Track)

	// Cart (requires Bearer token, any role)
	cartGroup := api.Group("/cart", AuthMiddleware(deps.JWTSecret))
	cartHandler := NewCartHandler(deps.CartUC, deps.InquiryUC)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/items", cartHandler.Add)
	cartGroup.Put("/items/:productId", cartHandler.UpdateQuantity)
	cartGroup.Delete("/items/:productId", cartHandler.Remove)
	cartGroup.Post("/checkout", cartHandler.Checkout)

	// Admin panel (requires Bearer token with the admin role)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))

	categories := admin.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := admin.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	inquiries := admin.Group("/inquiries")
	inquiries.Get("/", inquiryHandler.List)
	inquiries.Delete("/", inquiryHandler.DeleteMany)
	inquiries.Get("/unread", inquiryHandler.UnreadCount)
	inquiries.Get("/:id", inquiryHandler.GetByID)
	inquiries.Put("/:id/status", inquiryHandler.UpdateStatus)
	inquiries.Put("/:id/read", inquiryHandler.SetRead)
	inquiries.Delete("/:id", inquiryHandler.Delete)

	uploadHandler := NewUploadHandler(deps.UploadUC)
	admin.Post("/uploads", uploadHandler.Upload)
}
