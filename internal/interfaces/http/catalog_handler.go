package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sinopos/storefront-api/internal/application/dto"
	"github.com/sinopos/storefront-api/internal/application/usecase"
)

// CatalogHandler serves the public storefront catalog (no auth).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler builds the handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListCategories godoc
// @Summary      Categories, flat and as a tree
// @Tags         store
// @Produce      json
// @Success      200  {object}  dto.CategoryTreeResponse
// @Router       /api/store/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetCategoryBySlug godoc
// @Summary      One category by slug
// @Tags         store
// @Produce      json
// @Param        slug  path  string  true  "Category slug"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/store/categories/{slug} [get]
func (h *CatalogHandler) GetCategoryBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	out, err := h.uc.GetCategoryBySlug(slug)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "category not found"})
	}
	return c.JSON(out)
}

// Browse godoc
// @Summary      Category browser: cumulative product pages plus the tree
// @Tags         store
// @Produce      json
// @Param        category  query  string  false  "Category id filter (includes direct children)"
// @Param        page      query  int     false  "Current page"   default(1)
// @Param        loaded    query  int     false  "Pages loaded so far"  default(1)
// @Success      200       {object}  dto.BrowseResponse
// @Router       /api/store/browse [get]
func (h *CatalogHandler) Browse(c *fiber.Ctx) error {
	categoryID := c.Query("category")
	page := c.QueryInt("page", 1)
	loaded := c.QueryInt("loaded", 1)
	out, err := h.uc.Browse(categoryID, page, loaded)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListProductsByCategory godoc
// @Summary      Active products of exactly one category (no child expansion)
// @Tags         store
// @Produce      json
// @Param        id   path  string  true  "Category id"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/store/categories/{id}/products [get]
func (h *CatalogHandler) ListProductsByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ListProductsByCategory(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListProducts godoc
// @Summary      All active products
// @Tags         store
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/store/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.uc.ListProducts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListProductsPaged godoc
// @Summary      One page of active products
// @Tags         store
// @Produce      json
// @Param        category  query  string  false  "Category id filter"
// @Param        page      query  int     false  "Page"  default(1)
// @Success      200       {object}  dto.PagedProductsResponse
// @Router       /api/store/products/paged [get]
func (h *CatalogHandler) ListProductsPaged(c *fiber.Ctx) error {
	categoryID := c.Query("category")
	page := c.QueryInt("page", 1)
	out, err := h.uc.ListProductsPaged(categoryID, page, 0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListFeatured godoc
// @Summary      Featured products
// @Tags         store
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/store/products/featured [get]
func (h *CatalogHandler) ListFeatured(c *fiber.Ctx) error {
	out, err := h.uc.ListFeaturedProducts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListNew godoc
// @Summary      New products
// @Tags         store
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/store/products/new [get]
func (h *CatalogHandler) ListNew(c *fiber.Ctx) error {
	out, err := h.uc.ListNewProducts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetProductBySlug godoc
// @Summary      One product by slug
// @Tags         store
// @Produce      json
// @Param        slug  path  string  true  "Product slug"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/store/products/{slug} [get]
func (h *CatalogHandler) GetProductBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	out, err := h.uc.GetProductBySlug(slug)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
	}
	return c.JSON(out)
}
