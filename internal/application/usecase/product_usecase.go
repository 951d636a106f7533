package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sinopos/storefront-api/internal/application/dto"
	"github.com/sinopos/storefront-api/internal/domain"
	"github.com/sinopos/storefront-api/internal/domain/entity"
	"github.com/sinopos/storefront-api/internal/domain/repository"
	"github.com/sinopos/storefront-api/internal/infrastructure/cache"
)

// ProductUseCase admin CRUD for products. Deactivation (is_active) is the
// preferred way to pull a product off the storefront; Delete is for rows
// that never shipped. Every write invalidates the catalog cache.
type ProductUseCase struct {
	repo     repository.ProductRepository
	pageSize int
	cache    *cache.Catalog
}

// NewProductUseCase builds the use case. pageSize is the admin list size (20).
func NewProductUseCase(repo repository.ProductRepository, c *cache.Catalog, pageSize int) *ProductUseCase {
	if pageSize < 1 {
		pageSize = 20
	}
	return &ProductUseCase{repo: repo, cache: c, pageSize: pageSize}
}

// Create creates a product. Both price bounds are optional; when both are
// present min must not exceed max.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.NameEN == "" || in.NameZH == "" || in.Slug == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validatePriceRange(in.PriceMin, in.PriceMax); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetBySlug(in.Slug)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	minQty := in.MinOrderQty
	if minQty < 1 {
		minQty = 1
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		CategoryID:      in.CategoryID,
		NameEN:          in.NameEN,
		NameZH:          in.NameZH,
		DescriptionEN:   in.DescriptionEN,
		DescriptionZH:   in.DescriptionZH,
		RichDescription: in.RichDescription,
		Slug:            in.Slug,
		PriceMin:        toNullDecimal(in.PriceMin),
		PriceMax:        toNullDecimal(in.PriceMax),
		MinOrderQty:     minQty,
		Images:          in.Images,
		IsFeatured:      in.IsFeatured,
		IsNew:           in.IsNew,
		IsActive:        active,
		SortOrder:       in.SortOrder,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.cache.InvalidateCatalog(context.Background())
	return toProductResponse(product), nil
}

// GetByID fetches a product by ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List returns all products for the admin screens (inactive included),
// one page at a time.
func (uc *ProductUseCase) List(page int) (*dto.PagedProductsResponse, error) {
	if page < 1 {
		page = 1
	}
	// Admin lists include inactive rows, so the storefront-only ListPaged
	// does not apply here; page in memory over the full set.
	all, err := uc.repo.List(false)
	if err != nil {
		return nil, err
	}
	total := len(all)
	start := (page - 1) * uc.pageSize
	if start > total {
		start = total
	}
	end := start + uc.pageSize
	if end > total {
		end = total
	}
	resp := &dto.PagedProductsResponse{
		Items:      toProductResponses(all[start:end]),
		TotalCount: total,
	}
	if end < total {
		next := page + 1
		resp.NextPage = &next
	}
	return resp, nil
}

// Update applies a partial update, re-validating the price range against the
// resulting bounds.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.NameEN != nil {
		product.NameEN = *in.NameEN
	}
	if in.NameZH != nil {
		product.NameZH = *in.NameZH
	}
	if in.DescriptionEN != nil {
		product.DescriptionEN = *in.DescriptionEN
	}
	if in.DescriptionZH != nil {
		product.DescriptionZH = *in.DescriptionZH
	}
	if len(in.RichDescription) > 0 {
		product.RichDescription = in.RichDescription
	}
	if in.Slug != nil {
		product.Slug = *in.Slug
	}
	if in.PriceMin != nil {
		product.PriceMin = toNullDecimal(in.PriceMin)
	}
	if in.PriceMax != nil {
		product.PriceMax = toNullDecimal(in.PriceMax)
	}
	if product.PriceMin.Valid && product.PriceMax.Valid &&
		product.PriceMin.Decimal.GreaterThan(product.PriceMax.Decimal) {
		return nil, domain.ErrInvalidInput
	}
	if in.MinOrderQty != nil && *in.MinOrderQty >= 1 {
		product.MinOrderQty = *in.MinOrderQty
	}
	if in.Images != nil {
		product.Images = in.Images
	}
	if in.IsFeatured != nil {
		product.IsFeatured = *in.IsFeatured
	}
	if in.IsNew != nil {
		product.IsNew = *in.IsNew
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		product.SortOrder = *in.SortOrder
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.cache.InvalidateCatalog(context.Background())
	return toProductResponse(product), nil
}

// Delete removes a product by ID.
func (uc *ProductUseCase) Delete(id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.cache.InvalidateCatalog(context.Background())
	return nil
}

func validatePriceRange(min, max *decimal.Decimal) error {
	if min != nil && max != nil && min.GreaterThan(*max) {
		return domain.ErrInvalidInput
	}
	return nil
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
