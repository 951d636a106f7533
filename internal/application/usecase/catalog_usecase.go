package usecase

import (
	"context"

	"github.com/sinopos/storefront-api/internal/application/dto"
	"github.com/sinopos/storefront-api/internal/domain/catalog"
	"github.com/sinopos/storefront-api/internal/domain/entity"
	"github.com/sinopos/storefront-api/internal/domain/repository"
	"github.com/sinopos/storefront-api/internal/infrastructure/cache"
)

// CatalogUseCase is the read-only storefront surface: category tree,
// product listings, slug lookups and the category browser. Hot lists go
// through the best-effort cache; admin writes invalidate it.
type CatalogUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	cache      *cache.Catalog
	pageSize   int
}

// NewCatalogUseCase builds the use case. pageSize is the category browser
// page size (12 on the storefront).
func NewCatalogUseCase(categories repository.CategoryRepository, products repository.ProductRepository, c *cache.Catalog, pageSize int) *CatalogUseCase {
	if pageSize < 1 {
		pageSize = 12
	}
	return &CatalogUseCase{categories: categories, products: products, cache: c, pageSize: pageSize}
}

// ListCategories returns all categories (sort order ascending) plus the
// assembled navigation tree.
func (uc *CatalogUseCase) ListCategories() (*dto.CategoryTreeResponse, error) {
	cats, err := uc.allCategories()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryTreeResponse{
		Items: items,
		Tree:  toTreeNodes(catalog.BuildTree(cats)),
	}, nil
}

// GetCategoryBySlug looks a category up by slug. (nil, nil) when absent.
func (uc *CatalogUseCase) GetCategoryBySlug(slug string) (*dto.CategoryResponse, error) {
	c, err := uc.categories.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCategoryResponse(c), nil
}

// ListProducts returns every active product, sort order ascending.
func (uc *CatalogUseCase) ListProducts() (*dto.ProductListResponse, error) {
	products, err := uc.allProducts()
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{Items: toProductResponses(products)}, nil
}

// ListFeaturedProducts returns active featured products.
func (uc *CatalogUseCase) ListFeaturedProducts() (*dto.ProductListResponse, error) {
	var cached []*entity.Product
	if uc.cache.Get(context.Background(), cache.KeyFeatured, &cached) {
		return &dto.ProductListResponse{Items: toProductResponses(cached)}, nil
	}
	products, err := uc.products.ListFeatured()
	if err != nil {
		return nil, err
	}
	uc.cache.Set(context.Background(), cache.KeyFeatured, products)
	return &dto.ProductListResponse{Items: toProductResponses(products)}, nil
}

// ListNewProducts returns active new-arrival products.
func (uc *CatalogUseCase) ListNewProducts() (*dto.ProductListResponse, error) {
	var cached []*entity.Product
	if uc.cache.Get(context.Background(), cache.KeyNew, &cached) {
		return &dto.ProductListResponse{Items: toProductResponses(cached)}, nil
	}
	products, err := uc.products.ListNew()
	if err != nil {
		return nil, err
	}
	uc.cache.Set(context.Background(), cache.KeyNew, products)
	return &dto.ProductListResponse{Items: toProductResponses(products)}, nil
}

// ListProductsByCategory returns the active products of one category
// (that category only, no descendant expansion).
func (uc *CatalogUseCase) ListProductsByCategory(categoryID string) (*dto.ProductListResponse, error) {
	products, err := uc.products.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{Items: toProductResponses(products)}, nil
}

// GetProductBySlug looks a product up by slug. (nil, nil) when absent.
func (uc *CatalogUseCase) GetProductBySlug(slug string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// ListProductsPaged is the server-side alternative to Browse for large
// catalogs: one LIMIT/OFFSET page straight from the store, with the same
// one-level category expansion and the same total-count semantics (rows
// matching the filter, independent of page size).
func (uc *CatalogUseCase) ListProductsPaged(categoryID string, page, pageSize int) (*dto.PagedProductsResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = uc.pageSize
	}
	var ids []string
	if categoryID != "" {
		cats, err := uc.allCategories()
		if err != nil {
			return nil, err
		}
		for id := range catalog.EffectiveCategoryIDs(categoryID, cats) {
			ids = append(ids, id)
		}
	}
	items, total, err := uc.products.ListPaged(ids, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	resp := &dto.PagedProductsResponse{
		Items:      toProductResponses(items),
		TotalCount: total,
	}
	if page*pageSize < total {
		next := page + 1
		resp.NextPage = &next
	}
	return resp, nil
}

// Browse is the category browser: filter by the selected category (plus its
// direct children), then page the result. loaded > 1 reproduces a cumulative
// "load more" window of that many pages; otherwise page jumps to that page.
func (uc *CatalogUseCase) Browse(categoryID string, page, loaded int) (*dto.BrowseResponse, error) {
	cats, err := uc.allCategories()
	if err != nil {
		return nil, err
	}
	products, err := uc.allProducts()
	if err != nil {
		return nil, err
	}

	ids := catalog.EffectiveCategoryIDs(categoryID, cats)
	filtered := catalog.FilterProducts(products, ids)
	p := catalog.NewPaginator(filtered, uc.pageSize)
	if loaded > 1 {
		for i := 1; i < loaded; i++ {
			more, _ := p.LoadMore(nil)
			if !more {
				break
			}
		}
	} else if page > 1 {
		p.GoToPage(page)
	}

	return &dto.BrowseResponse{
		Items: toProductResponses(p.Displayed()),
		Page: dto.PageResponse{
			Page:       p.CurrentPage(),
			PageSize:   p.PageSize(),
			TotalCount: p.TotalCount(),
			TotalPages: p.TotalPages(),
		},
		Loaded: p.LoadedPages(),
		Tree:   toTreeNodes(catalog.BuildTree(cats)),
	}, nil
}

func (uc *CatalogUseCase) allCategories() ([]*entity.Category, error) {
	var cached []*entity.Category
	if uc.cache.Get(context.Background(), cache.KeyCategories, &cached) {
		return cached, nil
	}
	cats, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	uc.cache.Set(context.Background(), cache.KeyCategories, cats)
	return cats, nil
}

func (uc *CatalogUseCase) allProducts() ([]*entity.Product, error) {
	var cached []*entity.Product
	if uc.cache.Get(context.Background(), cache.KeyProducts, &cached) {
		return cached, nil
	}
	products, err := uc.products.List(true)
	if err != nil {
		return nil, err
	}
	uc.cache.Set(context.Background(), cache.KeyProducts, products)
	return products, nil
}
