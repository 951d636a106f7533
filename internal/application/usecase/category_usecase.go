package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sinopos/storefront-api/internal/application/dto"
	"github.com/sinopos/storefront-api/internal/domain"
	"github.com/sinopos/storefront-api/internal/domain/entity"
	"github.com/sinopos/storefront-api/internal/domain/repository"
	"github.com/sinopos/storefront-api/internal/infrastructure/cache"
)

// CategoryUseCase admin CRUD for categories. Every write invalidates the
// catalog cache.
type CategoryUseCase struct {
	repo  repository.CategoryRepository
	cache *cache.Catalog
}

// NewCategoryUseCase builds the use case.
func NewCategoryUseCase(repo repository.CategoryRepository, c *cache.Catalog) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, cache: c}
}

// Create creates a category. The parent, when given, must exist.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.NameEN == "" || in.NameZH == "" || in.Slug == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != "" {
		parent, err := uc.repo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
	}
	existing, _ := uc.repo.GetBySlug(in.Slug)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		ParentID:  in.ParentID,
		NameEN:    in.NameEN,
		NameZH:    in.NameZH,
		Slug:      in.Slug,
		ImageURL:  in.ImageURL,
		SortOrder: in.SortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	uc.cache.InvalidateCatalog(context.Background())
	return toCategoryResponse(category), nil
}

// GetByID fetches a category by ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Update applies a partial update. A category cannot become its own parent.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.ParentID != nil {
		if *in.ParentID == id {
			return nil, domain.ErrInvalidInput
		}
		category.ParentID = *in.ParentID
	}
	if in.NameEN != nil {
		category.NameEN = *in.NameEN
	}
	if in.NameZH != nil {
		category.NameZH = *in.NameZH
	}
	if in.Slug != nil {
		category.Slug = *in.Slug
	}
	if in.ImageURL != nil {
		category.ImageURL = *in.ImageURL
	}
	if in.SortOrder != nil {
		category.SortOrder = *in.SortOrder
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	uc.cache.InvalidateCatalog(context.Background())
	return toCategoryResponse(category), nil
}

// Delete removes a category. Child categories or referencing products
// surface as domain.ErrHasDependents.
func (uc *CategoryUseCase) Delete(id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.cache.InvalidateCatalog(context.Background())
	return nil
}
