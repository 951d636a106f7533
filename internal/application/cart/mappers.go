package cart

import (
	"github.com/shopspring/decimal"
	"github.com/sinopos/storefront-api/internal/application/dto"
	"github.com/sinopos/storefront-api/internal/domain/entity"
)

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		ParentID:  c.ParentID,
		NameEN:    c.NameEN,
		NameZH:    c.NameZH,
		Slug:      c.Slug,
		ImageURL:  c.ImageURL,
		SortOrder: c.SortOrder,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		CategoryID:      p.CategoryID,
		NameEN:          p.NameEN,
		NameZH:          p.NameZH,
		DescriptionEN:   p.DescriptionEN,
		DescriptionZH:   p.DescriptionZH,
		RichDescription: p.RichDescription,
		Slug:            p.Slug,
		PriceMin:        nullableDecimal(p.PriceMin),
		PriceMax:        nullableDecimal(p.PriceMax),
		MinOrderQty:     p.MinOrderQty,
		Images:          p.Images,
		IsFeatured:      p.IsFeatured,
		IsNew:           p.IsNew,
		IsActive:        p.IsActive,
		SortOrder:       p.SortOrder,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func nullableDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
