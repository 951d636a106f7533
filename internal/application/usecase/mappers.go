package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/sinopos/storefront-api/internal/application/dto"
	"github.com/sinopos/storefront-api/internal/domain/catalog"
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

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}

func toTreeNodes(nodes []*catalog.Node) []dto.CategoryNode {
	out := make([]dto.CategoryNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, dto.CategoryNode{
			CategoryResponse: *toCategoryResponse(n.Category),
			Children:         toTreeNodes(n.Children),
		})
	}
	return out
}

func toInquiryResponse(in *entity.Inquiry) *dto.InquiryResponse {
	if in == nil {
		return nil
	}
	return &dto.InquiryResponse{
		ID:        in.ID,
		Number:    in.Number,
		ProductID: in.ProductID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Message:   in.Message,
		Source:    in.Source,
		Status:    in.Status,
		IsRead:    in.IsRead,
		CreatedAt: in.CreatedAt,
	}
}

func nullableDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
