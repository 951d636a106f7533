package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest input to create a product.
type CreateProductRequest struct {
	CategoryID      string           `json:"category_id"`
	NameEN          string           `json:"name_en" validate:"required,min=1,max=200"`
	NameZH          string           `json:"name_zh" validate:"required,min=1,max=200"`
	DescriptionEN   string           `json:"description_en"`
	DescriptionZH   string           `json:"description_zh"`
	RichDescription json.RawMessage  `json:"rich_description"`
	Slug            string           `json:"slug" validate:"required,min=1,max=100"`
	PriceMin        *decimal.Decimal `json:"price_min"`
	PriceMax        *decimal.Decimal `json:"price_max"`
	MinOrderQty     int              `json:"min_order_qty"`
	Images          []string         `json:"images"`
	IsFeatured      bool             `json:"is_featured"`
	IsNew           bool             `json:"is_new"`
	IsActive        *bool            `json:"is_active"` // defaults to true
	SortOrder       int              `json:"sort_order"`
}

// UpdateProductRequest input to update a product (partial).
type UpdateProductRequest struct {
	CategoryID      *string          `json:"category_id"`
	NameEN          *string          `json:"name_en" validate:"omitempty,min=1,max=200"`
	NameZH          *string          `json:"name_zh" validate:"omitempty,min=1,max=200"`
	DescriptionEN   *string          `json:"description_en"`
	DescriptionZH   *string          `json:"description_zh"`
	RichDescription json.RawMessage  `json:"rich_description"`
	Slug            *string          `json:"slug" validate:"omitempty,min=1,max=100"`
	PriceMin        *decimal.Decimal `json:"price_min"`
	PriceMax        *decimal.Decimal `json:"price_max"`
	MinOrderQty     *int             `json:"min_order_qty"`
	Images          []string         `json:"images"`
	IsFeatured      *bool            `json:"is_featured"`
	IsNew           *bool            `json:"is_new"`
	IsActive        *bool            `json:"is_active"`
	SortOrder       *int             `json:"sort_order"`
}

// ProductResponse one product row. Nil price bounds mean "contact for price".
type ProductResponse struct {
	ID              string           `json:"id"`
	CategoryID      string           `json:"category_id,omitempty"`
	NameEN          string           `json:"name_en"`
	NameZH          string           `json:"name_zh"`
	DescriptionEN   string           `json:"description_en,omitempty"`
	DescriptionZH   string           `json:"description_zh,omitempty"`
	RichDescription json.RawMessage  `json:"rich_description,omitempty"`
	Slug            string           `json:"slug"`
	PriceMin        *decimal.Decimal `json:"price_min"`
	PriceMax        *decimal.Decimal `json:"price_max"`
	MinOrderQty     int              `json:"min_order_qty"`
	Images          []string         `json:"images"`
	IsFeatured      bool             `json:"is_featured"`
	IsNew           bool             `json:"is_new"`
	IsActive        bool             `json:"is_active"`
	SortOrder       int              `json:"sort_order"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// ProductListResponse plain (unpaged) product list.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}

// PagedProductsResponse server-side page of products. NextPage is null when
// the last page has been reached; TotalCount counts every row matching the
// filter, independent of page size.
type PagedProductsResponse struct {
	Items      []ProductResponse `json:"items"`
	TotalCount int               `json:"total_count"`
	NextPage   *int              `json:"next_page"`
}

// BrowseResponse category browser view: products visible under the
// cumulative page window, plus paging state and the navigation tree.
type BrowseResponse struct {
	Items  []ProductResponse `json:"items"`
	Page   PageResponse      `json:"page"`
	Loaded int               `json:"loaded_pages"`
	Tree   []CategoryNode    `json:"tree"`
}
