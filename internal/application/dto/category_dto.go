package dto

import "time"

// CreateCategoryRequest input to create a category.
type CreateCategoryRequest struct {
	ParentID  string `json:"parent_id"`
	NameEN    string `json:"name_en" validate:"required,min=1,max=200"`
	NameZH    string `json:"name_zh" validate:"required,min=1,max=200"`
	Slug      string `json:"slug" validate:"required,min=1,max=100"`
	ImageURL  string `json:"image_url"`
	SortOrder int    `json:"sort_order"`
}

// UpdateCategoryRequest input to update a category (partial).
type UpdateCategoryRequest struct {
	ParentID  *string `json:"parent_id"`
	NameEN    *string `json:"name_en" validate:"omitempty,min=1,max=200"`
	NameZH    *string `json:"name_zh" validate:"omitempty,min=1,max=200"`
	Slug      *string `json:"slug" validate:"omitempty,min=1,max=100"`
	ImageURL  *string `json:"image_url"`
	SortOrder *int    `json:"sort_order"`
}

// CategoryResponse one category row.
type CategoryResponse struct {
	ID        string    `json:"id"`
	ParentID  string    `json:"parent_id,omitempty"`
	NameEN    string    `json:"name_en"`
	NameZH    string    `json:"name_zh"`
	Slug      string    `json:"slug"`
	ImageURL  string    `json:"image_url,omitempty"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryNode one node of the derived navigation tree.
type CategoryNode struct {
	CategoryResponse
	Children []CategoryNode `json:"children,omitempty"`
}

// CategoryTreeResponse the flat list plus the assembled hierarchy.
type CategoryTreeResponse struct {
	Items []CategoryResponse `json:"items"`
	Tree  []CategoryNode     `json:"tree"`
}
