package entity

import "time"

// Category is one node of the storefront navigation hierarchy.
// The hierarchy is stored flat with a self-referencing parent link; the tree
// shape is derived on demand (see internal/domain/catalog).
type Category struct {
	ID        string
	ParentID  string // empty when root
	NameEN    string
	NameZH    string
	Slug      string // unique across all categories
	ImageURL  string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentID == ""
}
