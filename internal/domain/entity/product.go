package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a POS hardware item in the catalog. Names and descriptions are
// bilingual (en/zh). The price range is open-ended: either bound may be null,
// in which case the storefront shows "contact for price".
type Product struct {
	ID              string
	CategoryID      string // empty when uncategorized
	NameEN          string
	NameZH          string
	DescriptionEN   string
	DescriptionZH   string
	RichDescription json.RawMessage // optional structured blocks for the detail page
	Slug            string
	PriceMin        decimal.NullDecimal
	PriceMax        decimal.NullDecimal
	MinOrderQty     int
	Images          []string
	IsFeatured      bool
	IsNew           bool
	IsActive        bool
	SortOrder       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasPrice reports whether at least one price bound is set.
func (p *Product) HasPrice() bool {
	return p.PriceMin.Valid || p.PriceMax.Valid
}
