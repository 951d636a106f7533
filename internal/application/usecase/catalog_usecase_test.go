package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinopos/storefront-api/internal/application/usecase"
	"github.com/sinopos/storefront-api/internal/domain/entity"
	"github.com/sinopos/storefront-api/internal/infrastructure/cache"
	"github.com/sinopos/storefront-api/pkg/config"
)

// fakeCategoryRepo serves a fixed category list.
type fakeCategoryRepo struct {
	cats []*entity.Category
}

func (r *fakeCategoryRepo) Create(*entity.Category) error { return nil }
func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, c := range r.cats {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCategoryRepo) GetBySlug(slug string) (*entity.Category, error) {
	for _, c := range r.cats {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCategoryRepo) Update(*entity.Category) error        { return nil }
func (r *fakeCategoryRepo) List() ([]*entity.Category, error)    { return r.cats, nil }
func (r *fakeCategoryRepo) Delete(string) error                  { return nil }
func (r *fakeCategoryRepo) ListByParent(parentID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.cats {
		if c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeProductRepo serves a fixed product list; ListPaged mirrors the SQL
// adapter's semantics (active rows, optional category filter, total count).
type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) GetBySlug(slug string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) List(onlyActive bool) ([]*entity.Product, error) {
	if !onlyActive {
		return r.products, nil
	}
	var out []*entity.Product
	for _, p := range r.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) ListFeatured() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.IsActive && p.IsFeatured {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) ListNew() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.IsActive && p.IsNew {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.IsActive && p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) ListPaged(categoryIDs []string, limit, offset int) ([]*entity.Product, int, error) {
	match := func(p *entity.Product) bool {
		if !p.IsActive {
			return false
		}
		if len(categoryIDs) == 0 {
			return true
		}
		for _, id := range categoryIDs {
			if p.CategoryID == id {
				return true
			}
		}
		return false
	}
	var all []*entity.Product
	for _, p := range r.products {
		if match(p) {
			all = append(all, p)
		}
	}
	total := len(all)
	if offset > len(all) {
		offset = len(all)
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}
func (r *fakeProductRepo) Delete(string) error { return nil }

// disabledCache builds a catalog cache with no Redis behind it.
func disabledCache() *cache.Catalog {
	return cache.New(config.RedisConfig{})
}

func storefrontFixture() (*fakeCategoryRepo, *fakeProductRepo) {
	cats := &fakeCategoryRepo{cats: []*entity.Category{
		{ID: "pos", Slug: "pos-terminals", NameEN: "POS Terminals", SortOrder: 1},
		{ID: "printers", ParentID: "pos", Slug: "printers", SortOrder: 1},
		{ID: "parts", Slug: "spare-parts", SortOrder: 2},
	}}
	products := &fakeProductRepo{}
	for i, tc := range []struct {
		id, cat string
		active  bool
	}{
		{"t1", "pos", true},
		{"t2", "pos", true},
		{"p1", "printers", true},
		{"p2", "printers", true},
		{"s1", "parts", true},
		{"hidden", "pos", false},
	} {
		products.products = append(products.products, &entity.Product{
			ID:         tc.id,
			Slug:       tc.id,
			CategoryID: tc.cat,
			IsActive:   tc.active,
			SortOrder:  i,
		})
	}
	return cats, products
}

func TestListCategories_FlatAndTree(t *testing.T) {
	cats, products := storefrontFixture()
	uc := usecase.NewCatalogUseCase(cats, products, disabledCache(), 12)

	out, err := uc.ListCategories()
	require.NoError(t, err)
	assert.Len(t, out.Items, 3)
	require.Len(t, out.Tree, 2, "only roots at the top level")
	assert.Equal(t, "pos", out.Tree[0].ID)
	require.Len(t, out.Tree[0].Children, 1)
	assert.Equal(t, "printers", out.Tree[0].Children[0].ID)
}

func TestBrowse_CategoryFilterIncludesDirectChildren(t *testing.T) {
	cats, products := storefrontFixture()
	uc := usecase.NewCatalogUseCase(cats, products, disabledCache(), 12)

	out, err := uc.Browse("pos", 1, 1)
	require.NoError(t, err)
	// t1, t2 (pos) + p1, p2 (printers, direct child); hidden is inactive.
	assert.Len(t, out.Items, 4)
	assert.Equal(t, 4, out.Page.TotalCount)
	assert.NotEmpty(t, out.Tree)
}

func TestBrowse_CumulativeWindow(t *testing.T) {
	cats, products := storefrontFixture()
	uc := usecase.NewCatalogUseCase(cats, products, disabledCache(), 2)

	// loaded=2 reproduces one "load more": pages 1 and 2 visible.
	out, err := uc.Browse("", 1, 2)
	require.NoError(t, err)
	assert.Len(t, out.Items, 4)
	assert.Equal(t, 1, out.Page.Page, "load more never moves the current page")
	assert.Equal(t, 2, out.Loaded)
	assert.Equal(t, 5, out.Page.TotalCount)
	assert.Equal(t, 3, out.Page.TotalPages)
}

func TestBrowse_GoToPage(t *testing.T) {
	cats, products := storefrontFixture()
	uc := usecase.NewCatalogUseCase(cats, products, disabledCache(), 2)

	out, err := uc.Browse("", 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Page.Page)
	assert.Equal(t, 3, out.Loaded, "jumping collapses the window to the target page")
	assert.Len(t, out.Items, 5, "pages 1..3 of 2 clamped to 5 products")

	// Out-of-range pages clamp instead of erroring.
	out, err = uc.Browse("", 99, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Page.Page)
}

func TestListProductsPaged_NextPage(t *testing.T) {
	cats, products := storefrontFixture()
	uc := usecase.NewCatalogUseCase(cats, products, disabledCache(), 2)

	out, err := uc.ListProductsPaged("", 1, 2)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 5, out.TotalCount)
	require.NotNil(t, out.NextPage)
	assert.Equal(t, 2, *out.NextPage)

	last, err := uc.ListProductsPaged("", 3, 2)
	require.NoError(t, err)
	assert.Len(t, last.Items, 1)
	assert.Nil(t, last.NextPage, "the last page has no successor")
}

func TestGetProductBySlug(t *testing.T) {
	cats, products := storefrontFixture()
	uc := usecase.NewCatalogUseCase(cats, products, disabledCache(), 12)

	out, err := uc.GetProductBySlug("t1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "t1", out.ID)

	missing, err := uc.GetProductBySlug("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListFeaturedAndNew(t *testing.T) {
	cats, _ := storefrontFixture()
	products := &fakeProductRepo{products: []*entity.Product{
		{ID: "f1", IsActive: true, IsFeatured: true},
		{ID: "n1", IsActive: true, IsNew: true},
		{ID: "plain", IsActive: true},
	}}
	uc := usecase.NewCatalogUseCase(cats, products, disabledCache(), 12)

	featured, err := uc.ListFeaturedProducts()
	require.NoError(t, err)
	require.Len(t, featured.Items, 1)
	assert.Equal(t, "f1", featured.Items[0].ID)

	fresh, err := uc.ListNewProducts()
	require.NoError(t, err)
	require.Len(t, fresh.Items, 1)
	assert.Equal(t, "n1", fresh.Items[0].ID)
}
