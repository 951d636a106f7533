package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinopos/storefront-api/internal/domain/catalog"
	"github.com/sinopos/storefront-api/internal/domain/entity"
)

func cat(id, parentID string, order int) *entity.Category {
	return &entity.Category{ID: id, ParentID: parentID, NameEN: id, SortOrder: order}
}

func prod(id, categoryID string) *entity.Product {
	return &entity.Product{ID: id, CategoryID: categoryID, NameEN: id}
}

func ids(list []*entity.Category) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.ID)
	}
	return out
}

func TestRootsOf_SortedBySortOrder(t *testing.T) {
	cats := []*entity.Category{
		cat("b", "", 2),
		cat("a", "", 1),
		cat("child", "a", 0),
		cat("c", "", 3),
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids(catalog.RootsOf(cats)))
}

func TestRootsOf_StableOnTies(t *testing.T) {
	cats := []*entity.Category{
		cat("first", "", 1),
		cat("second", "", 1),
		cat("third", "", 1),
	}
	// Same sort order keeps fetch order.
	assert.Equal(t, []string{"first", "second", "third"}, ids(catalog.RootsOf(cats)))
}

func TestChildrenOf_FiltersAndSorts(t *testing.T) {
	cats := []*entity.Category{
		cat("root", "", 0),
		cat("z", "root", 2),
		cat("y", "root", 1),
		cat("other", "elsewhere", 0),
	}
	assert.Equal(t, []string{"y", "z"}, ids(catalog.ChildrenOf(cats, "root")))
	assert.Empty(t, catalog.ChildrenOf(cats, "leafless"))
}

func TestChildrenOf_SelfParentExcluded(t *testing.T) {
	cats := []*entity.Category{cat("loop", "loop", 0)}
	assert.Empty(t, catalog.ChildrenOf(cats, "loop"))
}

func TestBuildTree_Nested(t *testing.T) {
	cats := []*entity.Category{
		cat("hardware", "", 1),
		cat("accessories", "", 2),
		cat("terminals", "hardware", 1),
		cat("scanners", "hardware", 2),
		cat("handheld", "scanners", 1),
	}
	tree := catalog.BuildTree(cats)
	require.Len(t, tree, 2)
	assert.Equal(t, "hardware", tree[0].Category.ID)
	assert.Equal(t, "accessories", tree[1].Category.ID)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "terminals", tree[0].Children[0].Category.ID)
	assert.Equal(t, "scanners", tree[0].Children[1].Category.ID)
	require.Len(t, tree[0].Children[1].Children, 1)
	assert.Equal(t, "handheld", tree[0].Children[1].Children[0].Category.ID)
}

func TestBuildTree_TerminatesOnCycle(t *testing.T) {
	// a <-> b reference each other; neither is a root.
	cats := []*entity.Category{
		cat("root", "", 0),
		cat("a", "b", 1),
		cat("b", "a", 2),
	}
	tree := catalog.BuildTree(cats)

	// The cycle members are surfaced instead of silently dropped.
	seen := map[string]bool{}
	var walk func(nodes []*catalog.Node)
	walk = func(nodes []*catalog.Node) {
		for _, n := range nodes {
			require.False(t, seen[n.Category.ID], "category %s placed twice", n.Category.ID)
			seen[n.Category.ID] = true
			walk(n.Children)
		}
	}
	walk(tree)
	assert.Len(t, seen, 3, "every category appears exactly once")
}

func TestBuildTree_SelfParent(t *testing.T) {
	cats := []*entity.Category{cat("loop", "loop", 0)}
	tree := catalog.BuildTree(cats)
	require.Len(t, tree, 1)
	assert.Equal(t, "loop", tree[0].Category.ID)
	assert.Empty(t, tree[0].Children)
}

func TestEffectiveCategoryIDs_DirectChildrenOnly(t *testing.T) {
	cats := []*entity.Category{
		cat("hardware", "", 0),
		cat("terminals", "hardware", 0),
		cat("scanners", "hardware", 1),
		cat("handheld", "scanners", 0), // grandchild, excluded
	}
	got := catalog.EffectiveCategoryIDs("hardware", cats)
	require.NotNil(t, got)
	assert.Len(t, got, 3)
	assert.Contains(t, got, "hardware")
	assert.Contains(t, got, "terminals")
	assert.Contains(t, got, "scanners")
	assert.NotContains(t, got, "handheld")
}

func TestEffectiveCategoryIDs_EmptySelectionMeansNoFilter(t *testing.T) {
	assert.Nil(t, catalog.EffectiveCategoryIDs("", []*entity.Category{cat("x", "", 0)}))
}

func TestFilterProducts(t *testing.T) {
	products := []*entity.Product{
		prod("p1", "terminals"),
		prod("p2", "scanners"),
		prod("p3", "accessories"),
		prod("p4", "terminals"),
	}
	got := catalog.FilterProducts(products, map[string]struct{}{"terminals": {}})
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p4", got[1].ID, "input order is preserved")

	all := catalog.FilterProducts(products, nil)
	assert.Len(t, all, 4, "nil set means no filter")

	none := catalog.FilterProducts(products, map[string]struct{}{"elsewhere": {}})
	assert.Empty(t, none)
}

// End-to-end: two root categories with children, products spread across
// them, the browse filter follows the one-level expansion rule.
func TestCategoryBrowseScenario(t *testing.T) {
	cats := []*entity.Category{
		cat("pos", "", 1),
		cat("printers", "pos", 1),
		cat("drawers", "pos", 2),
		cat("parts", "", 2),
		cat("cables", "parts", 1),
	}
	products := []*entity.Product{
		prod("a", "printers"),
		prod("b", "cables"),
		prod("c", "pos"),
		prod("d", "drawers"),
	}

	got := catalog.FilterProducts(products, catalog.EffectiveCategoryIDs("pos", cats))
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "c", "d"}, []string{got[0].ID, got[1].ID, got[2].ID})

	got = catalog.FilterProducts(products, catalog.EffectiveCategoryIDs("parts", cats))
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

// Mirror of the storefront's category pages: a two-level hierarchy plus an
// uncategorized product.
func TestCategoryFilterWithUncategorizedProduct(t *testing.T) {
	cats := []*entity.Category{
		cat("1", "", 1),  // slug "pos"
		cat("2", "1", 1), // slug "android"
	}
	products := []*entity.Product{
		prod("a", "2"),
		prod("b", "1"),
		prod("c", ""), // uncategorized
	}

	got := catalog.FilterProducts(products, catalog.EffectiveCategoryIDs("1", cats))
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)

	all := catalog.FilterProducts(products, catalog.EffectiveCategoryIDs("", cats))
	require.Len(t, all, 3, "no selection keeps uncategorized products")
	assert.Equal(t, "c", all[2].ID)
}
