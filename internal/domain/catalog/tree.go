// Package catalog holds the pure in-memory catalog logic: assembling the
// category hierarchy from the flat list and slicing products into pages.
// Inputs are treated as immutable snapshots; every function returns new
// derived slices and never mutates its arguments.
package catalog

import (
	"sort"

	"github.com/sinopos/storefront-api/internal/domain/entity"
)

// MaxTreeDepth caps tree construction. Combined with the per-traversal
// visited set it guarantees termination even if the data contains a parent
// cycle (which the store does not prevent).
const MaxTreeDepth = 32

// Node is one node of the derived category tree. Expand/collapse state is
// deliberately not part of the node; it belongs to whoever renders the tree.
type Node struct {
	Category *entity.Category
	Children []*Node
}

// RootsOf returns the categories with no parent, sort order ascending.
// Ties keep the original fetch order (stable sort).
func RootsOf(categories []*entity.Category) []*entity.Category {
	var roots []*entity.Category
	for _, c := range categories {
		if c.IsRoot() {
			roots = append(roots, c)
		}
	}
	sortByOrder(roots)
	return roots
}

// ChildrenOf returns the categories whose parent is parentID, sort order
// ascending, ties by fetch order. Re-filters the full list on every call;
// quadratic over a full traversal, which is fine at catalog scale (tens of
// categories, not thousands).
func ChildrenOf(categories []*entity.Category, parentID string) []*entity.Category {
	var children []*entity.Category
	for _, c := range categories {
		if c.ParentID == parentID && c.ID != parentID {
			children = append(children, c)
		}
	}
	sortByOrder(children)
	return children
}

// BuildTree assembles the navigable hierarchy from the flat list. A category
// already placed in the tree is never descended into again, and depth is
// capped at MaxTreeDepth, so cyclic parent links terminate cleanly.
func BuildTree(categories []*entity.Category) []*Node {
	visited := make(map[string]bool, len(categories))
	var build func(parent *entity.Category, depth int) []*Node
	build = func(parent *entity.Category, depth int) []*Node {
		if depth >= MaxTreeDepth {
			return nil
		}
		var level []*entity.Category
		if parent == nil {
			level = RootsOf(categories)
		} else {
			level = ChildrenOf(categories, parent.ID)
		}
		var nodes []*Node
		for _, c := range level {
			if visited[c.ID] {
				continue
			}
			visited[c.ID] = true
			nodes = append(nodes, &Node{
				Category: c,
				Children: build(c, depth+1),
			})
		}
		return nodes
	}
	roots := build(nil, 0)

	// A pure cycle (every member has a parent) is unreachable from the roots.
	// Surface its members as extra top-level nodes instead of dropping them.
	for _, c := range categories {
		if !visited[c.ID] {
			visited[c.ID] = true
			nodes := build(c, 1)
			roots = append(roots, &Node{Category: c, Children: nodes})
		}
	}
	return roots
}

// EffectiveCategoryIDs computes the filtering key for a category selection:
// the selected id plus the ids of its direct children. One level only — the
// storefront treats deeper descendants as reachable via the child categories
// themselves. A nil return means "no filter" (all products pass).
func EffectiveCategoryIDs(selectedID string, categories []*entity.Category) map[string]struct{} {
	if selectedID == "" {
		return nil
	}
	ids := map[string]struct{}{selectedID: {}}
	for _, c := range categories {
		if c.ParentID == selectedID {
			ids[c.ID] = struct{}{}
		}
	}
	return ids
}

// FilterProducts returns the products whose category id is in ids, preserving
// the input order. A nil ids set means no filter: the full list is returned
// (as a fresh slice).
func FilterProducts(products []*entity.Product, ids map[string]struct{}) []*entity.Product {
	if ids == nil {
		out := make([]*entity.Product, len(products))
		copy(out, products)
		return out
	}
	var out []*entity.Product
	for _, p := range products {
		if _, ok := ids[p.CategoryID]; ok {
			out = append(out, p)
		}
	}
	return out
}

func sortByOrder(list []*entity.Category) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].SortOrder < list[j].SortOrder
	})
}
