package catalog

import (
	"sync"

	"github.com/sinopos/storefront-api/internal/domain/entity"
)

// Paginator delivers a filtered product list in fixed-size pages, supporting
// both explicit page navigation and cumulative "load more".
//
// CurrentPage (the navigation target) and LoadedPages (how many pages are
// materialized for display) are tracked independently: LoadMore grows
// LoadedPages without moving CurrentPage, while GoToPage collapses the
// cumulative window to exactly the target page.
type Paginator struct {
	mu       sync.Mutex
	pageSize int
	filtered []*entity.Product
	current  int
	loaded   int
	inFlight bool
}

// NewPaginator creates a paginator over an already-filtered product list.
// Both counters start at page 1.
func NewPaginator(filtered []*entity.Product, pageSize int) *Paginator {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Paginator{
		pageSize: pageSize,
		filtered: filtered,
		current:  1,
		loaded:   1,
	}
}

// SetFiltered replaces the product list (e.g. the category selection changed)
// and resets both counters to 1.
func (p *Paginator) SetFiltered(filtered []*entity.Product) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.filtered = filtered
	p.current = 1
	p.loaded = 1
}

// PageSize returns the fixed page size.
func (p *Paginator) PageSize() int { return p.pageSize }

// CurrentPage returns the explicit navigation target.
func (p *Paginator) CurrentPage() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// LoadedPages returns how many pages are materialized for display.
func (p *Paginator) LoadedPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

// TotalCount returns the number of products matching the filter,
// independent of page size.
func (p *Paginator) TotalCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.filtered)
}

// TotalPages returns ceil(filteredCount / pageSize).
func (p *Paginator) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalPagesLocked()
}

func (p *Paginator) totalPagesLocked() int {
	return (len(p.filtered) + p.pageSize - 1) / p.pageSize
}

// Displayed returns the products visible under the cumulative window:
// filtered[0 : loadedPages*pageSize], clamped to the filtered length.
func (p *Paginator) Displayed() []*entity.Product {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := p.loaded * p.pageSize
	if n > len(p.filtered) {
		n = len(p.filtered)
	}
	out := make([]*entity.Product, n)
	copy(out, p.filtered[:n])
	return out
}

// GoToPage jumps to page n, clamped to [1, totalPages]. Jumping resets the
// cumulative window to exactly that page: currentPage = loadedPages = n.
func (p *Paginator) GoToPage(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := p.totalPagesLocked()
	if total < 1 {
		total = 1
	}
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	p.current = n
	p.loaded = n
}

// LoadMore materializes the next page. It is a no-op when every page is
// already loaded, and re-entrant-safe: a second invocation while fetch is in
// flight returns false without touching the counters. fetch may be nil for a
// purely in-memory list; when set it runs outside the lock and a non-nil
// error aborts the increment.
func (p *Paginator) LoadMore(fetch func(nextPage int) error) (bool, error) {
	p.mu.Lock()
	if p.inFlight || p.loaded >= p.totalPagesLocked() {
		p.mu.Unlock()
		return false, nil
	}
	p.inFlight = true
	next := p.loaded + 1
	p.mu.Unlock()

	var err error
	if fetch != nil {
		err = fetch(next)
	}

	p.mu.Lock()
	p.inFlight = false
	if err != nil {
		p.mu.Unlock()
		return false, err
	}
	p.loaded = next
	p.mu.Unlock()
	return true, nil
}
