package catalog_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinopos/storefront-api/internal/domain/catalog"
	"github.com/sinopos/storefront-api/internal/domain/entity"
)

func products(n int) []*entity.Product {
	out := make([]*entity.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &entity.Product{ID: fmt.Sprintf("p%d", i+1)})
	}
	return out
}

func TestPaginator_InitialState(t *testing.T) {
	p := catalog.NewPaginator(products(25), 12)
	assert.Equal(t, 1, p.CurrentPage())
	assert.Equal(t, 1, p.LoadedPages())
	assert.Equal(t, 25, p.TotalCount())
	assert.Equal(t, 3, p.TotalPages())
	assert.Len(t, p.Displayed(), 12)
}

func TestPaginator_DisplayedClampsToTotal(t *testing.T) {
	p := catalog.NewPaginator(products(5), 12)
	assert.Equal(t, 1, p.TotalPages())
	assert.Len(t, p.Displayed(), 5, "a short list never pads the page")

	empty := catalog.NewPaginator(nil, 12)
	assert.Equal(t, 0, empty.TotalPages())
	assert.Empty(t, empty.Displayed())
}

func TestPaginator_LoadMoreGrowsWindow(t *testing.T) {
	// 5 products, page size 2 -> pages of 2, 2, 1.
	p := catalog.NewPaginator(products(5), 2)

	more, err := p.LoadMore(nil)
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, 2, p.LoadedPages())
	assert.Equal(t, 1, p.CurrentPage(), "load more never moves the current page")
	assert.Len(t, p.Displayed(), 4)

	more, err = p.LoadMore(nil)
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, 3, p.LoadedPages())
	assert.Len(t, p.Displayed(), 5)

	// Every page is loaded: strict no-op.
	more, err = p.LoadMore(nil)
	require.NoError(t, err)
	assert.False(t, more)
	assert.Equal(t, 3, p.LoadedPages())
}

func TestPaginator_LoadMoreErrorAbortsIncrement(t *testing.T) {
	p := catalog.NewPaginator(products(10), 2)
	boom := fmt.Errorf("store unavailable")

	more, err := p.LoadMore(func(nextPage int) error {
		assert.Equal(t, 2, nextPage)
		return boom
	})
	assert.False(t, more)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, p.LoadedPages(), "a failed fetch leaves the window untouched")

	// The paginator recovers on the next attempt.
	more, err = p.LoadMore(nil)
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, 2, p.LoadedPages())
}

func TestPaginator_LoadMoreInFlightGuard(t *testing.T) {
	p := catalog.NewPaginator(products(10), 2)

	started := make(chan struct{})
	release := make(chan struct{})
	firstDone := make(chan struct{})

	go func() {
		defer close(firstDone)
		more, err := p.LoadMore(func(int) error {
			close(started)
			<-release
			return nil
		})
		assert.True(t, more)
		assert.NoError(t, err)
	}()

	<-started
	// Second call while the first fetch hangs: provable no-op.
	more, err := p.LoadMore(nil)
	assert.False(t, more)
	assert.NoError(t, err)
	assert.Equal(t, 1, p.LoadedPages())

	close(release)
	<-firstDone
	assert.Equal(t, 2, p.LoadedPages(), "only the first call advanced the window")
}

func TestPaginator_ConcurrentLoadMore(t *testing.T) {
	p := catalog.NewPaginator(products(100), 2)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.LoadMore(nil)
		}()
	}
	wg.Wait()

	loaded := p.LoadedPages()
	assert.GreaterOrEqual(t, loaded, 2)
	assert.LessOrEqual(t, loaded, 21)
	assert.Len(t, p.Displayed(), loaded*2)
}

func TestPaginator_GoToPageCollapsesWindow(t *testing.T) {
	p := catalog.NewPaginator(products(10), 2)
	p.LoadMore(nil)
	p.LoadMore(nil)
	require.Equal(t, 3, p.LoadedPages())

	p.GoToPage(2)
	assert.Equal(t, 2, p.CurrentPage())
	assert.Equal(t, 2, p.LoadedPages(), "jumping collapses the cumulative window")
	assert.Len(t, p.Displayed(), 4)
}

func TestPaginator_GoToPageClamps(t *testing.T) {
	p := catalog.NewPaginator(products(5), 2)

	p.GoToPage(99)
	assert.Equal(t, 3, p.CurrentPage())

	p.GoToPage(0)
	assert.Equal(t, 1, p.CurrentPage())

	p.GoToPage(-7)
	assert.Equal(t, 1, p.CurrentPage())

	empty := catalog.NewPaginator(nil, 2)
	empty.GoToPage(4)
	assert.Equal(t, 1, empty.CurrentPage(), "an empty list pins the page at 1")
}

func TestPaginator_GoToPageIdempotent(t *testing.T) {
	p := catalog.NewPaginator(products(10), 2)
	p.GoToPage(3)
	p.GoToPage(3)
	assert.Equal(t, 3, p.CurrentPage())
	assert.Equal(t, 3, p.LoadedPages())
	assert.Len(t, p.Displayed(), 6)
}

func TestPaginator_SetFilteredResets(t *testing.T) {
	p := catalog.NewPaginator(products(10), 2)
	p.GoToPage(4)

	p.SetFiltered(products(3))
	assert.Equal(t, 1, p.CurrentPage())
	assert.Equal(t, 1, p.LoadedPages())
	assert.Equal(t, 3, p.TotalCount())
	assert.Len(t, p.Displayed(), 2)
}

// Page size 2 over p1..p5: one load-more then a jump back to page 1.
func TestPaginator_LoadMoreThenJumpBack(t *testing.T) {
	p := catalog.NewPaginator(products(5), 2)

	got := p.Displayed()
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p2", got[1].ID)

	more, err := p.LoadMore(nil)
	require.NoError(t, err)
	require.True(t, more)
	got = p.Displayed()
	require.Len(t, got, 4)
	assert.Equal(t, "p4", got[3].ID)

	p.GoToPage(1)
	assert.Equal(t, 1, p.LoadedPages())
	got = p.Displayed()
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p2", got[1].ID)
}

func TestPaginator_DisplayedIsACopy(t *testing.T) {
	list := products(4)
	p := catalog.NewPaginator(list, 4)
	got := p.Displayed()
	got[0] = &entity.Product{ID: "mutated"}
	assert.Equal(t, "p1", p.Displayed()[0].ID)
}
