package view

import "github.com/minecraft1024a/mofox-market/internal/catalog"

// Browser holds the search, sort and page state of one consumer of the
// catalogue. Each consumer owns its Browser while sharing the Store.
type Browser struct {
	store *catalog.Store
	query string
	order SortOrder
	page  int
}

// NewBrowser creates a browser over store, sorted newest first on page 1
func NewBrowser(store *catalog.Store) *Browser {
	return &Browser{
		store: store,
		order: SortNewest,
		page:  1,
	}
}

// SetSearchQuery sets the search text
func (b *Browser) SetSearchQuery(query string) {
	b.query = query
}

// SearchQuery returns the search text
func (b *Browser) SearchQuery() string {
	return b.query
}

// SetSortOrder sets the createdAt ordering
func (b *Browser) SetSortOrder(order SortOrder) {
	b.order = order
}

// SortOrder returns the current ordering
func (b *Browser) SortOrder() SortOrder {
	return b.order
}

// ToggleSortOrder switches between newest and oldest first
func (b *Browser) ToggleSortOrder() {
	if b.order == SortNewest {
		b.order = SortOldest
		return
	}
	b.order = SortNewest
}

// CurrentPage returns the 1-indexed current page
func (b *Browser) CurrentPage() int {
	return b.page
}

// GoToPage moves to page if it lies within [1, TotalPages]. Requests
// outside that range are ignored. It reports whether the page changed.
func (b *Browser) GoToPage(page int) bool {
	if page < 1 || page > b.TotalPages() {
		return false
	}
	changed := b.page != page
	b.page = page
	return changed
}

// NextPage moves one page forward if possible
func (b *Browser) NextPage() bool {
	return b.GoToPage(b.page + 1)
}

// PrevPage moves one page back if possible
func (b *Browser) PrevPage() bool {
	return b.GoToPage(b.page - 1)
}

// Filtered returns the filtered and sorted list
func (b *Browser) Filtered() []catalog.Plugin {
	return Filter(b.store.Plugins(), b.query, b.order)
}

// Page returns the plugins on the current page
func (b *Browser) Page() []catalog.Plugin {
	return Paginate(b.Filtered(), b.page)
}

// TotalPages returns the page count of the filtered list
func (b *Browser) TotalPages() int {
	return TotalPages(len(b.Filtered()))
}
