package view

import (
	"context"
	"fmt"
	"testing"

	"github.com/minecraft1024a/mofox-market/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource []catalog.RawRecord

func (s staticSource) Fetch(_ context.Context, _ catalog.ReportFunc) ([]catalog.RawRecord, error) {
	return s, nil
}

func loadedStore(t *testing.T, n int) *catalog.Store {
	t.Helper()

	records := make(staticSource, n)
	for i := range records {
		records[i] = catalog.RawRecord{
			ID:        catalog.Text(fmt.Sprint(i)),
			Manifest:  &catalog.RawManifest{Name: catalog.Text(fmt.Sprintf("plugin-%02d", i))},
			CreatedAt: catalog.Text(fmt.Sprintf("2024-01-%02d", i+1)),
		}
	}
	records[0].Manifest.Name = "special"

	store := catalog.NewStore(records, catalog.WithScorer(catalog.FixedScorer{}))
	require.NoError(t, store.Load(context.Background()))
	return store
}

func TestBrowser_Defaults(t *testing.T) {
	t.Parallel()

	b := NewBrowser(loadedStore(t, 25))

	assert.Equal(t, 1, b.CurrentPage())
	assert.Equal(t, SortNewest, b.SortOrder())
	assert.Empty(t, b.SearchQuery())
	assert.Equal(t, 3, b.TotalPages())
	assert.Len(t, b.Page(), 12)
	assert.Equal(t, "24", b.Page()[0].ID)
}

func TestBrowser_GoToPage(t *testing.T) {
	t.Parallel()

	b := NewBrowser(loadedStore(t, 25))

	assert.True(t, b.GoToPage(3))
	assert.Equal(t, 3, b.CurrentPage())
	assert.Len(t, b.Page(), 1)

	assert.False(t, b.GoToPage(4))
	assert.False(t, b.GoToPage(0))
	assert.False(t, b.GoToPage(-1))
	assert.Equal(t, 3, b.CurrentPage())

	assert.False(t, b.GoToPage(3))
	assert.False(t, b.NextPage())
	assert.True(t, b.PrevPage())
	assert.Equal(t, 2, b.CurrentPage())
}

func TestBrowser_EmptyStoreIgnoresPages(t *testing.T) {
	t.Parallel()

	store := catalog.NewStore(staticSource{})
	require.NoError(t, store.Load(context.Background()))
	b := NewBrowser(store)

	assert.Zero(t, b.TotalPages())
	assert.False(t, b.GoToPage(1))
	assert.Equal(t, 1, b.CurrentPage())
	assert.Empty(t, b.Page())
}

func TestBrowser_SearchKeepsPage(t *testing.T) {
	t.Parallel()

	b := NewBrowser(loadedStore(t, 25))
	require.True(t, b.GoToPage(2))

	b.SetSearchQuery("SPECIAL")
	assert.Equal(t, "SPECIAL", b.SearchQuery())
	assert.Len(t, b.Filtered(), 1)
	assert.Equal(t, 1, b.TotalPages())
	// the page is not reset by a search change
	assert.Equal(t, 2, b.CurrentPage())
	assert.Empty(t, b.Page())

	require.True(t, b.GoToPage(1))
	assert.Equal(t, "0", b.Page()[0].ID)
}

func TestBrowser_ToggleSortOrder(t *testing.T) {
	t.Parallel()

	b := NewBrowser(loadedStore(t, 5))

	b.ToggleSortOrder()
	assert.Equal(t, SortOldest, b.SortOrder())
	assert.Equal(t, "0", b.Page()[0].ID)

	b.ToggleSortOrder()
	assert.Equal(t, SortNewest, b.SortOrder())
	assert.Equal(t, "4", b.Page()[0].ID)

	b.SetSortOrder(SortOldest)
	assert.Equal(t, SortOldest, b.SortOrder())
}

func TestBrowser_IndependentState(t *testing.T) {
	t.Parallel()

	store := loadedStore(t, 25)
	a := NewBrowser(store)
	b := NewBrowser(store)

	a.SetSearchQuery("special")
	require.True(t, b.GoToPage(3))

	assert.Equal(t, 1, a.CurrentPage())
	assert.Empty(t, b.SearchQuery())
	assert.Len(t, b.Filtered(), 25)
}
