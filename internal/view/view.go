// Package view derives the read views of the plugin catalogue: the featured
// selection, the filtered and sorted list, and its pages. Every function is
// pure over the snapshot it is given.
package view

import (
	"sort"
	"strings"
	"time"

	"github.com/minecraft1024a/mofox-market/internal/catalog"
)

const (
	// PageSize is the number of plugins per page
	PageSize = 12
	// FeaturedNewest is the number of newest plugins always featured
	FeaturedNewest = 2
	// FeaturedRandom is the number of randomly drawn featured plugins
	FeaturedRandom = 2
)

// SortOrder selects the createdAt ordering of the filtered list
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// Rand is the random source used for the featured draw
type Rand interface {
	IntN(n int) int
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CreatedTime parses a createdAt value. Unparseable values return the zero
// time and therefore sort as the oldest.
func CreatedTime(createdAt string) time.Time {
	s := strings.TrimSpace(createdAt)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SortByCreated sorts plugins in place by createdAt, newest first when
// desc is set. The sort is stable.
func SortByCreated(plugins []catalog.Plugin, desc bool) {
	times := make(map[string]time.Time, len(plugins))
	at := func(p catalog.Plugin) time.Time {
		t, ok := times[p.CreatedAt]
		if !ok {
			t = CreatedTime(p.CreatedAt)
			times[p.CreatedAt] = t
		}
		return t
	}

	sort.SliceStable(plugins, func(i, j int) bool {
		if desc {
			return at(plugins[i]).After(at(plugins[j]))
		}
		return at(plugins[i]).Before(at(plugins[j]))
	})
}

// Featured returns the featured selection. With four plugins or fewer all
// are returned. Otherwise the two newest come first, followed by two drawn
// uniformly without replacement from the rest, in draw order.
func Featured(plugins []catalog.Plugin, rng Rand) []catalog.Plugin {
	all := make([]catalog.Plugin, len(plugins))
	copy(all, plugins)

	if len(all) <= FeaturedNewest+FeaturedRandom {
		return all
	}

	SortByCreated(all, true)

	result := make([]catalog.Plugin, 0, FeaturedNewest+FeaturedRandom)
	result = append(result, all[:FeaturedNewest]...)

	remaining := all[FeaturedNewest:]
	for i := 0; i < FeaturedRandom && len(remaining) > 0; i++ {
		idx := rng.IntN(len(remaining))
		result = append(result, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	return result
}

// Matches reports whether a plugin's name, description or author contains
// query, ignoring case. An empty query matches everything.
func Matches(p catalog.Plugin, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Author), q)
}

// Filter returns the plugins matching query, ordered by order and then
// stably partitioned so that plugins with a repository link come first.
func Filter(plugins []catalog.Plugin, query string, order SortOrder) []catalog.Plugin {
	filtered := make([]catalog.Plugin, 0, len(plugins))
	for _, p := range plugins {
		if Matches(p, query) {
			filtered = append(filtered, p)
		}
	}

	switch order {
	case SortNewest:
		SortByCreated(filtered, true)
	case SortOldest:
		SortByCreated(filtered, false)
	}

	return partitionByRepository(filtered)
}

func partitionByRepository(plugins []catalog.Plugin) []catalog.Plugin {
	out := make([]catalog.Plugin, 0, len(plugins))
	for _, p := range plugins {
		if p.HasRepository() {
			out = append(out, p)
		}
	}
	for _, p := range plugins {
		if !p.HasRepository() {
			out = append(out, p)
		}
	}
	return out
}

// TotalPages returns the number of pages needed for n plugins
func TotalPages(n int) int {
	return (n + PageSize - 1) / PageSize
}

// Paginate returns page p (1-indexed) of plugins. Pages past the end are empty.
func Paginate(plugins []catalog.Plugin, page int) []catalog.Plugin {
	if page < 1 {
		return []catalog.Plugin{}
	}
	start := (page - 1) * PageSize
	if start >= len(plugins) {
		return []catalog.Plugin{}
	}
	end := min(start+PageSize, len(plugins))
	return plugins[start:end]
}
