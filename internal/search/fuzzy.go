package search

import (
	"sort"
	"strings"

	"github.com/minecraft1024a/mofox-market/internal/catalog"
	"github.com/minecraft1024a/mofox-market/internal/view"
	"github.com/sahilm/fuzzy"
)

// SearchResult represents a search result
type SearchResult struct {
	Plugin catalog.Plugin
	Score  int // Higher is better
}

// PluginSearchable wraps plugins for fuzzy searching
type PluginSearchable []catalog.Plugin

// String returns the searchable string for a plugin
func (p PluginSearchable) String(i int) string {
	return SearchText(p[i])
}

// Len returns the number of plugins
func (p PluginSearchable) Len() int {
	return len(p)
}

// SearchText returns the lower-cased text a plugin is matched against
func SearchText(plugin catalog.Plugin) string {
	parts := []string{plugin.Name}

	if plugin.Description != "" {
		parts = append(parts, plugin.Description)
	}
	if plugin.Author != "" {
		parts = append(parts, plugin.Author)
	}

	parts = append(parts, plugin.Tags...)
	parts = append(parts, plugin.Keywords...)
	parts = append(parts, plugin.Categories...)

	return strings.ToLower(strings.Join(parts, " "))
}

// FuzzySearch performs a fuzzy search across all plugins
func FuzzySearch(plugins []catalog.Plugin, query string) []SearchResult {
	query = strings.ToLower(query)
	if query == "" {
		return SimpleSearch(plugins, query)
	}

	matches := fuzzy.FindFrom(query, PluginSearchable(plugins))

	results := make([]SearchResult, 0, len(matches))
	for _, match := range matches {
		results = append(results, SearchResult{
			Plugin: plugins[match.Index],
			Score:  match.Score,
		})
	}

	// Sort by score (descending)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// SimpleSearch performs a case-insensitive substring search over name,
// description and author. Results follow the list order: newest first,
// plugins with a repository link ahead of the rest.
func SimpleSearch(plugins []catalog.Plugin, query string) []SearchResult {
	var results []SearchResult
	for _, plugin := range view.Filter(plugins, query, view.SortNewest) {
		results = append(results, SearchResult{
			Plugin: plugin,
			Score:  100, // Default score for simple matches
		})
	}
	return results
}
