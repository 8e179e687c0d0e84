package cmd

import (
	"fmt"

	"github.com/minecraft1024a/mofox-market/internal/i18n"
	"github.com/minecraft1024a/mofox-market/internal/search"
	"github.com/spf13/cobra"
)

var searchFuzzy bool

var pluginSearchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search for plugins",
	Long: `Search for plugins by name, description or author.

With --fuzzy, fuzzy matching also looks through tags, keywords and
categories, and results are ranked by match quality.

Example:
  mofox-market search music
  mofox-market search --fuzzy imgen`,
	Args: cobra.ExactArgs(1),
	RunE: runPluginSearch,
}

func init() {
	pluginSearchCmd.Flags().BoolVarP(&searchFuzzy, "fuzzy", "f", false, "use fuzzy matching")
}

func runPluginSearch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	keyword := args[0]

	s := newSession(cmd)
	if err := s.load(cmd.Context()); err != nil {
		return err
	}

	var results []search.SearchResult
	if searchFuzzy {
		results = search.FuzzySearch(s.store.Plugins(), keyword)
	} else {
		results = search.SimpleSearch(s.store.Plugins(), keyword)
	}

	if len(results) == 0 {
		fmt.Println(i18n.T("NoResults", map[string]any{"Keyword": keyword}))
		return nil
	}

	// Print results
	fmt.Println(i18n.T("SearchResults", map[string]any{"Count": len(results)}, len(results)))
	fmt.Println()

	for _, r := range results {
		printPluginLine(r.Plugin)
		fmt.Println()
	}

	return nil
}
