package cmd

import (
	"fmt"

	"github.com/minecraft1024a/mofox-market/internal/i18n"
	"github.com/minecraft1024a/mofox-market/internal/view"
	"github.com/spf13/cobra"
)

var (
	listPage  int
	listSort  string
	listQuery string
)

var pluginListCmd = &cobra.Command{
	Use:   "list",
	Short: "List plugins page by page",
	Long: `List plugins from the catalogue, twelve per page.

Plugins with a repository link are listed first.

Example:
  mofox-market list
  mofox-market list --page 2 --sort oldest
  mofox-market list --query music`,
	Args: cobra.NoArgs,
	RunE: runPluginList,
}

func init() {
	pluginListCmd.Flags().IntVarP(&listPage, "page", "p", 1, "page number")
	pluginListCmd.Flags().StringVar(&listSort, "sort", string(view.SortNewest), "sort order (newest or oldest)")
	pluginListCmd.Flags().StringVarP(&listQuery, "query", "q", "", "filter by name, description or author")
}

func runPluginList(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	order := view.SortOrder(listSort)
	if order != view.SortNewest && order != view.SortOldest {
		return fmt.Errorf("invalid sort order '%s'. Valid values: newest, oldest", listSort)
	}

	s := newSession(cmd)
	if err := s.load(cmd.Context()); err != nil {
		return err
	}

	browser := view.NewBrowser(s.store)
	browser.SetSearchQuery(listQuery)
	browser.SetSortOrder(order)

	filtered := browser.Filtered()
	if len(filtered) == 0 {
		if listQuery != "" {
			fmt.Println(i18n.T("NoResults", map[string]any{"Keyword": listQuery}))
		} else {
			fmt.Println(i18n.T("NoPlugins", nil))
		}
		return nil
	}

	if !browser.GoToPage(listPage) && listPage != browser.CurrentPage() {
		fmt.Println(i18n.T("PageOutOfRange", map[string]any{
			"Page":    listPage,
			"Total":   browser.TotalPages(),
			"Current": browser.CurrentPage(),
		}))
		fmt.Println()
	}

	fmt.Println(i18n.T("ListHeader", map[string]any{"Count": len(filtered)}, len(filtered)))
	fmt.Println("----------------------------------------")
	for _, p := range browser.Page() {
		printPluginLine(p)
		fmt.Println()
	}

	fmt.Println(i18n.T("PageFooter", map[string]any{
		"Page":  browser.CurrentPage(),
		"Total": browser.TotalPages(),
	}))

	return nil
}
