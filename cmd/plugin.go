package cmd

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/minecraft1024a/mofox-market/internal/catalog"
	"github.com/spf13/cobra"
)

var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "Query the plugin catalogue",
	Long: `Query the MoFox plugin catalogue.

Commands:
  list      List plugins page by page
  search    Search for plugins
  show      Show details of a plugin
  featured  Show the featured selection
  download  Clone a plugin's repository`,
}

func init() {
	pluginCmd.AddCommand(pluginListCmd)
	pluginCmd.AddCommand(pluginSearchCmd)
	pluginCmd.AddCommand(pluginShowCmd)
	pluginCmd.AddCommand(pluginFeaturedCmd)
	pluginCmd.AddCommand(pluginDownloadCmd)
}

const nameColumnWidth = 28

// printPluginLine prints the one-line summary used by list, search and featured
func printPluginLine(p catalog.Plugin) {
	version := p.Version
	if version == "" {
		version = "latest"
	}

	name := runewidth.Truncate(pluginName(p), nameColumnWidth, "…")
	name = runewidth.FillRight(name, nameColumnWidth)

	fmt.Printf("  %s  v%-8s %s  [%s]\n", name, version, p.Author, p.ID)
	if p.Description != "" {
		fmt.Printf("    %s\n", runewidth.Truncate(p.Description, 76, "…"))
	}
	if len(p.Tags) > 0 {
		fmt.Printf("    Tags: %s\n", strings.Join(p.Tags, ", "))
	}
}

func pluginName(p catalog.Plugin) string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}
