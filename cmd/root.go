package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	seed    uint64

	rootCmd = &cobra.Command{
		Use:           "mofox-market",
		Short:         "Browse the MoFox plugin catalogue",
		SilenceErrors: true,
		Long: `mofox-market is a command-line browser for the MoFox plugin
repository. It fetches plugin_details.json from GitHub once per run and
lets you list, search and download the plugins it describes.

Commands:
  plugin    Query the plugin catalogue (list, search, show, featured, download)
  browse    Open the interactive plugin gallery
  config    Manage configuration

Shortcuts (aliases):
  list      = plugin list
  search    = plugin search
  show      = plugin show
  featured  = plugin featured
  download  = plugin download`,
	}
)

// createAliasCommand creates a root-level alias that shares flags with a plugin subcommand
func createAliasCommand(pluginSubCmd *cobra.Command, aliases []string) *cobra.Command {
	aliasCmd := &cobra.Command{
		Use:     pluginSubCmd.Use,
		Short:   pluginSubCmd.Short + " (alias)",
		Long:    pluginSubCmd.Long,
		Args:    pluginSubCmd.Args,
		Aliases: aliases,
		RunE:    pluginSubCmd.RunE,
	}
	// Copy all flags from the original command
	pluginSubCmd.Flags().VisitAll(func(f *pflag.Flag) {
		aliasCmd.Flags().AddFlag(f)
	})
	return aliasCmd
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "seed for placeholder stats and the featured draw")

	// Main commands
	rootCmd.AddCommand(pluginCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(configCmd)
}

// RegisterPluginAliases registers root-level aliases for plugin subcommands
// Must be called after plugin subcommands are initialized
func RegisterPluginAliases() {
	rootCmd.AddCommand(createAliasCommand(pluginListCmd, []string{"ls"}))
	rootCmd.AddCommand(createAliasCommand(pluginSearchCmd, nil))
	rootCmd.AddCommand(createAliasCommand(pluginShowCmd, []string{"info"}))
	rootCmd.AddCommand(createAliasCommand(pluginFeaturedCmd, nil))
	rootCmd.AddCommand(createAliasCommand(pluginDownloadCmd, nil))
}
