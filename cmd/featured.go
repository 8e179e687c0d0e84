package cmd

import (
	"fmt"

	"github.com/minecraft1024a/mofox-market/internal/i18n"
	"github.com/minecraft1024a/mofox-market/internal/view"
	"github.com/spf13/cobra"
)

var pluginFeaturedCmd = &cobra.Command{
	Use:   "featured",
	Short: "Show the featured selection",
	Long: `Show four featured plugins: the two newest, plus two picked at random
from the rest. Use --seed to repeat a selection.

Example:
  mofox-market featured
  mofox-market featured --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPluginFeatured,
}

func runPluginFeatured(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	s := newSession(cmd)
	if err := s.load(cmd.Context()); err != nil {
		return err
	}

	featured := view.Featured(s.store.Plugins(), s.rng)
	if len(featured) == 0 {
		fmt.Println(i18n.T("NoPlugins", nil))
		return nil
	}

	fmt.Println(i18n.T("FeaturedHeader", nil))
	fmt.Println("----------------------------------------")
	for _, p := range featured {
		printPluginLine(p)
		fmt.Println()
	}
	return nil
}
