package cmd

import (
	"github.com/minecraft1024a/mofox-market/internal/tui"
	"github.com/minecraft1024a/mofox-market/internal/view"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive plugin gallery",
	Long: `Open an interactive gallery of the plugin catalogue.

Type to filter, use the arrow keys to move and change pages, Tab to
switch between newest and oldest first, and Enter to see details.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	s := newSession(cmd)
	if err := s.load(cmd.Context()); err != nil {
		return err
	}

	featured := view.Featured(s.store.Plugins(), s.rng)
	return tui.RunGallery(s.store, featured)
}
