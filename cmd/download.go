package cmd

import (
	"errors"
	"fmt"

	"github.com/minecraft1024a/mofox-market/internal/catalog"
	"github.com/minecraft1024a/mofox-market/internal/config"
	"github.com/minecraft1024a/mofox-market/internal/download"
	"github.com/minecraft1024a/mofox-market/internal/git"
	"github.com/minecraft1024a/mofox-market/internal/i18n"
	"github.com/spf13/cobra"
)

var pluginDownloadCmd = &cobra.Command{
	Use:   "download <id> [dir]",
	Short: "Clone a plugin's repository",
	Long: `Clone a plugin's repository into a local directory.

The plugin is cloned into <dir>/<plugin-name>. When that directory
already exists, a random suffix is appended. Without [dir] plugins go to
~/.config/mofox-market/plugins.

Example:
  mofox-market download proactive_thinker
  mofox-market download proactive_thinker ./plugins`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPluginDownload,
}

func runPluginDownload(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	id := args[0]

	destDir := config.PluginsDir()
	if len(args) > 1 {
		destDir = args[1]
	}

	s := newSession(cmd)
	if err := s.load(cmd.Context()); err != nil {
		return err
	}

	p, err := s.store.Find(id)
	if err != nil {
		return errors.New(i18n.T("PluginNotFound", map[string]any{"ID": id}))
	}

	if link, err := catalog.RepositoryLink(p.RepositoryURL); err == nil {
		fmt.Println(i18n.T("Downloading", map[string]any{"URL": link}))
	}

	result, err := download.New(s.logger.Named("download")).Download(cmd.Context(), p, destDir)
	if err != nil {
		var authErr *git.AuthError
		switch {
		case errors.Is(err, catalog.ErrNoRepository):
			return errors.New(i18n.T("NoRepository", nil))
		case errors.Is(err, catalog.ErrInvalidRepository):
			return errors.New(i18n.T("InvalidRepository", nil))
		case errors.As(err, &authErr):
			return fmt.Errorf("%s: %w", pluginName(p), authErr)
		}
		return err
	}

	fmt.Println(i18n.T("DownloadDone", map[string]any{"Path": result.Path}))
	return nil
}
