package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/minecraft1024a/mofox-market/internal/catalog"
	"github.com/minecraft1024a/mofox-market/internal/i18n"
	"github.com/spf13/cobra"
)

var pluginShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show details of a plugin",
	Long: `Show every field of a plugin and its repository link.

Example:
  mofox-market show proactive_thinker`,
	Args: cobra.ExactArgs(1),
	RunE: runPluginShow,
}

func runPluginShow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	id := args[0]

	s := newSession(cmd)
	if err := s.load(cmd.Context()); err != nil {
		return err
	}

	p, err := s.store.Find(id)
	if err != nil {
		return errors.New(i18n.T("PluginNotFound", map[string]any{"ID": id}))
	}

	printPluginDetails(p)
	return nil
}

func printPluginDetails(p catalog.Plugin) {
	fmt.Println(pluginName(p))
	fmt.Println("----------------------------------------")
	fmt.Printf("  ID:          %s\n", p.ID)
	fmt.Printf("  Version:     %s\n", p.Version)
	fmt.Printf("  Author:      %s\n", p.Author)
	fmt.Printf("  License:     %s\n", p.License)
	fmt.Printf("  Icon:        %s\n", p.Icon)
	fmt.Printf("  Created:     %s\n", p.CreatedAt)
	fmt.Printf("  Downloads:   %d\n", p.Downloads)
	if len(p.Categories) > 0 {
		fmt.Printf("  Categories:  %s\n", strings.Join(p.Categories, ", "))
	}
	if len(p.Keywords) > 0 {
		fmt.Printf("  Keywords:    %s\n", strings.Join(p.Keywords, ", "))
	}
	if p.HomepageURL != "" {
		fmt.Printf("  Homepage:    %s\n", p.HomepageURL)
	}

	link, err := catalog.RepositoryLink(p.RepositoryURL)
	switch {
	case err == nil:
		fmt.Printf("  Repository:  %s\n", link)
	case errors.Is(err, catalog.ErrInvalidRepository):
		fmt.Printf("  Repository:  %s (%s)\n", p.RepositoryURL, i18n.T("InvalidRepository", nil))
	default:
		fmt.Printf("  Repository:  %s\n", i18n.T("NoRepository", nil))
	}

	if p.Description != "" {
		fmt.Println()
		fmt.Printf("  %s\n", p.Description)
	}
}
