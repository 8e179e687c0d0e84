package cmd

import (
	"fmt"

	"github.com/minecraft1024a/mofox-market/internal/config"
	"github.com/minecraft1024a/mofox-market/internal/i18n"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mofox-market configuration",
	Long: `Manage mofox-market configuration settings.

Example:
  mofox-market config show
  mofox-market config set locale zh-CN`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Available keys:
  locale          - Language setting
                    Values: auto, en-US, zh-CN, etc.
  source.api      - GitHub API root (default: https://api.github.com)
  source.owner    - Owner of the plugin repository
  source.repo     - Name of the plugin repository
  source.path     - Path of plugin_details.json inside the repository
  source.timeout  - HTTP timeout in seconds
  source.file     - Local plugin_details.json to read instead of GitHub
                    (empty value switches back to GitHub)
  log.level       - Log level
                    Values: debug, info, warn, error

Example:
  mofox-market config set locale zh-CN
  mofox-market config set source.owner my-fork`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	fmt.Println("Configuration:")
	fmt.Println("----------------------------------------")
	fmt.Printf("  locale: %s\n", cfg.Locale)
	fmt.Printf("  source.api: %s\n", cfg.Source.APIBaseURL)
	fmt.Printf("  source.owner: %s\n", cfg.Source.Owner)
	fmt.Printf("  source.repo: %s\n", cfg.Source.Repo)
	fmt.Printf("  source.path: %s\n", cfg.Source.Path)
	fmt.Printf("  source.timeout: %d\n", cfg.Source.TimeoutSeconds)
	fmt.Printf("  log.level: %s\n", cfg.Log.Level)

	fmt.Printf("  source.file: %s\n", cfg.Source.File)

	fmt.Println()
	fmt.Println("Source:")
	if cfg.Source.File != "" {
		fmt.Printf("  %s (local file)\n", cfg.Source.File)
	} else {
		fmt.Printf("  %s\n", cfg.ClientConfig().URL())
	}

	fmt.Println()
	fmt.Println("Locale:")
	if cfg.Locale == "auto" {
		fmt.Println("  auto: System locale is auto-detected")
	} else {
		fmt.Printf("  %s: Using fixed locale\n", cfg.Locale)
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	if err := config.SetValue(key, value); err != nil {
		return err
	}

	fmt.Println(i18n.T("ConfigSaved", map[string]any{"Key": key, "Value": value}))
	if key == "locale" {
		fmt.Println("Restart mofox-market to apply.")
	}
	return nil
}
