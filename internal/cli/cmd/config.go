package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/appstate/internal/cli/styles"
	"github.com/bnema/appstate/internal/infrastructure/config"
)

var configShowJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where the config file lives, the effective settings, or the JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after defaults, file and APPSTATE_* environment overrides are applied.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "print as JSON")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return errAppNotInitialized
	}

	path, exists := a.ConfigFileExists()
	if path == "" {
		return fmt.Errorf("config file path unknown")
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(a.Theme).RenderPath(path, exists))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return errAppNotInitialized
	}

	if configShowJSON {
		return writeJSON(cmd.OutOrStdout(), a.Config)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(a.Theme).RenderConfig(a.Config))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
