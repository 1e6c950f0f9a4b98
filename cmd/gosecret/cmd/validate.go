package cmd

import (
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: `Validate loads the configuration file, applies command-line overrides
and checks every setting.

Checks performed:
  - Configuration syntax
  - Selector name and worker count
  - Output and logging formats
  - History store path

Example:
  gosecret validate --config gosecret.yaml`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(GetCLIOverrides())
	if err != nil {
		return err
	}

	cmd.Printf("=== Configuration Validation ===\n")
	cmd.Printf("Config file: %s\n", GetConfigFile())
	cmd.Printf("Selector: %s\n", cfg.Reconstruction.Selector)
	cmd.Printf("Cross-validate: %v (strict: %v)\n", cfg.Reconstruction.CrossValidate, cfg.Reconstruction.Strict)
	cmd.Printf("Workers: %d\n", cfg.Reconstruction.Workers)
	cmd.Printf("Output: %s\n", cfg.Output.Format)
	if cfg.Store.Enabled {
		cmd.Printf("Store: %s\n", cfg.Store.Path)
	} else {
		cmd.Printf("Store: disabled\n")
	}
	cmd.Printf("✅ Configuration is valid\n")
	return nil
}
