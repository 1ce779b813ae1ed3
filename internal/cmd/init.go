package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hargabyte/pyrepr/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default .pyrepr/config.yaml in the current directory",
	Long: `Write the default pyrepr configuration to .pyrepr/config.yaml.

The file documents the available settings: the **kwargs splat
placeholder, the qualified-name expression used in generated methods,
directory exclude patterns, and diff coloring. Commands pick up the
nearest .pyrepr directory walking up from the working directory.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	path, err := config.WriteDefault(wd)
	if err != nil {
		return err
	}

	fmt.Printf("created %s\n", path)
	return nil
}
