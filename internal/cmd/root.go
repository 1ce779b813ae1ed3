// Package cmd contains all CLI commands for pyrepr.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hargabyte/pyrepr/internal/config"
)

var (
	// Version is the current version of pyrepr
	Version = "0.1.0"

	// Global flags
	verbose    bool
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pyrepr",
	Short: "Generate __repr__ methods for Python classes",
	Long: `pyrepr inspects the __init__ method of every class in a Python source
file and synthesizes a matching __repr__ method, or removes one it
previously generated.

The tool parses source text structurally; it never imports or executes
the code it rewrites. Classes whose initializer takes a positional-only
parameter are skipped, because a keyword-based representation cannot
express positional-only call syntax. Classes that already define
__repr__ are left untouched.

By default the generated (or removed) methods are printed per class.
Use --diff to see a unified diff, or --inline to rewrite the files in
place. Inline writes are atomic per file.

Examples:
  pyrepr add models.py              # Show the methods that would be added
  pyrepr add --diff models.py       # Show a unified diff
  pyrepr add --inline src/          # Rewrite every Python file under src/
  pyrepr add --splat '<kwargs>' app.py
  pyrepr remove --inline models.py  # Excise existing __repr__ methods

See 'pyrepr <command> --help' for command-specific options.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Report skipped classes on stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .pyrepr/config.yaml)")
}

// loadConfig loads the effective configuration: the file given with
// --config, or the nearest .pyrepr/config.yaml walking up from the working
// directory, or built-in defaults.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromPath(configPath)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}
	return config.Load(wd)
}

// applyColorMode maps the output.color setting onto the color package.
// "auto" keeps the package's own terminal detection.
func applyColorMode(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}
