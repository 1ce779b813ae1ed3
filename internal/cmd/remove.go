package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hargabyte/pyrepr/internal/engine"
)

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove <file|dir>...",
	Short: "Remove the __repr__ method from all classes in the source code",
	Long: `Excise the __repr__ method from every class in the given Python files.

The whole method block is removed, together with the single blank
separator line above it, so that adding and then removing a method
restores the original file exactly. Classes without a __repr__ are left
unchanged.

Without --diff or --inline the removed methods are printed per class.

Examples:
  pyrepr remove models.py
  pyrepr remove --diff src/
  pyrepr remove --inline models.py`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

var (
	removeDiff   bool
	removeInline bool
)

func init() {
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().BoolVar(&removeDiff, "diff", false, "Display a unified diff instead of writing")
	removeCmd.Flags().BoolVar(&removeInline, "inline", false, "Apply changes to the file(s) in place")
	removeCmd.MarkFlagsMutuallyExclusive("diff", "inline")
}

func runRemove(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyColorMode(cfg.Output.Color)

	files, err := collectFiles(args, cfg.Scan.Exclude)
	if err != nil {
		return err
	}

	return processFiles(files, engine.ModeRemove, engine.Options{}, selectOutputMode(removeDiff, removeInline), "removed")
}
