package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hargabyte/pyrepr/internal/engine"
	"github.com/hargabyte/pyrepr/internal/render"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <file|dir>...",
	Short: "Add __repr__ to all classes in the source code",
	Long: `Generate a __repr__ method for every class in the given Python files.

Each class's __init__ signature drives the generated method: parameters
are rendered in declaration order as name=value pairs using repr
formatting, *args is spliced element-wise, and **kwargs is replaced by
the splat placeholder (it is never enumerated).

A class is skipped when its initializer has a positional-only parameter
or when it already defines __repr__; skips never fail the run. Directory
arguments are expanded to the Python files beneath them, honoring the
configured exclude patterns.

Without --diff or --inline the generated methods are printed per class.

Examples:
  pyrepr add models.py
  pyrepr add --diff models.py app.py
  pyrepr add --inline src/
  pyrepr add --splat '<kwargs>' models.py`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addSplat  string
	addDiff   bool
	addInline bool
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addSplat, "splat", render.DefaultKwargSplat, "Placeholder for **kwargs contents")
	addCmd.Flags().BoolVar(&addDiff, "diff", false, "Display a unified diff instead of writing")
	addCmd.Flags().BoolVar(&addInline, "inline", false, "Apply changes to the file(s) in place")
	addCmd.MarkFlagsMutuallyExclusive("diff", "inline")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyColorMode(cfg.Output.Color)

	splat := cfg.Add.KwargSplat
	if cmd.Flags().Changed("splat") {
		splat = addSplat
	}

	files, err := collectFiles(args, cfg.Scan.Exclude)
	if err != nil {
		return err
	}

	opts := engine.Options{
		KwargSplat:    splat,
		QualifiedName: cfg.Add.QualifiedName,
	}
	return processFiles(files, engine.ModeAdd, opts, selectOutputMode(addDiff, addInline), "generated")
}
