package commands

import (
	"fmt"

	"github.com/leapstack-labs/clippygen/pkg/clippy"
	"github.com/spf13/cobra"
)

// GenerateOptions holds options for the generate command.
type GenerateOptions struct {
	Profile   string // Policy profile: publish, personal
	Workspace bool   // Emit the workspace header
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	opts := &GenerateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the [lints.clippy] manifest fragment",
		Long: `Fetch the published clippy lint catalog, classify every lint against
the built-in policy, and print a TOML fragment to stdout for pasting
into a Cargo manifest.

The fragment enables eight lint groups at priority -1, allows a fixed
set of per-group exceptions, and treats the restriction group
exhaustively: a curated subset warns and every remaining restriction
lint is explicitly allowed.`,
		Example: `  # Generate for a published crate
  clippygen generate --profile publish

  # Generate a workspace-level fragment
  clippygen generate --profile personal --workspace

  # Generate from a catalog snapshot on disk
  clippygen generate --profile publish --catalog-file lints.json`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Profile, "profile", "p", "", "Policy profile: publish, personal")
	cmd.Flags().BoolVarP(&opts.Workspace, "workspace", "w", false, "Emit a [workspace.lints.clippy] header")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *GenerateOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	profile, err := resolveProfile(cfg, opts.Profile)
	if err != nil {
		return err
	}

	workspace := opts.Workspace
	if !cmd.Flags().Changed("workspace") {
		workspace = cfg.Workspace
	}

	cat, err := loadCatalog(cmd, cfg, cmdCtx.Logger)
	if err != nil {
		return err
	}

	lintCfg, err := clippy.BuildConfig(cat, profile)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), clippy.Render(lintCfg, workspace))
	return err
}
