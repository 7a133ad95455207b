package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/clippygen/pkg/clippy"
	"github.com/spf13/cobra"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Profile string
	Format  string
}

// checkGroupSummary is the per-config-group result of a check run.
type checkGroupSummary struct {
	Comment  string `json:"comment"`
	Settings int    `json:"settings"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the built-in policy against the current catalog",
		Long: `Run the classification without emitting a fragment.

Every lint id the policy names is required to exist in the catalog under
the expected group, so an upstream rename or removal is detected here
before it silently changes the generated configuration. Exits non-zero
on the first id that no longer matches.`,
		Example: `  # Check the policy against the live catalog
  clippygen check --profile publish

  # Check against a catalog snapshot
  clippygen check --profile publish --catalog-file lints.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Profile, "profile", "p", "", "Policy profile: publish, personal")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	profile, err := resolveProfile(cfg, opts.Profile)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cmd, cfg, cmdCtx.Logger)
	if err != nil {
		return err
	}

	lintCfg, err := clippy.BuildConfig(cat, profile)
	if err != nil {
		return fmt.Errorf("policy does not match catalog: %w", err)
	}

	summaries := make([]checkGroupSummary, 0, len(lintCfg.Groups))
	total := 0
	for _, group := range lintCfg.Groups {
		summaries = append(summaries, checkGroupSummary{
			Comment:  group.Comment,
			Settings: len(group.Settings),
		})
		total += len(group.Settings)
	}

	format := opts.Format
	if format == "" {
		format = cfg.Format
	}
	if format == "json" {
		return renderJSON(cmd.OutOrStdout(), summaries)
	}

	printHeading(cmd, fmt.Sprintf("Policy matches catalog (%d lints, profile %s)", len(cat), profile))

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Config group", "Settings"})
	for _, s := range summaries {
		t.AppendRow(table.Row{s.Comment, s.Settings})
	}
	t.AppendFooter(table.Row{"total", total})
	t.Render()
	return nil
}
