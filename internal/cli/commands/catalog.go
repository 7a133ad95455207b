package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/clippygen/pkg/catalog"
	"github.com/spf13/cobra"
)

// CatalogOptions holds options for the catalog command.
type CatalogOptions struct {
	Group  string // Filter to a single group
	Format string // Output format: text, json
}

// catalogGroupSummary is one row of the per-group summary.
type catalogGroupSummary struct {
	Group string `json:"group"`
	Lints int    `json:"lints"`
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand() *cobra.Command {
	opts := &CatalogOptions{}
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Summarize the published lint catalog",
		Long: `Fetch the lint catalog and summarize it: lint counts per group, or
with --group, every lint of one group with its default level and the
release it appeared in.`,
		Example: `  # Per-group lint counts
  clippygen catalog

  # All restriction lints
  clippygen catalog --group restriction

  # Machine-readable
  clippygen catalog --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalog(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Show lints of a single group")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

func runCatalog(cmd *cobra.Command, opts *CatalogOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	cat, err := loadCatalog(cmd, cfg, cmdCtx.Logger)
	if err != nil {
		return err
	}

	format := opts.Format
	if format == "" {
		format = cfg.Format
	}

	if opts.Group != "" {
		group, ok := catalog.ParseGroup(opts.Group)
		if !ok {
			return fmt.Errorf("unknown group %q", opts.Group)
		}
		return renderGroupLints(cmd, cat, group, format)
	}

	return renderGroupCounts(cmd, cat, format)
}

func renderGroupCounts(cmd *cobra.Command, cat catalog.Catalog, format string) error {
	counts := cat.CountByGroup()

	summaries := make([]catalogGroupSummary, 0, len(counts))
	for _, group := range catalog.AllGroups() {
		if counts[group] == 0 {
			continue
		}
		summaries = append(summaries, catalogGroupSummary{Group: group.String(), Lints: counts[group]})
	}

	if format == "json" {
		return renderJSON(cmd.OutOrStdout(), summaries)
	}

	printHeading(cmd, fmt.Sprintf("Lint catalog (%d lints)", len(cat)))

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Group", "Lints"})
	for _, s := range summaries {
		t.AppendRow(table.Row{s.Group, s.Lints})
	}
	t.AppendFooter(table.Row{"total", len(cat)})
	t.Render()
	return nil
}

func renderGroupLints(cmd *cobra.Command, cat catalog.Catalog, group catalog.Group, format string) error {
	var lints []catalog.Lint
	for _, lint := range cat {
		if lint.Group == group {
			lints = append(lints, lint)
		}
	}

	if format == "json" {
		return renderJSON(cmd.OutOrStdout(), lints)
	}

	printHeading(cmd, fmt.Sprintf("Group %s (%d lints)", group, len(lints)))

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Lint", "Default level", "Since"})
	for _, lint := range lints {
		t.AppendRow(table.Row{lint.ID, lint.DefaultLevel.String(), lint.Version})
	}
	t.Render()
	return nil
}
