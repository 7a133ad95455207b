package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/clippygen/pkg/clippy"
	"github.com/spf13/cobra"
)

// PolicyOptions holds options for the policy command.
type PolicyOptions struct {
	Profile string
	Format  string
}

// policyView is the JSON shape of the built-in policy.
type policyView struct {
	Profile               string              `json:"profile"`
	Overrides             map[string][]string `json:"overrides"`
	RestrictionExceptions []string            `json:"restriction_exceptions"`
}

// NewPolicyCommand creates the policy command.
func NewPolicyCommand() *cobra.Command {
	opts := &PolicyOptions{}
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Show the built-in classification policy",
		Long: `Print the policy that generate applies: the per-group allow lists and
the restriction lints that warn instead of being allowed. Needs no
network access.`,
		Example: `  # Policy as applied for a published crate
  clippygen policy --profile publish

  # Machine-readable
  clippygen policy --profile personal --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPolicy(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Profile, "profile", "p", "publish", "Policy profile: publish, personal")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

func runPolicy(cmd *cobra.Command, opts *PolicyOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	profile, err := resolveProfile(cfg, opts.Profile)
	if err != nil {
		return err
	}

	overrides := clippy.Overrides(profile)
	exceptions := clippy.RestrictionExceptions()

	format := opts.Format
	if format == "" {
		format = cfg.Format
	}
	if format == "json" {
		view := policyView{
			Profile:               profile.String(),
			Overrides:             make(map[string][]string, len(overrides)),
			RestrictionExceptions: exceptions,
		}
		for _, o := range overrides {
			view.Overrides[o.Group.String()] = o.Lints
		}
		return renderJSON(cmd.OutOrStdout(), view)
	}

	printHeading(cmd, fmt.Sprintf("Built-in policy (profile %s)", profile))

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Group", "Treatment", "Lints"})
	for _, o := range overrides {
		t.AppendRow(table.Row{o.Group.String(), "allow", strings.Join(o.Lints, "\n")})
	}
	t.AppendRow(table.Row{"restriction", "warn (exceptions)", strings.Join(exceptions, "\n")})
	t.Render()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d restriction exceptions; every other restriction lint is allowed explicitly\n", len(exceptions))
	return nil
}
