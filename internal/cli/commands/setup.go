// Package commands implements the clippygen subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/leapstack-labs/clippygen/internal/cli/config"
	"github.com/leapstack-labs/clippygen/pkg/catalog"
	"github.com/leapstack-labs/clippygen/pkg/clippy"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// CommandContext bundles dependencies shared by command implementations.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// NewCommandContext pulls config and logger out of the command context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	return &CommandContext{
		Cfg:    config.FromContext(cmd.Context()),
		Logger: config.GetLogger(cmd.Context()),
	}
}

// loadCatalog obtains the lint catalog from the configured file when one is
// set, otherwise by fetching the catalog URL.
func loadCatalog(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (catalog.Catalog, error) {
	if cfg.CatalogFile != "" {
		logger.Debug("loading catalog from file", "path", cfg.CatalogFile)
		return catalog.LoadFile(cfg.CatalogFile)
	}
	client := catalog.NewClient(cfg.CatalogURL, time.Duration(cfg.Timeout)*time.Second, logger)
	return client.Fetch(cmd.Context())
}

// resolveProfile picks the profile from the flag when set, the config
// otherwise. Commands that classify require one.
func resolveProfile(cfg *config.Config, flagValue string) (clippy.Profile, error) {
	name := flagValue
	if name == "" {
		name = cfg.Profile
	}
	if name == "" {
		return 0, fmt.Errorf("profile is required (--profile publish|personal)")
	}
	profile, ok := clippy.ParseProfile(name)
	if !ok {
		return 0, fmt.Errorf("invalid profile %q (expected publish or personal)", name)
	}
	return profile, nil
}

var headingStyle = lipgloss.NewStyle().Bold(true)

// printHeading writes a section heading, styled when stdout is a terminal.
func printHeading(cmd *cobra.Command, heading string) {
	w := cmd.OutOrStdout()
	if isTerminal(w) {
		_, _ = fmt.Fprintln(w, headingStyle.Render(heading))
		return
	}
	_, _ = fmt.Fprintln(w, heading)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderJSON writes v as indented JSON.
func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
