package commands

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/clippygen/internal/cli/config"
	"github.com/leapstack-labs/clippygen/pkg/catalog"
	"github.com/leapstack-labs/clippygen/pkg/clippy"
	"github.com/stretchr/testify/require"
)

// writePolicyCatalog writes a catalog JSON file containing every lint the
// built-in policy references, plus a couple of extra lints.
func writePolicyCatalog(t *testing.T) string {
	t.Helper()

	var cat catalog.Catalog
	for _, override := range clippy.Overrides(clippy.ProfilePersonal) {
		for _, id := range override.Lints {
			cat = append(cat, catalog.Lint{ID: id, Group: override.Group, Version: "1.0.0"})
		}
	}
	for _, id := range clippy.RestrictionExceptions() {
		cat = append(cat, catalog.Lint{ID: id, Group: catalog.GroupRestriction, Version: "1.0.0"})
	}
	cat = append(cat,
		catalog.Lint{ID: "absolute_paths", Group: catalog.GroupRestriction, Version: "1.73.0"},
		catalog.Lint{ID: "needless_bool", Group: catalog.GroupComplexity, DefaultLevel: catalog.LevelWarn, Version: "1.0.0"},
	)

	data, err := json.Marshal(cat)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "lints.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// writeCatalogWithout writes the policy catalog with one lint id removed.
func writeCatalogWithout(t *testing.T, dropID string) string {
	t.Helper()

	full := writePolicyCatalog(t)
	data, err := os.ReadFile(full)
	require.NoError(t, err)

	var cat catalog.Catalog
	require.NoError(t, json.Unmarshal(data, &cat))

	filtered := cat[:0:0]
	for _, lint := range cat {
		if lint.ID == dropID {
			continue
		}
		filtered = append(filtered, lint)
	}

	out, err := json.Marshal(filtered)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "lints.json")
	require.NoError(t, os.WriteFile(path, out, 0o644))
	return path
}

// testContext returns a command context carrying a config that reads the
// given catalog file.
func testContext(catalogFile string) context.Context {
	return config.WithConfig(context.Background(), &config.Config{
		CatalogFile: catalogFile,
		Timeout:     config.DefaultTimeout,
		Format:      config.DefaultFormat,
	})
}
