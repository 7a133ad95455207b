package clippy

import (
	"fmt"

	"github.com/leapstack-labs/clippygen/pkg/catalog"
)

// Exceptions names the members of a group excluded from its default level
// in an exhaustive split, and the level they get instead.
type Exceptions struct {
	Level catalog.Level
	Lints []string
}

// ExhaustiveGroup holds the two halves of an exhaustive split. Together
// they cover every catalog entry of the split group exactly once, in
// catalog order.
type ExhaustiveGroup struct {
	Defaults   []Setting
	Exceptions []Setting
}

// SplitGroupExhaustive partitions every catalog entry of the given group
// into defaults (at defaultLevel) and exceptions (at exceptions.Level).
// Every exception id must exist in the group; the first id that does not
// fails with ExceptionNotInGroupError. Ids listed twice in the exception
// set still yield a single setting: membership is tested once per catalog
// entry.
func SplitGroupExhaustive(cat catalog.Catalog, group catalog.Group, defaultLevel catalog.Level, exceptions Exceptions) (*ExhaustiveGroup, error) {
	members := cat.IDsInGroup(group)

	memberSet := make(map[string]bool, len(members))
	for _, id := range members {
		memberSet[id] = true
	}
	for _, id := range exceptions.Lints {
		if !memberSet[id] {
			return nil, &ExceptionNotInGroupError{ID: id, Group: group}
		}
	}

	exceptionSet := make(map[string]bool, len(exceptions.Lints))
	for _, id := range exceptions.Lints {
		exceptionSet[id] = true
	}

	split := &ExhaustiveGroup{}
	for _, id := range members {
		if exceptionSet[id] {
			split.Exceptions = append(split.Exceptions, SingleSetting{Lint: id, Level: exceptions.Level})
		} else {
			split.Defaults = append(split.Defaults, SingleSetting{Lint: id, Level: defaultLevel})
		}
	}
	return split, nil
}

// allowOverride builds allow-settings for the listed lints, requiring each
// id to exist in the catalog under the given group. The first missing id
// fails with UnknownLintError.
func allowOverride(cat catalog.Catalog, group catalog.Group, ids []string) ([]Setting, error) {
	settings := make([]Setting, 0, len(ids))
	for _, id := range ids {
		if !cat.Contains(id, group) {
			return nil, &UnknownLintError{ID: id, Group: group}
		}
		settings = append(settings, allowSetting(id))
	}
	return settings, nil
}

// BuildConfig classifies the catalog against the built-in policy for the
// given profile. The result is the full configuration in emission order:
// group-wide levels, per-group allow overrides, then the exhaustive
// restriction split (warned exceptions first, explicit allows last).
func BuildConfig(cat catalog.Catalog, profile Profile) (*Config, error) {
	restriction, err := SplitGroupExhaustive(cat, catalog.GroupRestriction, catalog.LevelAllow, Exceptions{
		Level: catalog.LevelWarn,
		Lints: restrictionWarns,
	})
	if err != nil {
		return nil, err
	}

	groups := []ConfigGroup{
		{Comment: "enabled groups", Settings: EnabledGroups()},
	}

	for _, override := range Overrides(profile) {
		settings, err := allowOverride(cat, override.Group, override.Lints)
		if err != nil {
			return nil, err
		}
		groups = append(groups, ConfigGroup{
			Comment:  fmt.Sprintf("%s overrides", override.Group),
			Settings: settings,
		})
	}

	groups = append(groups,
		ConfigGroup{Comment: "selected restrictions", Settings: restriction.Exceptions},
		ConfigGroup{Comment: "restrictions explicit allows", Settings: restriction.Defaults},
	)

	return &Config{Groups: groups}, nil
}
