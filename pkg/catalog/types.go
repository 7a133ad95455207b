// Package catalog models the published clippy lint catalog and provides
// the HTTP/file sources that produce it.
package catalog

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// Group
// =============================================================================

// Group is one of the ten fixed categories a clippy lint belongs to.
type Group int

// Lint groups, in the order clippy documents them.
const (
	GroupCargo Group = iota
	GroupComplexity
	GroupCorrectness
	GroupNursery
	GroupPedantic
	GroupPerf
	GroupRestriction
	GroupStyle
	GroupSuspicious
	GroupDeprecated
)

var groupNames = [...]string{
	GroupCargo:       "cargo",
	GroupComplexity:  "complexity",
	GroupCorrectness: "correctness",
	GroupNursery:     "nursery",
	GroupPedantic:    "pedantic",
	GroupPerf:        "perf",
	GroupRestriction: "restriction",
	GroupStyle:       "style",
	GroupSuspicious:  "suspicious",
	GroupDeprecated:  "deprecated",
}

// AllGroups returns every known group in canonical order.
func AllGroups() []Group {
	groups := make([]Group, len(groupNames))
	for i := range groupNames {
		groups[i] = Group(i)
	}
	return groups
}

// String returns the canonical lowercase name of the group.
func (g Group) String() string {
	if int(g) < 0 || int(g) >= len(groupNames) {
		return "unknown"
	}
	return groupNames[g]
}

// ParseGroup converts a string to a Group value. The match is exact and
// case-sensitive; the upstream catalog publishes lowercase names only.
func ParseGroup(s string) (Group, bool) {
	for i, name := range groupNames {
		if s == name {
			return Group(i), true
		}
	}
	return 0, false
}

// UnmarshalJSON decodes a group from its JSON string form. An unknown
// group name is a decode error so that upstream schema drift is caught
// before classification runs.
func (g *Group) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParseGroup(s)
	if !ok {
		return fmt.Errorf("unknown lint group %q", s)
	}
	*g = parsed
	return nil
}

// MarshalJSON encodes the group as its canonical name.
func (g Group) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

// =============================================================================
// Level
// =============================================================================

// Level is the severity a lint is set to in the generated configuration.
type Level int

// Lint levels.
const (
	LevelAllow Level = iota
	LevelWarn
	LevelDeny
	LevelNone
)

var levelNames = [...]string{
	LevelAllow: "allow",
	LevelWarn:  "warn",
	LevelDeny:  "deny",
	LevelNone:  "none",
}

// String returns the canonical lowercase name of the level.
func (l Level) String() string {
	if int(l) < 0 || int(l) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLevel converts a string to a Level value. Exact, case-sensitive match.
func ParseLevel(s string) (Level, bool) {
	for i, name := range levelNames {
		if s == name {
			return Level(i), true
		}
	}
	return 0, false
}

// UnmarshalJSON decodes a level from its JSON string form; unknown names
// are decode errors.
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParseLevel(s)
	if !ok {
		return fmt.Errorf("unknown lint level %q", s)
	}
	*l = parsed
	return nil
}

// MarshalJSON encodes the level as its canonical name.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// =============================================================================
// Lint
// =============================================================================

// Lint is a single entry of the upstream catalog. Only ID and Group drive
// classification; DefaultLevel and Version are accepted to tolerate the
// upstream schema and surfaced by the catalog command.
type Lint struct {
	ID           string `json:"id"`
	Group        Group  `json:"group"`
	DefaultLevel Level  `json:"level"`
	Version      string `json:"version"`
}

// Catalog is the full list of known lints in upstream publication order.
// Order is observable: all downstream classification preserves it.
type Catalog []Lint

// IDsInGroup returns the ids of every lint in the given group, in catalog
// order. Duplicate catalog entries yield duplicate ids.
func (c Catalog) IDsInGroup(group Group) []string {
	var ids []string
	for _, lint := range c {
		if lint.Group == group {
			ids = append(ids, lint.ID)
		}
	}
	return ids
}

// Contains reports whether the catalog has a lint with the given id in the
// given group.
func (c Catalog) Contains(id string, group Group) bool {
	for _, lint := range c {
		if lint.ID == id && lint.Group == group {
			return true
		}
	}
	return false
}

// CountByGroup returns the number of catalog entries per group.
func (c Catalog) CountByGroup() map[Group]int {
	counts := make(map[Group]int)
	for _, lint := range c {
		counts[lint.Group]++
	}
	return counts
}
