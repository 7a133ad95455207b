package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroup(t *testing.T) {
	tests := []struct {
		input string
		want  Group
		ok    bool
	}{
		{"cargo", GroupCargo, true},
		{"complexity", GroupComplexity, true},
		{"correctness", GroupCorrectness, true},
		{"nursery", GroupNursery, true},
		{"pedantic", GroupPedantic, true},
		{"perf", GroupPerf, true},
		{"restriction", GroupRestriction, true},
		{"style", GroupStyle, true},
		{"suspicious", GroupSuspicious, true},
		{"deprecated", GroupDeprecated, true},
		{"Pedantic", 0, false}, // case-sensitive
		{"unknown", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseGroup(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.input, got.String())
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
		ok    bool
	}{
		{"allow", LevelAllow, true},
		{"warn", LevelWarn, true},
		{"deny", LevelDeny, true},
		{"none", LevelNone, true},
		{"Warn", 0, false},
		{"error", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLevel(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.input, got.String())
			}
		})
	}
}

func TestLintUnmarshal(t *testing.T) {
	data := `{
		"id": "unwrap_used",
		"group": "restriction",
		"level": "allow",
		"version": "1.45.0",
		"docs": "ignored extra field"
	}`

	var lint Lint
	require.NoError(t, json.Unmarshal([]byte(data), &lint))
	assert.Equal(t, "unwrap_used", lint.ID)
	assert.Equal(t, GroupRestriction, lint.Group)
	assert.Equal(t, LevelAllow, lint.DefaultLevel)
	assert.Equal(t, "1.45.0", lint.Version)
}

func TestLintUnmarshal_UnknownGroup(t *testing.T) {
	var lint Lint
	err := json.Unmarshal([]byte(`{"id": "x", "group": "experimental", "level": "warn", "version": "1.0.0"}`), &lint)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown lint group "experimental"`)
}

func TestLintUnmarshal_UnknownLevel(t *testing.T) {
	var lint Lint
	err := json.Unmarshal([]byte(`{"id": "x", "group": "style", "level": "forbid", "version": "1.0.0"}`), &lint)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown lint level "forbid"`)
}

func TestGroupMarshalRoundTrip(t *testing.T) {
	for _, group := range AllGroups() {
		data, err := json.Marshal(group)
		require.NoError(t, err)

		var back Group
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, group, back)
	}
}

func TestCatalogIDsInGroup(t *testing.T) {
	cat := Catalog{
		{ID: "a", Group: GroupStyle},
		{ID: "b", Group: GroupPerf},
		{ID: "c", Group: GroupStyle},
	}

	assert.Equal(t, []string{"a", "c"}, cat.IDsInGroup(GroupStyle))
	assert.Equal(t, []string{"b"}, cat.IDsInGroup(GroupPerf))
	assert.Nil(t, cat.IDsInGroup(GroupCargo))
}

func TestCatalogContains(t *testing.T) {
	cat := Catalog{{ID: "a", Group: GroupStyle}}

	assert.True(t, cat.Contains("a", GroupStyle))
	assert.False(t, cat.Contains("a", GroupPerf))
	assert.False(t, cat.Contains("b", GroupStyle))
}

func TestCatalogCountByGroup(t *testing.T) {
	cat := Catalog{
		{ID: "a", Group: GroupStyle},
		{ID: "b", Group: GroupStyle},
		{ID: "c", Group: GroupPerf},
	}

	counts := cat.CountByGroup()
	assert.Equal(t, 2, counts[GroupStyle])
	assert.Equal(t, 1, counts[GroupPerf])
	assert.Equal(t, 0, counts[GroupCargo])
}
