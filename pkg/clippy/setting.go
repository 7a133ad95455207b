// Package clippy classifies the clippy lint catalog against a built-in
// policy and renders the result as a [lints.clippy] manifest fragment.
package clippy

import (
	"github.com/leapstack-labs/clippygen/pkg/catalog"
)

// Priority orders the consuming tool's application of settings: negative
// priorities apply before unprioritized ones, so group-wide settings carry
// priority -1 and per-lint settings leave it unspecified. The zero value
// is unspecified.
type Priority struct {
	Value    int
	Explicit bool
}

// ExplicitPriority returns a Priority carrying the given value.
func ExplicitPriority(value int) Priority {
	return Priority{Value: value, Explicit: true}
}

// Setting is a single line of the generated configuration: either a
// per-lint entry (SingleSetting) or a whole-group entry (GroupSetting).
type Setting interface {
	setting()
}

// SingleSetting assigns a level to one lint id.
type SingleSetting struct {
	Lint     string
	Priority Priority
	Level    catalog.Level
}

// GroupSetting assigns a level to an entire lint group.
type GroupSetting struct {
	Group    catalog.Group
	Priority Priority
	Level    catalog.Level
}

func (SingleSetting) setting() {}
func (GroupSetting) setting()  {}

// ConfigGroup is a commented block of settings. An empty comment emits no
// comment line.
type ConfigGroup struct {
	Comment  string
	Settings []Setting
}

// Config is the classifier's output: an ordered sequence of config groups.
// Order is observable; it is the emission order.
type Config struct {
	Groups []ConfigGroup
}

func allowSetting(id string) SingleSetting {
	return SingleSetting{Lint: id, Level: catalog.LevelAllow}
}

func denyGroup(group catalog.Group, priority Priority) GroupSetting {
	return GroupSetting{Group: group, Priority: priority, Level: catalog.LevelDeny}
}

func warnGroup(group catalog.Group, priority Priority) GroupSetting {
	return GroupSetting{Group: group, Priority: priority, Level: catalog.LevelWarn}
}
