package clippy

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/clippygen/pkg/catalog"
)

// Render emits the configuration as a TOML fragment. The header is
// [workspace.lints.clippy] when workspace is set, [lints.clippy] otherwise.
// Consecutive config groups are separated by exactly one blank line; the
// final setting line carries no trailing newline.
func Render(cfg *Config, workspace bool) string {
	var b strings.Builder
	if workspace {
		b.WriteString("[workspace.lints.clippy]\n")
	} else {
		b.WriteString("[lints.clippy]\n")
	}

	for gi, group := range cfg.Groups {
		lastGroup := gi == len(cfg.Groups)-1
		if group.Comment != "" {
			b.WriteString("# ")
			b.WriteString(group.Comment)
			b.WriteByte('\n')
		}
		for si, setting := range group.Settings {
			writeSetting(&b, setting)
			if si < len(group.Settings)-1 || !lastGroup {
				b.WriteByte('\n')
			}
		}
		if !lastGroup {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func writeSetting(b *strings.Builder, setting Setting) {
	var (
		key      string
		level    catalog.Level
		priority Priority
	)
	switch s := setting.(type) {
	case SingleSetting:
		key, level, priority = s.Lint, s.Level, s.Priority
	case GroupSetting:
		key, level, priority = s.Group.String(), s.Level, s.Priority
	}

	if priority.Explicit {
		fmt.Fprintf(b, "%s = { level = %q, priority = %d }", key, level.String(), priority.Value)
	} else {
		fmt.Fprintf(b, "%s = %q", key, level.String())
	}
}
