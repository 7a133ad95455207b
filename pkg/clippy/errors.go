package clippy

import (
	"fmt"

	"github.com/leapstack-labs/clippygen/pkg/catalog"
)

// UnknownLintError reports an allow-override naming a lint id that the
// catalog does not contain under the expected group.
type UnknownLintError struct {
	ID    string
	Group catalog.Group
}

func (e *UnknownLintError) Error() string {
	return fmt.Sprintf("lint %s not in group %s", e.ID, e.Group)
}

// ExceptionNotInGroupError reports an exhaustive-split exception naming a
// lint id not found in the catalog for that group.
type ExceptionNotInGroupError struct {
	ID    string
	Group catalog.Group
}

func (e *ExceptionNotInGroupError) Error() string {
	return fmt.Sprintf("lint %s not part of group %s", e.ID, e.Group)
}
