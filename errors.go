package logicsim

import (
	"fmt"

	"github.com/pkg/errors"
)

// A MissingComponentError reports a component placement naming a chip absent
// from the library at build time: either the record is corrupted or it
// references a chip that failed to load earlier. The offending composite is
// skipped; loading continues.
//
type MissingComponentError struct {
	Chip      string // composite being built
	Component string // missing component reference
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("chip %q references unknown component %q", e.Chip, e.Component)
}

// A PrimitiveLoadError reports that a required built-in chip failed to
// register. The library cannot function without its primitives, so this
// aborts the whole load.
//
type PrimitiveLoadError struct {
	Name string
	Err  error
}

func (e *PrimitiveLoadError) Error() string {
	return fmt.Sprintf("primitive chip %q failed to register: %v", e.Name, e.Err)
}

// Cause returns the underlying registration error.
//
func (e *PrimitiveLoadError) Cause() error { return e.Err }

// An UnmarkedCycleError reports that propagation ran into a connection cycle
// whose closing edge was not marked cyclic. The loader only ever wires
// unmarked edges into an acyclic shape, so this signals a corrupted or
// hand-edited definition.
//
type UnmarkedCycleError struct {
	Chip string
}

func (e *UnmarkedCycleError) Error() string {
	return fmt.Sprintf("unmarked feedback cycle through chip %q", e.Chip)
}

// IsMissingComponent reports whether err, at its cause, is a
// MissingComponentError.
//
func IsMissingComponent(err error) bool {
	_, ok := errors.Cause(err).(*MissingComponentError)
	return ok
}

// IsUnmarkedCycle reports whether err, at its cause, is an UnmarkedCycleError.
//
func IsUnmarkedCycle(err error) bool {
	_, ok := errors.Cause(err).(*UnmarkedCycleError)
	return ok
}
