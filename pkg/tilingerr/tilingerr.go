// Package tilingerr collects the kernel's typed error taxonomy so callers
// can discriminate failure modes with errors.As instead of string matching
// (spec.md §7).
package tilingerr

import "fmt"

// Kind identifies one of the kernel's top-level failure categories.
type Kind int

const (
	// KindInvalidTile wraps pkg/tile.InvalidTileError.
	KindInvalidTile Kind = iota
	// KindInvalidRegion wraps pkg/placement.InvalidRegionError.
	KindInvalidRegion
	// KindLatticeInvariant wraps pkg/lattice.InvariantError.
	KindLatticeInvariant
	// KindModelInconsistent wraps pkg/sat.ModelInconsistentError.
	KindModelInconsistent
	// KindSolverError wraps pkg/sat.SolverError.
	KindSolverError
	// KindCancelled reports the caller's context being cancelled mid-run.
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindInvalidTile:
		return "InvalidTile"
	case KindInvalidRegion:
		return "InvalidRegion"
	case KindLatticeInvariant:
		return "LatticeInvariant"
	case KindModelInconsistent:
		return "ModelInconsistent"
	case KindSolverError:
		return "SolverError"
	case KindCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Error is the uniform wrapper pkg/tiling returns for every failure surface
// named in spec.md §7. Callers that need the concrete cause should
// errors.As into the wrapped type (e.g. *sat.SolverError) rather than
// inspecting Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("tilekernel: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap builds an *Error of the given kind around err. Returns nil if err is
// nil, so call sites can write `return tilingerr.Wrap(Kind, err)`
// unconditionally.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}
