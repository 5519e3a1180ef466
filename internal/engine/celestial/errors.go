// Package celestial generates the geometry of the scene's bodies and their
// orbit paths and owns the GPU resources built from it.
package celestial

import "errors"

// Precondition errors returned by the constructors.
var (
	ErrInvalidTessellation = errors.New("celestial: sector and stack counts must be at least 1")
	ErrInvalidSegments     = errors.New("celestial: orbit needs at least 3 segments")
	ErrNegativeRadius      = errors.New("celestial: radius must not be negative")
)
