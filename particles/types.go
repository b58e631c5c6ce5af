// Package particles defines the boundary to the tabular particle data
// consumed by the sphgrid interpolators: core types, canonical column
// names, and sentinel errors.
package particles

import "errors"

// Sentinel errors for particle-data access.
var (
	// ErrMissingColumn indicates a requested column name is not present
	// in the data source.
	ErrMissingColumn = errors.New("particles: column not found")
	// ErrNoColumns indicates a table was constructed with no columns.
	ErrNoColumns = errors.New("particles: table must have at least one column")
	// ErrRaggedColumns indicates columns of differing lengths.
	ErrRaggedColumns = errors.New("particles: all columns must have the same length")
)

// Canonical column names every interpolation consults, in addition to
// the caller-selected axis and target columns.
const (
	// ColMass is the per-particle mass column.
	ColMass = "m"
	// ColDensity is the per-particle density column.
	ColDensity = "rho"
	// ColSmoothing is the per-particle smoothing-length column.
	ColSmoothing = "h"
)

// Source is an ordered, column-addressable collection of particles.
// All columns have length Len(); Column resolves a name to the full
// column of values or fails with ErrMissingColumn. Returned slices are
// owned by the Source and must not be modified by callers.
//
// Source is the seam to whatever tabular container holds the
// simulation output; the interpolators resolve every column they need
// exactly once, up front, before any computation begins.
type Source interface {
	// Len returns the number of particles (rows).
	Len() int
	// Column returns the values of the named column, or an error
	// wrapping ErrMissingColumn if no such column exists.
	Column(name string) ([]float64, error)
}
