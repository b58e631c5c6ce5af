// Package interp defines the kernel contract, options, and sentinel
// errors for the sphgrid interpolation core.
package interp

import "errors"

// Sentinel errors for interpolation entry points.
var (
	// ErrInvalidParameter indicates a precondition violation in the
	// supplied options: non-positive pixel width or count, a negative
	// worker count, or a zero-length cross-section line. Returned
	// wrapped with a detail message; match with errors.Is.
	ErrInvalidParameter = errors.New("interp: invalid parameter")
	// ErrDimensionMismatch indicates the kernel does not declare
	// exactly two dimensions.
	ErrDimensionMismatch = errors.New("interp: kernel must be two-dimensional")
)

// Kernel is the contract for a compact-support SPH smoothing kernel.
//
// W evaluates the dimensionless weight at q = r/h ≥ 0. W is only ever
// queried for q ≥ 0; values beyond RadKernel() are treated as zero by
// construction of each particle's bounding box, so implementations
// need not be meaningful there. RadKernel returns the compact-support
// multiplier (the kernel is zero beyond RadKernel()·h). NDims returns
// the dimensionality the kernel is normalized for; both entry points
// require NDims() == 2.
type Kernel interface {
	W(q float64) float64
	RadKernel() float64
	NDims() int
}

// GridOptions configures Interpolate2D.
//
// Fields:
//   - PixWidthX, PixWidthY — width/height of one pixel in data space.
//     Must be > 0.
//   - XMin, YMin           — data-space coordinates of the grid origin
//     (lower-left corner of pixel (0,0)).
//   - PixCountX, PixCountY — image size in pixels. Must be > 0.
//   - Workers              — number of goroutines accumulating
//     particles. 0 or 1 runs serially; must not be negative. The
//     result is identical for a fixed worker count.
type GridOptions struct {
	PixWidthX, PixWidthY float64
	XMin, YMin           float64
	PixCountX, PixCountY int
	Workers              int
}

// DefaultGridOptions returns a GridOptions with default settings:
// a 480×480 image of unit pixels anchored at the origin, serial.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		PixWidthX: 1,
		PixWidthY: 1,
		PixCountX: 480,
		PixCountY: 480,
	}
}

// CrossSectionOptions configures InterpolateCrossSection.
//
// Fields:
//   - X1, Y1, X2, Y2 — data-space endpoints of the cross-section line.
//     Must not coincide.
//   - PixCount       — number of equal-length segments between the
//     endpoints. Must be > 0.
type CrossSectionOptions struct {
	X1, Y1, X2, Y2 float64
	PixCount       int
}

// DefaultCrossSectionOptions returns a CrossSectionOptions with default
// settings: the unit diagonal (0,0)→(1,1) divided into 500 segments.
func DefaultCrossSectionOptions() CrossSectionOptions {
	return CrossSectionOptions{
		X2:       1,
		Y2:       1,
		PixCount: 500,
	}
}
