// Package interp rasterizes SPH particle data onto pixel grids and
// 1D cross-section profiles.
//
// What:
//
//   - Interpolate2D accumulates kernel-weighted particle contributions
//     into a dense [row][col] image over a rectangular pixel grid.
//   - InterpolateCrossSection samples the reconstructed field along a
//     straight line segment, divided into equal-length pixels.
//   - Kernel is the 3-method contract for compact-support smoothing
//     kernels; concrete kernels live outside this module.
//
// Why:
//
//   - Simulation snapshots: turn particle dumps into column-density or
//     temperature images without a plotting dependency.
//   - Cross-section plots: 1D profiles through shocks, discs, clumps.
//   - Pipelines: both outputs are plain float64 slices, owned by the
//     caller, ready for any downstream renderer.
//
// Complexity:
//
//   - Interpolate2D:           O(Σᵢ pixels covered by particle i's
//     support disk), NOT O(particles × image size). Memory: O(image).
//   - InterpolateCrossSection: O(Σᵢ segment pixels inside particle i's
//     support circle). Memory: O(pixcount).
//
// Options:
//
//   - GridOptions: pixel extents, counts, grid origin, worker count.
//   - CrossSectionOptions: segment endpoints and pixel count.
//
// Errors:
//
//   - ErrInvalidParameter: non-positive pixel width/count, negative
//     worker count, coincident cross-section endpoints.
//   - ErrDimensionMismatch: kernel does not declare two dimensions.
//   - particles.ErrMissingColumn: propagated unchanged from the data
//     source, before any accumulation.
//
// Numerical edge cases are kept, not patched: a particle with h == 0
// yields an infinite dimensionless weight, is not skipped by the
// weight filter, and propagates non-finite values into the output.
// See the entry-point docs for the exact rules.
package interp
