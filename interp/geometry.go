package interp

import "math"

// Closeness tolerances for endpoint and slope degeneracy checks,
// relative and absolute (|a−b| ≤ atol + rtol·|b|).
const (
	closeRtol = 1e-5
	closeAtol = 1e-8
)

// isClose reports whether a and b are equal within the package
// tolerances. Not symmetric in its arguments: the relative term is
// scaled by |b|.
func isClose(a, b float64) bool {
	return math.Abs(a-b) <= closeAtol+closeRtol*math.Abs(b)
}

// roundIndex converts a fractional pixel coordinate to an index,
// rounding halves to even.
func roundIndex(v float64) int {
	return int(math.RoundToEven(v))
}

// pixelRange maps a particle's support interval
// [center−radius, center+radius] on one axis onto the half-open pixel
// index range [lo, hi), clamped to the axis bounds. The lower bound is
// clamped to ≥ 0 and the upper to ≤ count; lo ≥ hi means the support
// does not overlap the axis and the particle contributes nothing.
// Complexity: O(1).
func pixelRange(center, radius, origin, pixwidth float64, count int) (lo, hi int) {
	lo = roundIndex((center - radius - origin) / pixwidth)
	hi = roundIndex((center + radius - origin) / pixwidth)
	if lo < 0 {
		lo = 0
	}
	if hi > count {
		hi = count
	}

	return lo, hi
}

// clampIndex restricts an index to [lo, hi].
func clampIndex(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// clamp restricts v to [lo, hi], lower bound first; when lo > hi the
// upper bound wins.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}

	return v
}
