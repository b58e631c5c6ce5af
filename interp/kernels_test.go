package interp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gosph/sphgrid/particles"
)

// cubicSpline is the standard M4 cubic spline kernel normalized for
// two dimensions, with compact support radius 2. It integrates to 1
// over its support, which the conservation tests rely on.
type cubicSpline struct{}

func (cubicSpline) RadKernel() float64 { return 2 }

func (cubicSpline) NDims() int { return 2 }

func (cubicSpline) W(q float64) float64 {
	const sigma = 10 / (7 * math.Pi)
	switch {
	case q < 1:
		return sigma * (1 - 1.5*q*q + 0.75*q*q*q)
	case q < 2:
		d := 2 - q
		return sigma * 0.25 * d * d * d
	default:
		return 0
	}
}

// flatKernel returns weight 1 everywhere inside its support. Not
// normalized; handy for tests that want exact output values.
type flatKernel struct{}

func (flatKernel) RadKernel() float64 { return 2 }

func (flatKernel) NDims() int { return 2 }

func (flatKernel) W(q float64) float64 {
	if q > 2 {
		return 0
	}

	return 1
}

// kernel3D wraps another kernel but claims three dimensions, for
// dimensionality-check tests.
type kernel3D struct{ cubicSpline }

func (kernel3D) NDims() int { return 3 }

// newTable builds a particle table from parallel per-particle slices.
func newTable(t *testing.T, x, y, m, rho, h, val []float64) *particles.Table {
	t.Helper()
	tbl, err := particles.NewTable(map[string][]float64{
		"x":                    x,
		"y":                    y,
		"val":                  val,
		particles.ColMass:      m,
		particles.ColDensity:   rho,
		particles.ColSmoothing: h,
	})
	require.NoError(t, err)

	return tbl
}

// uniformTable builds a table of n identical-property particles
// (m=rho=val=1, the given h) at the supplied positions.
func uniformTable(t *testing.T, h float64, xy ...[2]float64) *particles.Table {
	t.Helper()
	n := len(xy)
	x := make([]float64, n)
	y := make([]float64, n)
	ones := make([]float64, n)
	hs := make([]float64, n)
	for i, p := range xy {
		x[i] = p[0]
		y[i] = p[1]
		ones[i] = 1
		hs[i] = h
	}

	return newTable(t, x, y, ones, ones, hs, ones)
}
