package interp

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/gosph/sphgrid/particles"
)

// columns holds every column an interpolation reads, resolved once
// before the hot loop. All slices share the source's row order.
type columns struct {
	x, y, target []float64
	m, rho, h    []float64
}

// resolveColumns looks up the caller-selected axis/target columns and
// the canonical m/rho/h columns. Any failure surfaces the source's
// error (wrapping particles.ErrMissingColumn) before computation
// begins.
func resolveColumns(src particles.Source, xCol, yCol, targetCol string) (*columns, error) {
	c := &columns{}
	binds := []struct {
		name string
		dst  *[]float64
	}{
		{xCol, &c.x},
		{yCol, &c.y},
		{targetCol, &c.target},
		{particles.ColMass, &c.m},
		{particles.ColDensity, &c.rho},
		{particles.ColSmoothing, &c.h},
	}
	for _, b := range binds {
		vals, err := src.Column(b.name)
		if err != nil {
			return nil, err
		}
		*b.dst = vals
	}

	return c, nil
}

// validate checks every grid precondition before any allocation.
func (opts GridOptions) validate() error {
	if opts.PixWidthX <= 0 {
		return fmt.Errorf("%w: pixwidthx must be greater than zero", ErrInvalidParameter)
	}
	if opts.PixWidthY <= 0 {
		return fmt.Errorf("%w: pixwidthy must be greater than zero", ErrInvalidParameter)
	}
	if opts.PixCountX <= 0 {
		return fmt.Errorf("%w: pixcountx must be greater than zero", ErrInvalidParameter)
	}
	if opts.PixCountY <= 0 {
		return fmt.Errorf("%w: pixcounty must be greater than zero", ErrInvalidParameter)
	}
	if opts.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidParameter)
	}

	return nil
}

// Interpolate2D interpolates particle data across two directional axes
// onto a 2D grid of pixels.
//
// xCol and yCol select the axis columns, targetCol the scalar field to
// smooth; mass, density and smoothing length are read from the
// canonical m/rho/h columns. The returned image is indexed
// [row=y][col=x], zero-initialized, and owned by the caller.
//
// Each particle touches only the pixels inside its support disk of
// radius RadKernel()·h, so the cost is proportional to the covered
// pixels, not the image size. Particles whose dimensionless weight
// m/(rho·h²) is not positive contribute nothing. Note that h == 0
// makes the weight +Inf, which passes that filter and then poisons the
// covered pixels with non-finite values; callers are expected to feed
// positive smoothing lengths.
//
// With opts.Workers > 1 particles are split into contiguous blocks,
// each accumulated into a private image, and the partial images are
// summed in block order. The result is identical for a fixed worker
// count.
//
// Returns ErrInvalidParameter or ErrDimensionMismatch on bad options,
// or the source's error for an unknown column.
func Interpolate2D(
	src particles.Source,
	xCol, yCol, targetCol string,
	k Kernel,
	opts GridOptions,
) ([][]float64, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if k.NDims() != 2 {
		return nil, ErrDimensionMismatch
	}
	cols, err := resolveColumns(src, xCol, yCol, targetCol)
	if err != nil {
		return nil, err
	}

	image := newImage(opts.PixCountY, opts.PixCountX)
	n := src.Len()

	workers := opts.Workers
	if workers <= 1 || n < workers {
		accumulateGrid(image, cols, 0, n, k, opts)

		return image, nil
	}

	// One private image per worker; merged below in worker order so
	// the reduction is a plain elementwise sum with a fixed grouping.
	partials := make([][][]float64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * n / workers
		hi := (w + 1) * n / workers
		partial := newImage(opts.PixCountY, opts.PixCountX)
		partials[w] = partial
		wg.Add(1)
		go func(img [][]float64, lo, hi int) {
			defer wg.Done()
			accumulateGrid(img, cols, lo, hi, k, opts)
		}(partial, lo, hi)
	}
	wg.Wait()

	for _, partial := range partials {
		for j := range image {
			floats.Add(image[j], partial[j])
		}
	}

	return image, nil
}

// accumulateGrid adds the contributions of particles [lo, hi) to image.
// Writes are confined to image; it never reads back accumulated values.
func accumulateGrid(image [][]float64, c *columns, lo, hi int, k Kernel, opts GridOptions) {
	radkernel := k.RadKernel()

	for i := lo; i < hi; i++ {
		h := c.h[i]
		// dimensionless weight w_i = m_i / (rho_i * h_i²)
		weight := c.m[i] / (c.rho[i] * h * h)

		// skip particles with 0 weight
		if weight <= 0 {
			continue
		}

		// kernel radius scaled by the particle's h value
		radkern := radkernel * h
		term := weight * c.target[i]
		hi1 := 1 / h
		hi21 := hi1 * hi1

		px, py := c.x[i], c.y[i]

		// min/max pixel coordinates affected by this particle, clamped
		// to the image bounds
		ipixmin, ipixmax := pixelRange(px, radkern, opts.XMin, opts.PixWidthX, opts.PixCountX)
		jpixmin, jpixmax := pixelRange(py, radkern, opts.YMin, opts.PixWidthY, opts.PixCountY)
		if ipixmin >= ipixmax || jpixmin >= jpixmax {
			continue
		}

		// precalculate scaled squared x-distances once per particle;
		// they are reused for every affected row
		dx2i := make([]float64, ipixmax-ipixmin)
		for ip := range dx2i {
			dx := opts.XMin + (float64(ipixmin+ip)+0.5)*opts.PixWidthX - px
			dx2i[ip] = dx * dx * hi21
		}

		for jpix := jpixmin; jpix < jpixmax; jpix++ {
			ypix := opts.YMin + (float64(jpix)+0.5)*opts.PixWidthY
			dy := ypix - py
			dy2 := dy * dy * hi21

			row := image[jpix]
			for ip, dx2 := range dx2i {
				// contribution at (jpix, ipixmin+ip) due to the
				// particle at (px, py)
				q2 := dx2 + dy2
				row[ipixmin+ip] += term * k.W(math.Sqrt(q2))
			}
		}
	}
}

// newImage allocates a zeroed rows×cols image with one backing slice
// per row.
func newImage(rows, cols int) [][]float64 {
	image := make([][]float64, rows)
	for j := range image {
		image[j] = make([]float64, cols)
	}

	return image
}
