// Package sphgrid turns smoothed-particle-hydrodynamics (SPH) simulation
// output — irregular particle samples carrying a scalar field — into
// continuous field estimates: rectangular pixel images and 1D
// cross-section profiles.
//
// 🚀 What is sphgrid?
//
//	A small, deterministic interpolation library that brings together:
//		• Kernel-weighted rasterization of particles onto a 2D pixel grid
//		• Scalar profiles sampled along an arbitrary line segment
//		• Per-particle bounding boxes, so cost scales with covered pixels
//		• Optional worker parallelism with an exact sum reduction
//
// ✨ Why choose sphgrid?
//
//   - Minimal API – two entry points, options structs, sentinel errors
//   - Pluggable kernels – any compact-support kernel via a 3-method contract
//   - Pluggable data – any column-addressable particle table via one interface
//   - Pure Go – no cgo, CPU-bound, no hidden global state
//
// Under the hood, everything is organized under two subpackages:
//
//	interp/    — the interpolation core: Interpolate2D, InterpolateCrossSection
//	particles/ — the boundary to tabular particle data (Source, Table)
//
// Quick ASCII example:
//
//	particles (x, y, m, rho, h, value)
//	    │  kernel w(q), support radkernel·h
//	    ▼
//	┌─────────┐
//	│ ░▒▓█▓▒░ │   image[row][col] — or a profile along P1──P2
//	└─────────┘
//
// Dive into the interp package docs for the exact accumulation rules,
// the error taxonomy, and the numerical edge cases each entry point keeps.
//
//	go get github.com/gosph/sphgrid/interp
package sphgrid
