package raster

import (
	"github.com/embedraster/raster/internal/fixedpoint"
	"github.com/embedraster/raster/texture"
)

// Triangle is a raster-space triangle ready for scan conversion: per-vertex
// raster position, depth, clip-space w, color, and texture coordinates,
// plus the texture unit snapshot active when the primitive was submitted.
//
// OrigX/OrigY hold the 24.8 fixed-point vertex positions that define the
// barycentric domain (entity §3's "original" positions). For an unclipped
// triangle these equal X/Y; a triangle produced by clipping a larger
// polygon carries its own corner positions in X/Y for scan geometry while
// OrigX/OrigY (and the attribute arrays, which stay index-aligned with
// them) still describe the same triangle, since each clipped sub-triangle
// is rasterized as an independent, self-contained triangle rather than
// re-deriving barycentrics from a separate parent record.
type Triangle struct {
	X, Y         [3]float32
	OrigX, OrigY [3]fixedpoint.Fixed24_8
	Z            [3]int
	W            [3]float32
	Color        [3][4]fixedpoint.Fixed16_16
	TCoord       [3][2]fixedpoint.Fixed16_16
	Tex          texture.Unit
}

// Line is a raster-space line segment ready for Bresenham stepping.
type Line struct {
	X, Y   [2]float32
	Z      [2]int
	W      [2]float32
	Color  [2][4]fixedpoint.Fixed16_16
	TCoord [2][2]fixedpoint.Fixed16_16
	Tex    texture.Unit
}

// Point is a raster-space point ready for disk fill.
type Point struct {
	X, Y   float32
	Radius int
	Z      int
	W      float32
	Color  [4]fixedpoint.Fixed16_16
	Tex    texture.Unit
}

// Fragment is one candidate pixel emitted by a rasterizer, carrying the
// interpolated values the fragment finalizer needs: position, depth,
// both linear and perspective-corrected barycentrics, primary color, and
// texture coordinates (for sampling the snapshot texture unit).
type Fragment struct {
	X, Y            int
	Depth           int
	BaryLinear      [3]float32
	BaryPerspective [3]float32
	Color           [4]fixedpoint.Fixed16_16
	TCoord          [2]fixedpoint.Fixed16_16
	W               float32
	Tex             texture.Unit
}

// Sink receives each fragment a rasterizer emits, in the deterministic
// order specified for that primitive kind.
type Sink func(Fragment)
