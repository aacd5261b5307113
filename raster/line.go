package raster

import (
	math "github.com/chewxy/math32"

	"github.com/embedraster/raster/internal/fixedpoint"
)

// Segment scans ln and emits one Fragment per pixel along a Bresenham
// path from its first vertex to its second, via sink.
func Segment(ln Line, perspective bool, sink Sink) {
	x0, y0 := int(ln.X[0]), int(ln.Y[0])
	x1, y1 := int(ln.X[1]), int(ln.Y[1])

	ddx, ddy := ln.X[1]-ln.X[0], ln.Y[1]-ln.Y[0]
	length := math.Sqrt(ddx*ddx + ddy*ddy)
	if length == 0 {
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	walked := float32(0)
	for {
		emitLinePixel(&ln, x, y, walked/length, perspective, sink)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		stepped := false
		if e2 >= dy {
			err += dy
			x += sx
			stepped = true
		}
		if e2 <= dx {
			err += dx
			y += sy
			stepped = true
		}
		if stepped {
			walked++
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func emitLinePixel(ln *Line, x, y int, t float32, perspective bool, sink Sink) {
	linear := [3]float32{1 - t, t, 0}
	persp := linear

	if perspective {
		w0, w1 := math.Abs(ln.W[0]), math.Abs(ln.W[1])
		iw0 := fixedpoint.SafeDivFloat32(1, w0)
		iw1 := fixedpoint.SafeDivFloat32(1, w1)
		sum := linear[0]*iw0 + linear[1]*iw1
		wCorrected := fixedpoint.SafeDivFloat32(1, sum)
		persp[0] = linear[0] * iw0 * wCorrected
		persp[1] = linear[1] * iw1 * wCorrected
	}

	depthF := persp[0]*float32(ln.Z[0]) + persp[1]*float32(ln.Z[1])

	fb0 := fixedpoint.FromFloat16(persp[0])
	fb1 := fixedpoint.FromFloat16(persp[1])

	var color [4]fixedpoint.Fixed16_16
	var tcoord [2]fixedpoint.Fixed16_16
	for c := 0; c < 4; c++ {
		color[c] = fb0.Mul(ln.Color[0][c]) + fb1.Mul(ln.Color[1][c])
	}
	for c := 0; c < 2; c++ {
		tcoord[c] = fb0.Mul(ln.TCoord[0][c]) + fb1.Mul(ln.TCoord[1][c])
	}

	sink(Fragment{
		X: x, Y: y,
		Depth:           int(depthF),
		BaryLinear:      linear,
		BaryPerspective: persp,
		Color:           color,
		TCoord:          tcoord,
		W:               persp[0]*ln.W[0] + persp[1]*ln.W[1],
		Tex:             ln.Tex,
	})
}
