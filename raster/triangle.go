package raster

import (
	math "github.com/chewxy/math32"

	"github.com/embedraster/raster/internal/fixedpoint"
)

// halfSubpixel is half a sub-pixel (128 in 24.8 fixed point, i.e. 0.5 in
// float terms), used to nudge scanline endpoints that land on a negative
// barycentric weight back inside the triangle.
const halfSubpixel = 0.5

// baryAt computes the barycentric weights of (x,y) against tri's three
// original vertex positions.
func baryAt(tri *Triangle, x, y float32) (b0, b1, b2 float32, ok bool) {
	x0, y0 := tri.OrigX[0].ToFloat32(), tri.OrigY[0].ToFloat32()
	x1, y1 := tri.OrigX[1].ToFloat32(), tri.OrigY[1].ToFloat32()
	x2, y2 := tri.OrigX[2].ToFloat32(), tri.OrigY[2].ToFloat32()

	denom := (x1-x0)*(y2-y0) - (x2-x0)*(y1-y0)
	if denom == 0 {
		return 0, 0, 0, false
	}
	b0 = ((x1-x)*(y2-y) - (x2-x)*(y1-y)) / denom
	b1 = ((x2-x)*(y0-y) - (x0-x)*(y2-y)) / denom
	b2 = 1 - b0 - b1
	return b0, b1, b2, b0 >= 0 && b1 >= 0 && b2 >= 0
}

// nudgeInward advances x by half-subpixel steps toward other, at most as
// far as other itself, until baryAt(tri, x, y) reports all-nonnegative
// weights. Returns the corrected x and whether correction succeeded.
func nudgeInward(tri *Triangle, x, y, other float32) (float32, bool) {
	if _, _, _, ok := baryAt(tri, x, y); ok {
		return x, true
	}
	step := halfSubpixel
	if other < x {
		step = -step
	}
	for cur := x; (step > 0 && cur <= other) || (step < 0 && cur >= other); cur += step {
		if _, _, _, ok := baryAt(tri, cur, y); ok {
			return cur, true
		}
	}
	return x, false
}

func lerpEdge(xa, ya, xb, yb, y float32) float32 {
	if ya == yb {
		return xa
	}
	return xa + (y-ya)/(yb-ya)*(xb-xa)
}

// Render scans tri and emits one Fragment per covered pixel, via sink,
// in top-to-bottom, left-to-right order. perspective enables 1/w-weighted
// barycentric correction.
func Render(tri Triangle, perspective bool, sink Sink) {
	i0, i1, i2 := 0, 1, 2
	idx := [3]int{0, 1, 2}
	// Sort idx by ascending Y (insertion sort over 3 elements).
	if tri.Y[idx[0]] > tri.Y[idx[1]] {
		idx[0], idx[1] = idx[1], idx[0]
	}
	if tri.Y[idx[1]] > tri.Y[idx[2]] {
		idx[1], idx[2] = idx[2], idx[1]
	}
	if tri.Y[idx[0]] > tri.Y[idx[1]] {
		idx[0], idx[1] = idx[1], idx[0]
	}
	i0, i1, i2 = idx[0], idx[1], idx[2]

	yTop, yMid, yBot := tri.Y[i0], tri.Y[i1], tri.Y[i2]
	if yTop == yBot {
		return // zero-height (degenerate) triangle contributes no fragments
	}
	xTop, xMid, xBot := tri.X[i0], tri.X[i1], tri.X[i2]

	yStart := int(math.Ceil(yTop))
	yEnd := int(math.Floor(yBot))

	for y := yStart; y <= yEnd; y++ {
		fy := float32(y)
		xLong := lerpEdge(xTop, yTop, xBot, yBot, fy)

		var xShort float32
		switch {
		case fy < yMid:
			xShort = lerpEdge(xTop, yTop, xMid, yMid, fy)
		default:
			xShort = lerpEdge(xMid, yMid, xBot, yBot, fy)
		}

		left, right := xLong, xShort
		if left > right {
			left, right = right, left
		}

		var okL, okR bool
		left, okL = nudgeInward(&tri, left, fy, right)
		right, okR = nudgeInward(&tri, right, fy, left)
		if !okL || !okR {
			continue
		}

		xStart := int(math.Ceil(left))
		xEnd := int(math.Floor(right))
		for x := xStart; x <= xEnd; x++ {
			emitTrianglePixel(&tri, x, y, perspective, sink)
		}
	}
}

func emitTrianglePixel(tri *Triangle, x, y int, perspective bool, sink Sink) {
	fx, fy := float32(x)+0.5, float32(y)+0.5
	b0, b1, b2, ok := baryAt(tri, fx, fy)
	if !ok {
		if b0 < -0.01 || b1 < -0.01 || b2 < -0.01 {
			return
		}
		if b0 < 0 {
			b0 = 0
		}
		if b1 < 0 {
			b1 = 0
		}
		if b2 < 0 {
			b2 = 0
		}
	}
	linear := [3]float32{b0, b1, b2}
	persp := linear

	if perspective {
		w0, w1, w2 := math.Abs(tri.W[0]), math.Abs(tri.W[1]), math.Abs(tri.W[2])
		var sum float32
		iw0, iw1, iw2 := fixedpoint.SafeDivFloat32(1, w0), fixedpoint.SafeDivFloat32(1, w1), fixedpoint.SafeDivFloat32(1, w2)
		sum = b0*iw0 + b1*iw1 + b2*iw2
		wCorrected := fixedpoint.SafeDivFloat32(1, sum)
		persp[0] = b0 * iw0 * wCorrected
		persp[1] = b1 * iw1 * wCorrected
		persp[2] = b2 * iw2 * wCorrected
	}

	depthF := persp[0]*float32(tri.Z[0]) + persp[1]*float32(tri.Z[1]) + persp[2]*float32(tri.Z[2])

	fb0 := fixedpoint.FromFloat16(persp[0])
	fb1 := fixedpoint.FromFloat16(persp[1])
	fb2 := fixedpoint.FromFloat16(persp[2])

	var color [4]fixedpoint.Fixed16_16
	var tcoord [2]fixedpoint.Fixed16_16
	for c := 0; c < 4; c++ {
		color[c] = fb0.Mul(tri.Color[0][c]) + fb1.Mul(tri.Color[1][c]) + fb2.Mul(tri.Color[2][c])
	}
	for c := 0; c < 2; c++ {
		tcoord[c] = fb0.Mul(tri.TCoord[0][c]) + fb1.Mul(tri.TCoord[1][c]) + fb2.Mul(tri.TCoord[2][c])
	}

	sink(Fragment{
		X: x, Y: y,
		Depth:           int(depthF),
		BaryLinear:      linear,
		BaryPerspective: persp,
		Color:           color,
		TCoord:          tcoord,
		W:               persp[0]*tri.W[0] + persp[1]*tri.W[1] + persp[2]*tri.W[2],
		Tex:             tri.Tex,
	})
}
