package clip

const maxOutcodeIterations = 10

// outcode bits, one per plane: x<-w, x>w, y<-w, y>w, z<-w, z>w.
const (
	outLeft = 1 << iota
	outRight
	outBottom
	outTop
	outNear
	outFar
)

func outcode(p [4]float32) int {
	w := p[3]
	code := 0
	if p[0] < -w {
		code |= outLeft
	}
	if p[0] > w {
		code |= outRight
	}
	if p[1] < -w {
		code |= outBottom
	}
	if p[1] > w {
		code |= outTop
	}
	if p[2] < -w {
		code |= outNear
	}
	if p[2] > w {
		code |= outFar
	}
	return code
}

// intersect computes the parameter t ∈ [0,1] along the segment p0→p1 at
// which it crosses the plane selected by a single outcode bit, and the
// resulting homogeneous point.
func intersect(p0, p1 [4]float32, bit int) (t float32, pt [4]float32) {
	dx := p1[0] - p0[0]
	dy := p1[1] - p0[1]
	dz := p1[2] - p0[2]
	dw := p1[3] - p0[3]

	switch bit {
	case outLeft:
		t = safeDiv(-p0[3]-p0[0], dx+dw)
	case outRight:
		t = safeDiv(p0[3]-p0[0], dx-dw)
	case outBottom:
		t = safeDiv(-p0[3]-p0[1], dy+dw)
	case outTop:
		t = safeDiv(p0[3]-p0[1], dy-dw)
	case outNear:
		t = safeDiv(-p0[3]-p0[2], dz+dw)
	case outFar:
		t = safeDiv(p0[3]-p0[2], dz-dw)
	}

	pt = [4]float32{
		p0[0] + t*dx,
		p0[1] + t*dy,
		p0[2] + t*dz,
		p0[3] + t*dw,
	}
	return t, pt
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return 0
	}
	return a / b
}

func lowestBit(code int) int {
	return code & (-code)
}

// LineResult describes the outcome of clipping a line segment.
type LineResult struct {
	Accept bool
	P0, P1 [4]float32
	// T0, T1 are the parameters along the original (pre-clip) segment at
	// which the (possibly clipped) endpoints lie: 0 at the original P0, 1
	// at the original P1. Used to seed barycentric interpolation across a
	// clipped line.
	T0, T1 float32
}

// Line clips the segment p0→p1 against the six frustum planes using
// Cohen–Sutherland outcodes.
func Line(p0, p1 [4]float32) LineResult {
	t0, t1 := float32(0), float32(1)

	for i := 0; i < maxOutcodeIterations; i++ {
		oc0 := outcode(p0)
		oc1 := outcode(p1)

		if oc0 == 0 && oc1 == 0 {
			return LineResult{Accept: true, P0: p0, P1: p1, T0: t0, T1: t1}
		}
		if oc0&oc1 != 0 {
			return LineResult{Accept: false}
		}

		if oc0 != 0 {
			t, pt := intersect(p0, p1, lowestBit(oc0))
			t0 = t0 + t*(t1-t0)
			p0 = pt
		} else {
			t, pt := intersect(p0, p1, lowestBit(oc1))
			t1 = t0 + t*(t1-t0)
			p1 = pt
		}
	}
	return LineResult{Accept: false}
}
