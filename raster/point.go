package raster

// Disk scans pt and emits one Fragment per pixel of the disk of radius
// pt.Radius centered on pt's raster position, via sink, using the midpoint
// circle algorithm: cardinal points, the horizontal diameter, then paired
// horizontal spans per octant step. Each octant step keeps the largest x
// with x*x+y*y <= r*r, so the disk is exactly the pixels within Euclidean
// distance r of the center (29 pixels for r=3). Barycentrics are always (0,0,0); color
// and depth are uniform across the disk.
func Disk(pt Point, sink Sink) {
	cx, cy := int(pt.X), int(pt.Y)
	r := pt.Radius
	if r < 0 {
		return
	}

	emit := func(x, y int) {
		sink(Fragment{
			X: x, Y: y,
			Depth:           pt.Z,
			BaryLinear:      [3]float32{0, 0, 0},
			BaryPerspective: [3]float32{0, 0, 0},
			Color:           pt.Color,
			W:               pt.W,
			Tex:             pt.Tex,
		})
	}

	hspan := func(y, xa, xb int) {
		if xa > xb {
			xa, xb = xb, xa
		}
		for x := xa; x <= xb; x++ {
			emit(x, y)
		}
	}

	if r == 0 {
		emit(cx, cy)
		return
	}

	// Cardinal points.
	emit(cx, cy+r)
	emit(cx, cy-r)
	emit(cx+r, cy)
	emit(cx-r, cy)

	// Horizontal diameter.
	hspan(cy, cx-r, cx+r)

	x, y := r, 0
	decision := 0 // x*x + y*y - r*r
	for x > y {
		y++
		decision += 2*y - 1
		for decision > 0 {
			x--
			decision -= 2*x + 1
		}
		if x < y {
			break
		}
		hspan(cy+y, cx-x, cx+x)
		hspan(cy-y, cx-x, cx+x)
		if x != y {
			hspan(cy+x, cx-y, cx+y)
			hspan(cy-x, cx-y, cx+y)
		}
	}
}
