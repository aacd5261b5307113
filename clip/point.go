package clip

// PointAccept reports whether a homogeneous point lies within the six
// canonical frustum planes: -w ≤ x,y,z ≤ w.
func PointAccept(p [4]float32) bool {
	w := p[3]
	return p[0] >= -w && p[0] <= w &&
		p[1] >= -w && p[1] <= w &&
		p[2] >= -w && p[2] <= w
}
