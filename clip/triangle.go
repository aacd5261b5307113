package clip

// plane identifies one of the six frustum half-spaces by a function that
// is >= 0 for points inside it.
type plane func(v Vertex) float32

var planes = [6]plane{
	func(v Vertex) float32 { return v.Position[3] + v.Position[0] }, // x >= -w
	func(v Vertex) float32 { return v.Position[3] - v.Position[0] }, // x <= w
	func(v Vertex) float32 { return v.Position[3] + v.Position[1] }, // y >= -w
	func(v Vertex) float32 { return v.Position[3] - v.Position[1] }, // y <= w
	func(v Vertex) float32 { return v.Position[3] + v.Position[2] }, // z >= -w
	func(v Vertex) float32 { return v.Position[3] - v.Position[2] }, // z <= w
}

// clipAgainstPlane runs one Sutherland–Hodgman pass of poly against p.
func clipAgainstPlane(poly []Vertex, p plane) []Vertex {
	if len(poly) == 0 {
		return nil
	}
	var out []Vertex
	n := len(poly)
	for i := 0; i < n; i++ {
		curr := poly[i]
		prev := poly[(i-1+n)%n]
		currIn := p(curr) >= 0
		prevIn := p(prev) >= 0

		if currIn {
			if !prevIn {
				out = append(out, lerp(prev, curr, safeDiv(p(prev), p(prev)-p(curr))))
			}
			out = append(out, curr)
		} else if prevIn {
			out = append(out, lerp(prev, curr, safeDiv(p(prev), p(prev)-p(curr))))
		}
	}
	return out
}

// Triangle clips a triangle against all six frustum planes via sequential
// Sutherland–Hodgman passes and fan-triangulates the resulting convex
// polygon about its first vertex. Returns nil if the triangle is clipped
// away entirely.
func Triangle(v0, v1, v2 Vertex) [][3]Vertex {
	poly := []Vertex{v0, v1, v2}
	for _, p := range planes {
		poly = clipAgainstPlane(poly, p)
		if len(poly) == 0 {
			return nil
		}
	}
	if len(poly) < 3 {
		return nil
	}
	tris := make([][3]Vertex, 0, len(poly)-2)
	for i := 1; i < len(poly)-1; i++ {
		tris = append(tris, [3]Vertex{poly[0], poly[i], poly[i+1]})
	}
	return tris
}
