package clip

// Vertex is a clip-space vertex carrying the interpolants that must be
// linearly re-derived at every new vertex a clip plane introduces.
type Vertex struct {
	Position [4]float32
	Color    [4]float32
	Normal   [3]float32
	TCoord   [2]float32
}

// lerp linearly interpolates every field of a and b by t ∈ [0,1].
func lerp(a, b Vertex, t float32) Vertex {
	var v Vertex
	for i := range v.Position {
		v.Position[i] = a.Position[i] + t*(b.Position[i]-a.Position[i])
	}
	for i := range v.Color {
		v.Color[i] = a.Color[i] + t*(b.Color[i]-a.Color[i])
	}
	for i := range v.Normal {
		v.Normal[i] = a.Normal[i] + t*(b.Normal[i]-a.Normal[i])
	}
	for i := range v.TCoord {
		v.TCoord[i] = a.TCoord[i] + t*(b.TCoord[i]-a.TCoord[i])
	}
	return v
}
