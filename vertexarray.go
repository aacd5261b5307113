package embedraster

// PrimitiveKind identifies the primitive a draw call assembles vertices
// into, and the tag passed to the vertex shader as VERTEX_TYPE.
type PrimitiveKind uint8

const (
	Triangles PrimitiveKind = iota
	Lines
	Points
)

// verticesPerPrimitive returns how many vertex records one primitive of
// kind k consumes.
func verticesPerPrimitive(k PrimitiveKind) int {
	switch k {
	case Triangles:
		return 3
	case Lines:
		return 2
	default:
		return 1
	}
}

// VertexArray describes a strided float32 vertex buffer: per-attribute
// enable flag, component count, offset, and stride. Offsets and
// strides are measured in float32 elements, not bytes, since the backing
// array is already a []float32 (the raw-pointer/stride-in-bytes framing of
// the source's array reader is not meaningful in Go).
type VertexArray struct {
	Data []float32

	PositionEnabled bool
	PositionComponents int // 2..4
	PositionOffset      int
	PositionStride      int

	ColorEnabled    bool
	ColorComponents int // 3..4
	ColorOffset     int
	ColorStride     int

	NormalEnabled bool
	NormalOffset  int
	NormalStride  int

	TCoordEnabled bool
	TCoordOffset  int
	TCoordStride  int
}

// Vertex is one unpacked vertex record: homogeneous position, RGBA color,
// normal, and texture coordinates, with the documented defaults applied
// for any attribute absent from the vertex array or not enabled.
type Vertex struct {
	Position [4]float32
	Color    [4]float32
	Normal   [3]float32
	TCoord   [2]float32
}

func defaultVertex() Vertex {
	return Vertex{
		Position: [4]float32{0, 0, 0, 1},
		Color:    [4]float32{0, 0, 0, 1},
	}
}

// readVertex unpacks the vertex record at the given index (not byte
// offset) per va's stride/offset/component-count description.
func readVertex(va VertexArray, index int) Vertex {
	v := defaultVertex()
	if va.PositionEnabled {
		base := va.PositionOffset + index*va.PositionStride
		for i := 0; i < va.PositionComponents && i < 4; i++ {
			v.Position[i] = va.Data[base+i]
		}
		if va.PositionComponents < 4 {
			v.Position[3] = 1
		}
	}
	if va.ColorEnabled {
		base := va.ColorOffset + index*va.ColorStride
		for i := 0; i < va.ColorComponents && i < 4; i++ {
			v.Color[i] = va.Data[base+i]
		}
		if va.ColorComponents < 4 {
			v.Color[3] = 1
		}
	}
	if va.NormalEnabled {
		base := va.NormalOffset + index*va.NormalStride
		for i := 0; i < 3; i++ {
			v.Normal[i] = va.Data[base+i]
		}
	}
	if va.TCoordEnabled {
		base := va.TCoordOffset + index*va.TCoordStride
		for i := 0; i < 2; i++ {
			v.TCoord[i] = va.Data[base+i]
		}
	}
	return v
}
