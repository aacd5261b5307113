package shader

import (
	"encoding/binary"
	"math"
)

const floatSize = 4

// VertexInput carries every value a vertex shader could possibly read; only
// the ones named by an enabled VertexSet bit are appended to the blob.
type VertexInput struct {
	Kind     float32 // primitive kind tag (triangle/line/point), passed as a float per the source's untyped blob
	Position [4]float32
	Color    [4]float32
	Normal   [3]float32
	TCoord   [2]float32
}

// FragmentInput carries every value a fragment shader could possibly read.
type FragmentInput struct {
	Current     [4]float32
	Primary     [4]float32
	TextureColor [4]float32
	BaryLinear      [3]float32
	BaryPerspective [3]float32
	X, Y        float32
	DestDepth   float32
	FragDepth   float32
}

// VertexFunc is the user-supplied vertex shader callback. An absent
// callback means the vertex pass returns the input position unchanged.
type VertexFunc func(blob []byte, tags []Kind) [4]float32

// FragmentFunc is the user-supplied fragment shader callback. An absent
// callback means the fragment pass returns the incoming color unchanged.
// Setting *discard to true drops the fragment.
type FragmentFunc func(blob []byte, tags []Kind, discard *bool) [4]float32

func putVec(blob []byte, off int, v []float32) int {
	for _, f := range v {
		binary.LittleEndian.PutUint32(blob[off:], math.Float32bits(f))
		off += floatSize
	}
	return off
}

// BuildVertexBlob appends each enabled attribute in in's VertexOrder,
// returning the blob and the parallel tag array. An empty set yields a nil
// blob and zero tags, per the no-attribute contract.
func BuildVertexBlob(enabled VertexSet, in VertexInput) ([]byte, []Kind) {
	if enabled == 0 {
		return nil, nil
	}
	var tags []Kind
	size := 0
	for _, k := range VertexOrder {
		if enabled&vertexBit(k) == 0 {
			continue
		}
		tags = append(tags, k)
		size += attrSize(k)
	}
	blob := make([]byte, size)
	off := 0
	for _, k := range tags {
		switch k {
		case VertexType:
			off = putVec(blob, off, []float32{in.Kind})
		case VertexPosition:
			off = putVec(blob, off, in.Position[:])
		case VertexColor:
			off = putVec(blob, off, in.Color[:])
		case VertexNormals:
			off = putVec(blob, off, in.Normal[:])
		case VertexTextureCoordinates:
			off = putVec(blob, off, in.TCoord[:])
		}
	}
	return blob, tags
}

// BuildFragmentBlob appends each enabled attribute in in's FragmentOrder,
// returning the blob and the parallel tag array.
func BuildFragmentBlob(enabled FragmentSet, in FragmentInput) ([]byte, []Kind) {
	if enabled == 0 {
		return nil, nil
	}
	var tags []Kind
	size := 0
	for _, k := range FragmentOrder {
		if enabled&fragmentBit(k) == 0 {
			continue
		}
		tags = append(tags, k)
		size += attrSize(k)
	}
	blob := make([]byte, size)
	off := 0
	for _, k := range tags {
		switch k {
		case PrimitiveColor:
			off = putVec(blob, off, in.Primary[:])
		case TextureColor:
			off = putVec(blob, off, in.TextureColor[:])
		case FragmentColor:
			off = putVec(blob, off, in.Current[:])
		case BaryLinear:
			off = putVec(blob, off, in.BaryLinear[:])
		case BaryPerspective:
			off = putVec(blob, off, in.BaryPerspective[:])
		case FragmentPosition:
			off = putVec(blob, off, []float32{in.X, in.Y})
		case FragmentDepth:
			off = putVec(blob, off, []float32{in.FragDepth})
		}
	}
	_ = in.DestDepth // destination depth is available to callers for the depth test, not part of the blob
	return blob, tags
}

// attrSize returns the byte width of one attribute's value in the blob.
func attrSize(k Kind) int {
	switch k {
	case VertexType, FragmentDepth:
		return floatSize
	case VertexNormals, BaryLinear, BaryPerspective:
		return 3 * floatSize
	case VertexTextureCoordinates, FragmentPosition:
		return 2 * floatSize
	default:
		return 4 * floatSize
	}
}

// RunVertex invokes fn if non-nil, else passes the input position through
// unchanged.
func RunVertex(fn VertexFunc, enabled VertexSet, in VertexInput) [4]float32 {
	blob, tags := BuildVertexBlob(enabled, in)
	if fn == nil {
		return in.Position
	}
	return fn(blob, tags)
}

// RunFragment invokes fn if non-nil, else passes the current color through
// unchanged. Returns the final color and whether the fragment was
// discarded.
func RunFragment(fn FragmentFunc, enabled FragmentSet, in FragmentInput) (color [4]float32, discard bool) {
	blob, tags := BuildFragmentBlob(enabled, in)
	if fn == nil {
		return in.Current, false
	}
	color = fn(blob, tags, &discard)
	return color, discard
}
