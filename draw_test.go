package embedraster

import (
	"testing"

	"github.com/embedraster/raster/depth"
	"github.com/embedraster/raster/internal/fixedpoint"
	"github.com/embedraster/raster/pixel"
	"github.com/embedraster/raster/texture"
)

func readPixel(cb *ColorBuffer, x, y int) (r, g, b, a float32) {
	bpp := pixel.BytesPerPixel(cb.Format)
	return pixel.Decode(cb.Data, (y*cb.Width+x)*bpp, cb.Format)
}

func approxByte(f float32) int {
	return int(f*255 + 0.5)
}

func TestRedTriangleCentroid(t *testing.T) {
	c := NewContext()
	cb := newColorBuffer(64, 64, pixel.R8G8B8A8)
	c.BindColorBuffer(cb)
	c.SetVertexArray(VertexArray{
		Data:               triangleVertexData(),
		PositionEnabled:    true,
		PositionComponents: 4,
		PositionStride:     8,
		ColorEnabled:       true,
		ColorComponents:    4,
		ColorOffset:        4,
		ColorStride:        8,
	})
	c.DrawArray(Triangles, 3)

	r, g, b, a := readPixel(cb, 32, 32)
	if approxByte(r) != 255 || approxByte(g) != 0 || approxByte(b) != 0 || approxByte(a) != 255 {
		t.Fatalf("centroid pixel not opaque red: got %v %v %v %v", r, g, b, a)
	}
	r, g, b, a = readPixel(cb, 0, 0)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Fatalf("corner pixel outside the triangle should be untouched: got %v %v %v %v", r, g, b, a)
	}
}

func fullScreenQuadData(z float32, col [4]float32) []float32 {
	v := func(x, y float32) []float32 {
		return []float32{x, y, z, 1, col[0], col[1], col[2], col[3]}
	}
	var out []float32
	out = append(out, v(-1, -1)...)
	out = append(out, v(1, -1)...)
	out = append(out, v(1, 1)...)
	out = append(out, v(-1, -1)...)
	out = append(out, v(1, 1)...)
	out = append(out, v(-1, 1)...)
	return out
}

func TestDepthTestRejectsBehindGeometry(t *testing.T) {
	c := NewContext()
	cb := newColorBuffer(16, 16, pixel.R8G8B8A8)
	db := newDepthBuffer(16, 16, depth.D16)
	c.BindColorBuffer(cb)
	c.BindDepthBuffer(db)
	c.SetClearDepth(1.0)
	c.SetScaleZ(false) // z values below are already normalized depths, not NDC in [-1,1]
	c.Clear()

	va := VertexArray{PositionEnabled: true, PositionComponents: 4, PositionStride: 8,
		ColorEnabled: true, ColorComponents: 4, ColorOffset: 4, ColorStride: 8}

	va.Data = fullScreenQuadData(0.9, [4]float32{0, 1, 0, 1})
	c.SetVertexArray(va)
	c.DrawArray(Triangles, 6)

	va.Data = fullScreenQuadData(0.1, [4]float32{1, 0, 0, 1})
	c.SetVertexArray(va)
	c.DrawArray(Triangles, 6)

	r, g, b, a := readPixel(cb, 8, 8)
	if approxByte(r) != 255 || approxByte(g) != 0 || approxByte(b) != 0 || approxByte(a) != 255 {
		t.Fatalf("expected every pixel red after front quad draw, got %v %v %v %v", r, g, b, a)
	}

	want := depth.ToRaster(0.1, depth.D16)
	got := depth.Read(db.Data, 8*16+8, depth.D16)
	if got != want {
		t.Fatalf("expected depth buffer to hold front quad's depth %d, got %d", want, got)
	}
}

func TestAlphaBlending(t *testing.T) {
	c := NewContext()
	cb := newColorBuffer(16, 16, pixel.R8G8B8A8)
	for i := 0; i < 16*16; i++ {
		pixel.Encode(cb.Data, i*4, pixel.R8G8B8A8, 0, 0, 0, 1)
	}
	c.BindColorBuffer(cb)
	c.SetBlend(true)

	va := VertexArray{PositionEnabled: true, PositionComponents: 4, PositionStride: 8,
		ColorEnabled: true, ColorComponents: 4, ColorOffset: 4, ColorStride: 8,
		Data: fullScreenQuadData(0, [4]float32{1, 1, 1, 0.5})}
	c.SetVertexArray(va)
	c.DrawArray(Triangles, 6)

	r, g, b, a := readPixel(cb, 10, 10)
	for _, v := range []float32{r, g, b, a} {
		got := approxByte(v)
		if got < 126 || got > 130 {
			t.Fatalf("expected blended channel near 128, got %d", got)
		}
	}
}

func TestTextureSamplingClamp(t *testing.T) {
	c := NewContext()
	cb := newColorBuffer(8, 8, pixel.R8G8B8A8)
	c.BindColorBuffer(cb)

	texData := make([]byte, 2*2*pixel.UnpackedBytesPerTexel(pixel.R8G8B8A8))
	bpt := pixel.UnpackedBytesPerTexel(pixel.R8G8B8A8)
	put := func(x, y int, r, g, b, a fixedpoint.Fixed16_16) {
		off := (y*2 + x) * bpt
		pixel.EncodeUnpacked(texData, off, pixel.R8G8B8A8, r, g, b, a)
	}
	put(0, 0, fixedpoint.One16, 0, 0, fixedpoint.One16)
	put(1, 0, 0, fixedpoint.One16, 0, fixedpoint.One16)
	put(0, 1, 0, 0, fixedpoint.One16, fixedpoint.One16)
	put(1, 1, fixedpoint.One16, fixedpoint.One16, fixedpoint.One16, fixedpoint.One16)

	unit := texture.Unit{Data: texData, Width: 2, Height: 2, Format: pixel.R8G8B8A8, Compressed: false}
	c.BindTexture(unit)

	va := VertexArray{
		PositionEnabled: true, PositionComponents: 4, PositionStride: 10,
		ColorEnabled: true, ColorComponents: 4, ColorOffset: 4, ColorStride: 10,
		TCoordEnabled: true, TCoordOffset: 8, TCoordStride: 10,
		Data: []float32{
			-1, -1, 0, 1, 1, 1, 1, 1, -1, -1,
			1, -1, 0, 1, 1, 1, 1, 1, 2, -1,
			-1, 1, 0, 1, 1, 1, 1, 1, -1, 2,
			1, -1, 0, 1, 1, 1, 1, 1, 2, -1,
			1, 1, 0, 1, 1, 1, 1, 1, 2, 2,
			-1, 1, 0, 1, 1, 1, 1, 1, -1, 2,
		},
	}
	c.SetVertexArray(va)
	c.DrawArray(Triangles, 6)

	known := [][4]float32{
		{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}, {1, 1, 1, 1},
	}
	matches := func(r, g, b, a float32) bool {
		for _, k := range known {
			if approxByte(r) == approxByte(k[0]) && approxByte(g) == approxByte(k[1]) &&
				approxByte(b) == approxByte(k[2]) && approxByte(a) == approxByte(k[3]) {
				return true
			}
		}
		return false
	}
	for _, p := range [][2]int{{0, 0}, {7, 0}, {0, 7}, {7, 7}} {
		r, g, b, a := readPixel(cb, p[0], p[1])
		if !matches(r, g, b, a) {
			t.Fatalf("pixel %v sampled a color not among the four texels (wrap instead of clamp?): %v %v %v %v", p, r, g, b, a)
		}
	}
}

func TestPointRadiusDiskPixelCount(t *testing.T) {
	c := NewContext()
	cb := newColorBuffer(16, 16, pixel.R8G8B8A8)
	c.BindColorBuffer(cb)
	c.SetPointRadius(3)

	va := VertexArray{
		PositionEnabled: true, PositionComponents: 4, PositionStride: 8,
		ColorEnabled: true, ColorComponents: 4, ColorOffset: 4, ColorStride: 8,
		Data: []float32{0, 0, 0, 1, 1, 1, 1, 1},
	}
	c.SetVertexArray(va)
	c.DrawArray(Points, 1)

	count := 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			_, _, _, a := readPixel(cb, x, y)
			if a != 0 {
				count++
			}
		}
	}
	if count != 29 {
		t.Fatalf("expected 29 pixels filled for radius-3 disk, got %d", count)
	}
}

func TestFrustumClipRejection(t *testing.T) {
	c := NewContext()
	cb := newColorBuffer(8, 8, pixel.R8G8B8A8)
	c.BindColorBuffer(cb)

	va := VertexArray{
		PositionEnabled: true, PositionComponents: 4, PositionStride: 8,
		ColorEnabled: true, ColorComponents: 4, ColorOffset: 4, ColorStride: 8,
		Data: []float32{
			-0.2, -0.2, 0, -1, 1, 0, 0, 1,
			0.2, -0.2, 0, -1, 1, 0, 0, 1,
			0, 0.2, 0, -1, 1, 0, 0, 1,
		},
	}
	c.SetVertexArray(va)
	c.DrawArray(Triangles, 3)

	for i, b := range cb.Data {
		if b != 0 {
			t.Fatalf("expected color buffer untouched by an entirely w<0 triangle, byte %d = %d", i, b)
		}
	}
}

// ccwTriangleData and cwTriangleData are the same triangle in opposite
// winding order, confirmed under the raw-clip-space signedArea2D: the first
// is CCW (area > 0), the second CW (area < 0).
func ccwTriangleData() []float32 {
	v := func(x, y float32) []float32 {
		return []float32{x, y, 0, 1, 1, 0, 0, 1}
	}
	var out []float32
	out = append(out, v(-0.5, -0.5)...)
	out = append(out, v(0.5, -0.5)...)
	out = append(out, v(0, 0.5)...)
	return out
}

func cwTriangleData() []float32 {
	v := func(x, y float32) []float32 {
		return []float32{x, y, 0, 1, 1, 0, 0, 1}
	}
	var out []float32
	out = append(out, v(-0.5, -0.5)...)
	out = append(out, v(0, 0.5)...)
	out = append(out, v(0.5, -0.5)...)
	return out
}

func drawTriangleData(c *Context, data []float32) *ColorBuffer {
	cb := newColorBuffer(16, 16, pixel.R8G8B8A8)
	c.BindColorBuffer(cb)
	c.SetVertexArray(VertexArray{
		Data:               data,
		PositionEnabled:    true,
		PositionComponents: 4,
		PositionStride:     8,
		ColorEnabled:       true,
		ColorComponents:    4,
		ColorOffset:        4,
		ColorStride:        8,
	})
	c.DrawArray(Triangles, 3)
	return cb
}

// TestCullSymmetry exercises Universal Invariant #7: a triangle with
// winding W is drawn iff culling is off, or the cull winding differs
// from W.
func TestCullSymmetry(t *testing.T) {
	c := NewContext()
	c.SetCull(true)
	c.SetCullWinding(CW)

	ccw := drawTriangleData(c, ccwTriangleData())
	if r, _, _, a := readPixel(ccw, 8, 8); approxByte(r) != 255 || approxByte(a) != 255 {
		t.Fatalf("CCW triangle should survive CW culling: got r=%v a=%v", r, a)
	}

	cw := drawTriangleData(c, cwTriangleData())
	if r, _, _, a := readPixel(cw, 8, 8); r != 0 || a != 0 {
		t.Fatalf("CW triangle should be culled under CW culling: got r=%v a=%v", r, a)
	}

	c.SetCullWinding(CCW)

	ccw2 := drawTriangleData(c, ccwTriangleData())
	if r, _, _, a := readPixel(ccw2, 8, 8); r != 0 || a != 0 {
		t.Fatalf("CCW triangle should be culled under CCW culling: got r=%v a=%v", r, a)
	}

	cw2 := drawTriangleData(c, cwTriangleData())
	if r, _, _, a := readPixel(cw2, 8, 8); approxByte(r) != 255 || approxByte(a) != 255 {
		t.Fatalf("CW triangle should survive CCW culling: got r=%v a=%v", r, a)
	}
}

// TestPolygonModeEquivalence exercises Universal Invariant #8: drawing a
// triangle in Line (or Point) mode plots the same pixels as rasterizing
// its three edges (or vertices) directly as independent primitives, in
// the same 0-1, 1-2, 2-0 vertex order drawTriangle uses internally.
func TestPolygonModeEquivalence(t *testing.T) {
	data := ccwTriangleData()

	cLine := NewContext()
	cLine.SetPolygonMode(Line)
	triBuf := drawTriangleData(cLine, data)

	cEdges := NewContext()
	edgeBuf := newColorBuffer(16, 16, pixel.R8G8B8A8)
	cEdges.BindColorBuffer(edgeBuf)
	pairs := [3][2]int{{0, 1}, {1, 2}, {2, 0}}
	for _, p := range pairs {
		cEdges.SetVertexArray(VertexArray{
			Data: append(append([]float32{}, data[p[0]*8:p[0]*8+8]...), data[p[1]*8:p[1]*8+8]...),
			PositionEnabled:    true,
			PositionComponents: 4,
			PositionStride:     8,
			ColorEnabled:       true,
			ColorComponents:    4,
			ColorOffset:        4,
			ColorStride:        8,
		})
		cEdges.DrawArray(Lines, 2)
	}

	if string(triBuf.Data) != string(edgeBuf.Data) {
		t.Fatalf("Line polygon mode should match the union of the triangle's three edges drawn as lines")
	}

	cPoint := NewContext()
	cPoint.SetPolygonMode(PointMode)
	pointTriBuf := drawTriangleData(cPoint, data)

	cVerts := NewContext()
	vertBuf := newColorBuffer(16, 16, pixel.R8G8B8A8)
	cVerts.BindColorBuffer(vertBuf)
	for i := 0; i < 3; i++ {
		cVerts.SetVertexArray(VertexArray{
			Data:               append([]float32{}, data[i*8:i*8+8]...),
			PositionEnabled:    true,
			PositionComponents: 4,
			PositionStride:     8,
			ColorEnabled:       true,
			ColorComponents:    4,
			ColorOffset:        4,
			ColorStride:        8,
		})
		cVerts.DrawArray(Points, 1)
	}

	if string(pointTriBuf.Data) != string(vertBuf.Data) {
		t.Fatalf("Point polygon mode should match the union of the triangle's three vertices drawn as points")
	}
}
