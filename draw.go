package embedraster

import (
	"github.com/embedraster/raster/clip"
	"github.com/embedraster/raster/depth"
	"github.com/embedraster/raster/internal/fixedpoint"
	"github.com/embedraster/raster/pixel"
	rasterpkg "github.com/embedraster/raster/raster"
	"github.com/embedraster/raster/shader"
	"github.com/embedraster/raster/texture"
)

// DrawArray consumes count vertex records from the bound vertex array,
// sequentially, grouping them 3/2/1 per primitive of kind.
func (c *Context) DrawArray(kind PrimitiveKind, count int) {
	c.mu.Lock()
	va := c.vertexArray
	c.mu.Unlock()

	n := verticesPerPrimitive(kind)
	verts := make([]Vertex, 0, count)
	for i := 0; i < count; i++ {
		verts = append(verts, readVertex(va, i))
	}
	c.drawPrimitives(kind, verts, n)
}

// DrawElements is like DrawArray but reads vertex records via indices
// rather than sequentially.
func (c *Context) DrawElements(kind PrimitiveKind, indices []int) {
	c.mu.Lock()
	va := c.vertexArray
	c.mu.Unlock()

	n := verticesPerPrimitive(kind)
	verts := make([]Vertex, 0, len(indices))
	for _, idx := range indices {
		verts = append(verts, readVertex(va, idx))
	}
	c.drawPrimitives(kind, verts, n)
}

func (c *Context) drawPrimitives(kind PrimitiveKind, verts []Vertex, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(verts) < n {
		return
	}
	set := c.targetOf(c.doubleBuffer)
	if set.Color == nil && set.Depth == nil {
		return // no-op when unconfigured
	}

	for i := 0; i+n <= len(verts); i += n {
		group := verts[i : i+n]
		shaded := make([]Vertex, n)
		for j, v := range group {
			in := shader.VertexInput{
				Kind:     float32(kind),
				Position: v.Position,
				Color:    v.Color,
				Normal:   v.Normal,
				TCoord:   v.TCoord,
			}
			shaded[j] = v
			shaded[j].Position = shader.RunVertex(c.vertexShader, c.vertexEnabled, in)
		}

		switch kind {
		case Triangles:
			c.drawTriangle(set, shaded[0], shaded[1], shaded[2])
		case Lines:
			c.drawLine(set, shaded[0], shaded[1])
		case Points:
			c.drawPoint(set, shaded[0])
		}
	}
}

func toClipVertex(v Vertex) clip.Vertex {
	return clip.Vertex{Position: v.Position, Color: v.Color, Normal: v.Normal, TCoord: v.TCoord}
}

// signedArea2D computes the cull cross-product from raw, undivided
// clip-space x,y — winding is determined before the perspective divide,
// not after.
func signedArea2D(a, b, c [4]float32) float32 {
	ax, ay := a[0], a[1]
	bx, by := b[0], b[1]
	cx, cy := c[0], c[1]
	return (bx-ax)*(cy-ay) - (cx-ax)*(by-ay)
}

func (c *Context) drawTriangle(set *targetSet, v0, v1, v2 Vertex) {
	if c.cull {
		area := signedArea2D(v0.Position, v1.Position, v2.Position)
		w := CCW
		if area < 0 {
			w = CW
		}
		if w == c.cullWinding {
			return
		}
	}

	var tris [][3]clip.Vertex
	if c.clip {
		tris = clip.Triangle(toClipVertex(v0), toClipVertex(v1), toClipVertex(v2))
	} else {
		tris = [][3]clip.Vertex{{toClipVertex(v0), toClipVertex(v1), toClipVertex(v2)}}
	}

	width, height := set.dimensions()
	unit := c.textureUnits[c.activeTextureUnit]

	for _, tri := range tris {
		var raster rasterpkg.Triangle
		for i, cv := range tri {
			x, y, z, w, col, tc := c.preprocessVertex(cv, width, height, unit)
			raster.X[i], raster.Y[i] = x, y
			raster.OrigX[i] = fixedpoint.FromFloat8(x)
			raster.OrigY[i] = fixedpoint.FromFloat8(y)
			raster.Z[i] = z
			raster.W[i] = w
			raster.Color[i] = col
			raster.TCoord[i] = tc
		}
		raster.Tex = unit

		switch c.polygonMode {
		case Fill:
			rasterpkg.Render(raster, c.perspectiveCorrection, c.fragmentSink(set))
		case Line:
			edges := [3][2]int{{0, 1}, {1, 2}, {2, 0}}
			for _, e := range edges {
				ln := triangleEdgeToLine(raster, e[0], e[1])
				rasterpkg.Segment(ln, c.perspectiveCorrection, c.fragmentSink(set))
			}
		case PointMode:
			for i := 0; i < 3; i++ {
				pt := rasterpkg.Point{
					X: raster.X[i], Y: raster.Y[i],
					Radius: int(c.pointRadius),
					Z:      raster.Z[i], W: raster.W[i],
					Color: raster.Color[i], Tex: unit,
				}
				rasterpkg.Disk(pt, c.fragmentSink(set))
			}
		}
	}
}

func triangleEdgeToLine(tri rasterpkg.Triangle, a, b int) rasterpkg.Line {
	return rasterpkg.Line{
		X: [2]float32{tri.X[a], tri.X[b]},
		Y: [2]float32{tri.Y[a], tri.Y[b]},
		Z: [2]int{tri.Z[a], tri.Z[b]},
		W: [2]float32{tri.W[a], tri.W[b]},
		Color: [2][4]fixedpoint.Fixed16_16{tri.Color[a], tri.Color[b]},
		TCoord: [2][2]fixedpoint.Fixed16_16{tri.TCoord[a], tri.TCoord[b]},
		Tex: tri.Tex,
	}
}

func (c *Context) drawLine(set *targetSet, v0, v1 Vertex) {
	a, b := toClipVertex(v0), toClipVertex(v1)
	result := clip.LineResult{Accept: true, P0: a.Position, P1: b.Position, T0: 0, T1: 1}
	if c.clip {
		result = clip.Line(a.Position, b.Position)
		if !result.Accept {
			return
		}
	}

	width, height := set.dimensions()
	unit := c.textureUnits[c.activeTextureUnit]

	cv0 := lerpClipVertex(a, b, result.T0)
	cv0.Position = result.P0
	cv1 := lerpClipVertex(a, b, result.T1)
	cv1.Position = result.P1

	var ln rasterpkg.Line
	for i, cv := range []clip.Vertex{cv0, cv1} {
		x, y, z, w, col, tc := c.preprocessVertex(cv, width, height, unit)
		ln.X[i], ln.Y[i] = x, y
		ln.Z[i] = z
		ln.W[i] = w
		ln.Color[i] = col
		ln.TCoord[i] = tc
	}
	ln.Tex = unit
	rasterpkg.Segment(ln, c.perspectiveCorrection, c.fragmentSink(set))
}

func lerpClipVertex(a, b clip.Vertex, t float32) clip.Vertex {
	var v clip.Vertex
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

func (c *Context) drawPoint(set *targetSet, v Vertex) {
	cv := toClipVertex(v)
	if c.clip && !clip.PointAccept(cv.Position) {
		return
	}
	width, height := set.dimensions()
	unit := c.textureUnits[c.activeTextureUnit]
	x, y, z, w, col, _ := c.preprocessVertex(cv, width, height, unit)
	pt := rasterpkg.Point{X: x, Y: y, Radius: int(c.pointRadius), Z: z, W: w, Color: col, Tex: unit}
	rasterpkg.Disk(pt, c.fragmentSink(set))
}

// preprocessVertex performs the primitive preprocessor steps (perspective
// divide, Z rescale, viewport map, texel derivation, depth conversion,
// color conversion) on a single clip-space vertex.
func (c *Context) preprocessVertex(v clip.Vertex, width, height int, unit texture.Unit) (x, y float32, z int, w float32, col [4]fixedpoint.Fixed16_16, tc [2]fixedpoint.Fixed16_16) {
	px, py, pz, pw := v.Position[0], v.Position[1], v.Position[2], v.Position[3]

	if c.perspectiveDivision && pw != 0 && pw != 1 {
		px /= pw
		py /= pw
		pz /= pw
	}
	if c.scaleZ {
		pz = pz*0.5 + 0.5
	}

	x = float32(width)/2 + px*float32(width)/2
	y = float32(height)/2 - py*float32(height)/2
	w = pw

	depthFormat := depth.D16
	if set := c.targetOf(c.doubleBuffer); set.Depth != nil {
		depthFormat = set.Depth.Format
	}
	z = int(depth.ToRaster(pz, depthFormat))

	for i := range col {
		col[i] = fixedpoint.FromFloat16(v.Color[i])
	}

	if c.textureEnabled && unit.Complete() {
		u, vv := v.TCoord[0], v.TCoord[1]
		tx := u * float32(unit.Width-1) * 65536
		ty := (1 - vv) * float32(unit.Height-1) * 65536
		tc[0] = fixedpoint.Fixed16_16(tx)
		tc[1] = fixedpoint.Fixed16_16(ty)
	}
	return x, y, z, w, col, tc
}

// fragmentSink returns a rasterpkg.Sink bound to set that performs the
// fragment finalizer: depth test, texture sampling, fragment shader
// invocation, blending, and the pixel/depth write.
func (c *Context) fragmentSink(set *targetSet) rasterpkg.Sink {
	return func(f rasterpkg.Fragment) {
		if set.Color == nil && set.Depth == nil {
			return
		}
		width, _ := set.dimensions()
		if width == 0 || f.X < 0 || f.Y < 0 {
			return
		}
		index := f.Y*width + f.X

		var destDepth uint32
		var depthFmt depth.Format
		if set.Depth != nil {
			depthFmt = set.Depth.Format
			if f.X >= set.Depth.Width || f.Y >= set.Depth.Height {
				return
			}
			if c.depthTest {
				destDepth = depth.Read(set.Depth.Data, index, depthFmt)
				if f.Depth < 0 || !depth.IsValidRasterDepth(uint32(f.Depth), depthFmt) || uint32(f.Depth) > destDepth {
					return
				}
			}
		}

		var texColor [4]float32
		if c.textureEnabled && f.Tex.Complete() {
			tx := int(f.TCoord[0]) >> 16
			ty := int(f.TCoord[1]) >> 16
			r, g, b, a := f.Tex.Sample(tx, ty)
			texColor = [4]float32{r.ToFloat32(), g.ToFloat32(), b.ToFloat32(), a.ToFloat32()}
		}
		primary := [4]float32{f.Color[0].ToFloat32(), f.Color[1].ToFloat32(), f.Color[2].ToFloat32(), f.Color[3].ToFloat32()}
		current := primary
		textured := c.textureEnabled && f.Tex.Complete()
		if textured {
			current = texColor
		}

		discard := false
		final := current
		if c.fragmentShader != nil {
			destNorm := float32(0)
			if set.Depth != nil {
				destNorm = float32(destDepth) / float32(depth.Max(depthFmt))
			}
			fragNorm := float32(0)
			if set.Depth != nil {
				fragNorm = float32(f.Depth) / float32(depth.Max(depthFmt))
			}
			in := shader.FragmentInput{
				Current: current, Primary: primary, TextureColor: texColor,
				BaryLinear: f.BaryLinear, BaryPerspective: f.BaryPerspective,
				X: float32(f.X), Y: float32(f.Y),
				DestDepth: destNorm, FragDepth: fragNorm,
			}
			final, discard = shader.RunFragment(c.fragmentShader, c.fragmentEnabled, in)
		}
		if discard {
			return
		}

		if set.Color != nil {
			if f.X >= set.Color.Width || f.Y >= set.Color.Height {
				return
			}
			rgba := [4]fixedpoint.Fixed16_16{
				fixedpoint.FromFloat16(final[0]), fixedpoint.FromFloat16(final[1]),
				fixedpoint.FromFloat16(final[2]), fixedpoint.FromFloat16(final[3]),
			}
			bpp := pixel.BytesPerPixel(set.Color.Format)
			pixel.Plot(set.Color.Data, index*bpp, set.Color.Format, rgba, c.blend)
		}
		if c.depthWrite && set.Depth != nil && f.Depth >= 0 && depth.IsValidRasterDepth(uint32(f.Depth), depthFmt) {
			depth.Write(set.Depth.Data, index, depthFmt, uint32(f.Depth))
		}
	}
}
