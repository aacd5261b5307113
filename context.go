package embedraster

import (
	"sync"

	"github.com/embedraster/raster/depth"
	"github.com/embedraster/raster/pixel"
	"github.com/embedraster/raster/shader"
	"github.com/embedraster/raster/texture"
)

// PolygonMode selects how triangle primitives are rasterized.
type PolygonMode uint8

const (
	Fill PolygonMode = iota
	Line
	PointMode
)

// Winding identifies a triangle's 2D winding order, used for culling.
type Winding uint8

const (
	CW Winding = iota
	CCW
)

const maxTextureUnits = 256

// Context is the monolithic, mutex-guarded rendering state: render-target
// pairs, mode flags, texture units, shader callbacks, and the vertex-array
// descriptor. A "current context" binding (see Current/MakeCurrent) lets
// callers target it implicitly, matching the source's process-wide state.
type Context struct {
	mu sync.Mutex

	front, back targetSet
	doubleBuffer bool

	depthTest             bool
	depthWrite            bool
	blend                 bool
	cull                  bool
	clip                  bool
	perspectiveCorrection bool
	perspectiveDivision   bool
	scaleZ                bool
	textureEnabled        bool

	polygonMode PolygonMode
	cullWinding Winding
	pointRadius float32

	clearColor [4]float32
	clearDepth float32

	activeTextureUnit int
	textureUnits      [maxTextureUnits]texture.Unit

	vertexEnabled   shader.VertexSet
	fragmentEnabled shader.FragmentSet
	vertexShader    shader.VertexFunc
	fragmentShader  shader.FragmentFunc

	vertexArray VertexArray
}

// NewContext returns a Context with the documented defaults: depth write,
// depth test, perspective correction, texture, perspective division, and Z
// rescale, and clip enabled; double buffer, blend, and cull disabled; cull
// winding CW; point radius 1; clear color/depth 0.
func NewContext() *Context {
	return &Context{
		depthWrite:            true,
		depthTest:             true,
		perspectiveCorrection: true,
		perspectiveDivision:   true,
		scaleZ:                true,
		textureEnabled:        true,
		clip:                  true,
		cullWinding:           CW,
		pointRadius:           1,
	}
}

var (
	currentMu sync.Mutex
	current   *Context
)

// MakeCurrent sets the process-wide current context. Passing nil clears
// the binding.
func MakeCurrent(ctx *Context) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = ctx
}

// Current returns the process-wide current context, or nil if none is
// bound.
func Current() *Context {
	currentMu.Lock()
	defer currentMu.Unlock()
	return current
}

// Destroy clears the current-context binding if ctx is currently bound.
func (c *Context) Destroy() {
	currentMu.Lock()
	defer currentMu.Unlock()
	if current == c {
		current = nil
	}
}

// SetDoubleBuffer enables or disables double buffering.
func (c *Context) SetDoubleBuffer(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.doubleBuffer = v
}

// SetDepthTest enables or disables the depth test.
func (c *Context) SetDepthTest(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.depthTest = v
}

// SetDepthWrite enables or disables writing the depth buffer.
func (c *Context) SetDepthWrite(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.depthWrite = v
}

// SetBlend enables or disables alpha blending.
func (c *Context) SetBlend(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blend = v
}

// SetCull enables or disables triangle face culling.
func (c *Context) SetCull(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cull = v
}

// SetClip enables or disables homogeneous clipping.
func (c *Context) SetClip(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clip = v
}

// SetPerspectiveCorrection enables or disables perspective-correct
// barycentric interpolation.
func (c *Context) SetPerspectiveCorrection(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.perspectiveCorrection = v
}

// SetPerspectiveDivision enables or disables the perspective divide step.
func (c *Context) SetPerspectiveDivision(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.perspectiveDivision = v
}

// SetScaleZ enables or disables the NDC-to-[0,1] Z rescale step.
func (c *Context) SetScaleZ(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scaleZ = v
}

// SetTexture enables or disables texturing.
func (c *Context) SetTexture(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.textureEnabled = v
}

// SetPolygonMode selects FILL, LINE, or POINT rendering of triangles.
func (c *Context) SetPolygonMode(m PolygonMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.polygonMode = m
}

// SetCullWinding selects which winding order is culled when culling is
// enabled.
func (c *Context) SetCullWinding(w Winding) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cullWinding = w
}

// SetPointRadius sets the point rasterizer's disk radius; negative values
// are ignored.
func (c *Context) SetPointRadius(r float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r < 0 {
		return
	}
	c.pointRadius = r
}

// SetClearColor sets the normalized RGBA clear color, clamped to [0,1].
func (c *Context) SetClearColor(r, g, b, a float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearColor = [4]float32{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

// SetClearDepth sets the normalized clear depth, clamped to [0,1].
func (c *Context) SetClearDepth(d float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearDepth = clamp01(d)
}

// SetActiveTextureUnit selects the texture unit index (0..255) that later
// BindTexture calls and draw-time sampling refer to; out-of-range indices
// are ignored.
func (c *Context) SetActiveTextureUnit(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= maxTextureUnits {
		return
	}
	c.activeTextureUnit = index
}

// BindTexture sets the texture descriptor for the active texture unit.
func (c *Context) BindTexture(unit texture.Unit) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.textureUnits[c.activeTextureUnit] = unit
}

// SetVertexAttributes selects which vertex attributes are passed to the
// vertex shader callback.
func (c *Context) SetVertexAttributes(set shader.VertexSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vertexEnabled = set
}

// SetFragmentAttributes selects which fragment attributes are passed to
// the fragment shader callback.
func (c *Context) SetFragmentAttributes(set shader.FragmentSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fragmentEnabled = set
}

// SetVertexShader binds the vertex shader callback; nil restores the
// pass-through default.
func (c *Context) SetVertexShader(fn shader.VertexFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vertexShader = fn
}

// SetFragmentShader binds the fragment shader callback; nil restores the
// pass-through default.
func (c *Context) SetFragmentShader(fn shader.FragmentFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fragmentShader = fn
}

// SetVertexArray binds the strided vertex-array descriptor used by
// DrawArray and DrawElements.
func (c *Context) SetVertexArray(va VertexArray) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vertexArray = va
}

// BindColorBuffer binds buf as the color slot of the current set (back if
// double-buffered, else front). A dimension mismatch against an
// already-bound buffer in that set is ignored.
func (c *Context) BindColorBuffer(buf *ColorBuffer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.targetOf(c.doubleBuffer).bindColor(buf)
}

// BindDepthBuffer binds buf as the depth slot of the current set.
func (c *Context) BindDepthBuffer(buf *DepthBuffer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.targetOf(c.doubleBuffer).bindDepth(buf)
}

func (c *Context) targetOf(back bool) *targetSet {
	if back {
		return &c.back
	}
	return &c.front
}

// Clear fills the color and/or depth buffers of the current set with the
// pre-encoded clear color and clear depth.
func (c *Context) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	set := c.targetOf(c.doubleBuffer)
	if set.Color != nil {
		bpp := pixel.BytesPerPixel(set.Color.Format)
		for i := 0; i < set.Color.Width*set.Color.Height; i++ {
			pixel.Encode(set.Color.Data, i*bpp, set.Color.Format,
				c.clearColor[0], c.clearColor[1], c.clearColor[2], c.clearColor[3])
		}
	}
	if set.Depth != nil {
		v := depth.ToRaster(c.clearDepth, set.Depth.Format)
		for i := 0; i < set.Depth.Width*set.Depth.Height; i++ {
			depth.Write(set.Depth.Data, i, set.Depth.Format, v)
		}
	}
}

// Swap exchanges the front and back target sets; a no-op unless double
// buffering is enabled.
func (c *Context) Swap() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.doubleBuffer {
		return
	}
	c.front, c.back = c.back, c.front
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
