// Package embedraster implements a CPU-only software rasterizer: a
// process-wide current-context binding over render targets, texture
// units, and vertex/fragment shader callbacks, driving clipping,
// perspective division, viewport mapping, scanline/DDA/circle
// rasterization, and the per-fragment depth test, shading, texture
// sampling, and blending pipeline.
//
// The package composes the lower-level pixel, depth, texture, shader,
// clip, and raster packages; Context is the only entry point callers
// need.
package embedraster
