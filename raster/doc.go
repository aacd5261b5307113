// Package raster implements the triangle, line, and point rasterizers: the
// scanline/DDA/circle-fill algorithms that walk a primitive's raster-space
// footprint and emit one Fragment per covered pixel, with barycentric,
// color, texture-coordinate, and depth interpolation.
//
// Rasterization is independent of framebuffer state: each function takes a
// Sink callback and emits fragments to it, leaving depth testing, shading,
// blending, and the pixel write to the caller (the fragment finalizer).
package raster
