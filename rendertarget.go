package embedraster

import (
	"github.com/embedraster/raster/depth"
	"github.com/embedraster/raster/pixel"
)

// ColorBuffer is an externally-owned, row-major color render target.
type ColorBuffer struct {
	Data   []byte
	Format pixel.Format
	Width  int
	Height int
}

// DepthBuffer is an externally-owned, row-major depth render target.
type DepthBuffer struct {
	Data   []byte
	Format depth.Format
	Width  int
	Height int
}

// targetSet is one of the context's two render-target pairs (front/back).
type targetSet struct {
	Color *ColorBuffer
	Depth *DepthBuffer
}

// dimensions returns the set's (width, height), or (0,0) if neither buffer
// is bound.
func (s targetSet) dimensions() (int, int) {
	if s.Color != nil {
		return s.Color.Width, s.Color.Height
	}
	if s.Depth != nil {
		return s.Depth.Width, s.Depth.Height
	}
	return 0, 0
}

func (s *targetSet) bindColor(buf *ColorBuffer) {
	if !pixel.IsValid(buf.Format) {
		return
	}
	if w, h := s.dimensions(); w != 0 || h != 0 {
		if w != buf.Width || h != buf.Height {
			return
		}
	}
	s.Color = buf
}

func (s *targetSet) bindDepth(buf *DepthBuffer) {
	if w, h := s.dimensions(); w != 0 || h != 0 {
		if w != buf.Width || h != buf.Height {
			return
		}
	}
	s.Depth = buf
}
