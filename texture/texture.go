package texture

import (
	"github.com/embedraster/raster/internal/fixedpoint"
	"github.com/embedraster/raster/pixel"
)

// Unit describes a bound texture: a pointer to texel storage (caller-owned,
// row-major, origin bottom-left), its dimensions, pixel format, and storage
// layout flag.
//
// When Compressed is false, each texel occupies one plain byte per named
// channel (see pixel.UnpackedBytesPerTexel) instead of the format's packed
// bit layout — an incidental behavior of the source preserved here for
// exact reproduction, wasteful for sub-byte channel formats.
type Unit struct {
	Data       []byte
	Width      int
	Height     int
	Format     pixel.Format
	Compressed bool
}

// Complete reports whether the unit is eligible for sampling: non-nil
// storage, positive dimensions, and a recognized pixel format.
func (u Unit) Complete() bool {
	return u.Data != nil && u.Width > 0 && u.Height > 0 && pixel.IsValid(u.Format)
}

// bytesPerTexel returns the storage width of one texel under u's layout.
func (u Unit) bytesPerTexel() int {
	if u.Compressed {
		return pixel.BytesPerPixel(u.Format)
	}
	return pixel.UnpackedBytesPerTexel(u.Format)
}

// Sample fetches the texel nearest (x,y), clamped to the unit's bounds (no
// wrap, no filtering), and returns it as four 16.16 fixed-point channels.
// Sampling an incomplete unit returns fully transparent black.
func (u Unit) Sample(x, y int) (r, g, b, a fixedpoint.Fixed16_16) {
	if !u.Complete() {
		return 0, 0, 0, 0
	}
	if x < 0 {
		x = 0
	}
	if x > u.Width-1 {
		x = u.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y > u.Height-1 {
		y = u.Height - 1
	}
	offset := (y*u.Width + x) * u.bytesPerTexel()
	if u.Compressed {
		return pixel.DecodeFixed16(u.Data, offset, u.Format)
	}
	return pixel.DecodeUnpacked(u.Data, offset, u.Format)
}
