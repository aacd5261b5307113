package pixel

import (
	"github.com/embedraster/raster/internal/fixedpoint"
)

// load reads a packed pixel of the given format from buf at the given byte
// offset into a single unsigned container value.
func load(buf []byte, offset int, f Format) uint32 {
	switch BytesPerPixel(f) {
	case 4:
		return uint32(buf[offset]) | uint32(buf[offset+1])<<8 |
			uint32(buf[offset+2])<<16 | uint32(buf[offset+3])<<24
	case 2:
		return uint32(buf[offset]) | uint32(buf[offset+1])<<8
	default:
		return uint32(buf[offset])
	}
}

// store writes a packed container value of the given format into buf at the
// given byte offset.
func store(buf []byte, offset int, f Format, v uint32) {
	switch BytesPerPixel(f) {
	case 4:
		buf[offset] = byte(v)
		buf[offset+1] = byte(v >> 8)
		buf[offset+2] = byte(v >> 16)
		buf[offset+3] = byte(v >> 24)
	case 2:
		buf[offset] = byte(v)
		buf[offset+1] = byte(v >> 8)
	default:
		buf[offset] = byte(v)
	}
}

// channelValue extracts the raw integer value of channel i from container v
// given its bit offset and width.
func channelValue(v uint32, offset, width uint) uint32 {
	mask := uint32(1)<<width - 1
	return (v >> offset) & mask
}

// DecodeFixed16 unpacks the pixel at offset in buf into four 16.16
// fixed-point channels in R, G, B, A order. A format with no alpha channel
// yields a fully-opaque A (One16).
func DecodeFixed16(buf []byte, offset int, f Format) (r, g, b, a fixedpoint.Fixed16_16) {
	s, ok := specs[f]
	if !ok {
		return 0, 0, 0, 0
	}
	v := load(buf, offset, f)
	offs := s.offsets()
	a = fixedpoint.One16
	for i, c := range s.channels {
		max := uint32(1)<<c.bits - 1
		raw := channelValue(v, offs[i], c.bits)
		val := fixedpoint.Fixed16_16((int64(raw) << 16) / int64(max))
		switch c.name {
		case 'R':
			r = val
		case 'G':
			g = val
		case 'B':
			b = val
		case 'A':
			a = val
		}
	}
	return r, g, b, a
}

// EncodeFixed16 packs four 16.16 fixed-point channels into the container
// bits of format f and writes them into buf at offset. Channels are clamped
// to [0, 1.0] in fixed-point before quantization.
func EncodeFixed16(buf []byte, offset int, f Format, r, g, b, a fixedpoint.Fixed16_16) {
	s, ok := specs[f]
	if !ok {
		return
	}
	offs := s.offsets()
	var v uint32
	for i, c := range s.channels {
		var ch fixedpoint.Fixed16_16
		switch c.name {
		case 'R':
			ch = r
		case 'G':
			ch = g
		case 'B':
			ch = b
		case 'A':
			ch = a
		}
		if ch < 0 {
			ch = 0
		}
		if ch > fixedpoint.One16 {
			ch = fixedpoint.One16
		}
		max := uint32(1)<<c.bits - 1
		raw := uint32((int64(ch) * int64(max)) >> 16)
		v |= raw << offs[i]
	}
	store(buf, offset, f, v)
}

// Decode unpacks the pixel at offset in buf into four normalized float32
// channels in R, G, B, A order. A format with no alpha channel yields a
// fully-opaque A (1.0).
func Decode(buf []byte, offset int, f Format) (r, g, b, a float32) {
	fr, fg, fb, fa := DecodeFixed16(buf, offset, f)
	return fr.ToFloat32(), fg.ToFloat32(), fb.ToFloat32(), fa.ToFloat32()
}

// Encode packs four normalized float32 channels into format f and writes
// them into buf at offset.
func Encode(buf []byte, offset int, f Format, r, g, b, a float32) {
	EncodeFixed16(buf, offset, f,
		fixedpoint.FromFloat16(r), fixedpoint.FromFloat16(g),
		fixedpoint.FromFloat16(b), fixedpoint.FromFloat16(a))
}
