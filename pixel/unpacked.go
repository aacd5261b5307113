package pixel

import "github.com/embedraster/raster/internal/fixedpoint"

// UnpackedBytesPerTexel returns the storage width of one texel of format f
// under the non-compressed texture layout: one plain byte per named
// channel (3 bytes for an RGB format, 4 for one with alpha), regardless of
// the format's packed bit depth. This is the incidental source behavior
// preserved for formats with sub-byte channels (see the texture package).
func UnpackedBytesPerTexel(f Format) int {
	return len(specs[f].channels)
}

// DecodeUnpacked reads a texel stored under the non-compressed layout: one
// byte per channel, in the format's declared name order, holding the raw
// small-integer channel value (not bit-packed, not byte-scaled). Alpha
// defaults to 1.0 when the format has no alpha channel.
func DecodeUnpacked(buf []byte, offset int, f Format) (r, g, b, a fixedpoint.Fixed16_16) {
	s, ok := specs[f]
	if !ok {
		return 0, 0, 0, 0
	}
	a = fixedpoint.One16
	for i, c := range s.channels {
		max := uint32(1)<<c.bits - 1
		raw := uint32(buf[offset+i])
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

// EncodeUnpacked writes a texel under the non-compressed layout: one byte
// per channel, in the format's declared name order, holding the raw
// small-integer channel value.
func EncodeUnpacked(buf []byte, offset int, f Format, r, g, b, a fixedpoint.Fixed16_16) {
	s, ok := specs[f]
	if !ok {
		return
	}
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
		raw := byte((int64(ch) * int64(max)) >> 16)
		buf[offset+i] = raw
	}
}
