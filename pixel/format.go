package pixel

// Format identifies a packed color pixel format. Bit layouts match the
// name left-to-right, MSB-first; a format whose named channel widths sum to
// less than its container size carries unused padding bits at the low end.
type Format uint8

const (
	// R8G8B8A8 is a 32-bit format: 8 bits each of R, G, B, A.
	R8G8B8A8 Format = iota
	// R8G8B8 is a 32-bit-container format with no alpha channel.
	R8G8B8
	// A8B8G8R8 is a 32-bit format with reversed channel order.
	A8B8G8R8
	// B8G8R8 is a 32-bit-container format, BGR channel order, no alpha.
	B8G8R8

	// R5G5B5A1 is a 16-bit format with a 1-bit threshold alpha channel.
	R5G5B5A1
	// R5G5B5 is a 16-bit format with one unused padding bit, no alpha.
	R5G5B5
	// A1B5G5R5 is a 16-bit format, reversed channel order, 1-bit alpha.
	A1B5G5R5
	// B5G5R5 is a 16-bit format, BGR order, one unused padding bit.
	B5G5R5

	// R3G2B2A1 is an 8-bit format with a 1-bit threshold alpha channel.
	R3G2B2A1
	// R3G3B2 is an 8-bit format with no alpha channel.
	R3G3B2
	// A1B2G2R3 is an 8-bit format, reversed channel order, 1-bit alpha.
	A1B2G2R3
	// B2G3R3 is an 8-bit format, BGR order, no alpha.
	B2G3R3
)

// channel describes one named color channel within a packed format.
type channel struct {
	name byte // 'R', 'G', 'B', or 'A'
	bits uint
}

// spec describes the bit layout of a packed pixel format.
type spec struct {
	containerBits uint
	channels      []channel // MSB-first, as named
}

// R8G8B8 stores 4 bytes in the same container as R8G8B8A8 (see the spec's
// note on the "compressed" texture flag: non-compressed texel storage
// always occupies 3 or 4 bytes regardless of channel bit depth). The packed
// bit layout used here for encode/decode purposes is still a tight 24-bit
// layout; BytesPerPixel returns the storage width separately (see texture
// package for the non-compressed 3/4-byte texel convention).
var specs = map[Format]spec{
	R8G8B8A8: {32, []channel{{'R', 8}, {'G', 8}, {'B', 8}, {'A', 8}}},
	R8G8B8:   {24, []channel{{'R', 8}, {'G', 8}, {'B', 8}}},
	A8B8G8R8: {32, []channel{{'A', 8}, {'B', 8}, {'G', 8}, {'R', 8}}},
	B8G8R8:   {24, []channel{{'B', 8}, {'G', 8}, {'R', 8}}},

	R5G5B5A1: {16, []channel{{'R', 5}, {'G', 5}, {'B', 5}, {'A', 1}}},
	R5G5B5:   {16, []channel{{'R', 5}, {'G', 5}, {'B', 5}}},
	A1B5G5R5: {16, []channel{{'A', 1}, {'B', 5}, {'G', 5}, {'R', 5}}},
	B5G5R5:   {16, []channel{{'B', 5}, {'G', 5}, {'R', 5}}},

	R3G2B2A1: {8, []channel{{'R', 3}, {'G', 2}, {'B', 2}, {'A', 1}}},
	R3G3B2:   {8, []channel{{'R', 3}, {'G', 3}, {'B', 2}}},
	A1B2G2R3: {8, []channel{{'A', 1}, {'B', 2}, {'G', 2}, {'R', 3}}},
	B2G3R3:   {8, []channel{{'B', 2}, {'G', 3}, {'R', 3}}},
}

// IsValid reports whether f is one of the recognized pixel formats.
func IsValid(f Format) bool {
	_, ok := specs[f]
	return ok
}

// BytesPerPixel returns the number of bytes a single packed pixel occupies
// in a color buffer (4, 2, or 1 depending on the format's bit depth group).
func BytesPerPixel(f Format) int {
	s, ok := specs[f]
	if !ok {
		return 0
	}
	switch {
	case s.containerBits > 16:
		return 4
	case s.containerBits > 8:
		return 2
	default:
		return 1
	}
}

// HasAlpha reports whether the format carries an alpha channel.
func HasAlpha(f Format) bool {
	for _, c := range specs[f].channels {
		if c.name == 'A' {
			return true
		}
	}
	return false
}

// alphaBits returns the bit width of the alpha channel, or 0 if the format
// has none.
func alphaBits(f Format) uint {
	for _, c := range specs[f].channels {
		if c.name == 'A' {
			return c.bits
		}
	}
	return 0
}

// offsets returns, for each channel in s (in declared order), the bit
// offset of its low bit within the container, given that channels are
// packed MSB-first with any slack bits left as unused padding at the low
// end.
func (s spec) offsets() []uint {
	used := uint(0)
	for _, c := range s.channels {
		used += c.bits
	}
	pad := s.containerBits - used
	offs := make([]uint, len(s.channels))
	pos := s.containerBits
	for i, c := range s.channels {
		pos -= c.bits
		offs[i] = pos
	}
	_ = pad // padding occupies [0, pad) and is never read or written
	return offs
}
