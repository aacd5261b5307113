package pixel

import "github.com/embedraster/raster/internal/fixedpoint"

// Plot writes rgba into buf at offset under format f. When blend is false,
// or the format carries no alpha channel, the pixel is written unmodified
// (opaque write).
//
// When blend is true, source-over blending mixes R/G/B against the
// destination pixel currently in buf and writes the source alpha through
// unchanged (the destination's prior alpha never affects the result), with
// two quick paths: an alpha at or above the channel's maximum writes the
// source unmodified (skips reading the destination), and an 8-bit alpha
// channel of exactly zero is a no-op (the write is skipped entirely). A
// 1-bit alpha channel is a hard threshold: zero discards the write, nonzero
// writes the source opaque.
func Plot(buf []byte, offset int, f Format, rgba [4]fixedpoint.Fixed16_16, blend bool) {
	bits := alphaBits(f)
	r, g, b, a := rgba[0], rgba[1], rgba[2], rgba[3]

	if !blend || bits == 0 {
		EncodeFixed16(buf, offset, f, r, g, b, a)
		return
	}

	if bits == 1 {
		if a <= 0 {
			return
		}
		EncodeFixed16(buf, offset, f, r, g, b, fixedpoint.One16)
		return
	}

	if a >= fixedpoint.One16 {
		EncodeFixed16(buf, offset, f, r, g, b, a)
		return
	}
	if a <= 0 {
		return
	}

	dr, dg, db, _ := DecodeFixed16(buf, offset, f)
	inv := fixedpoint.One16 - a
	or := a.Mul(r) + inv.Mul(dr)
	og := a.Mul(g) + inv.Mul(dg)
	ob := a.Mul(b) + inv.Mul(db)
	EncodeFixed16(buf, offset, f, or, og, ob, a)
}
