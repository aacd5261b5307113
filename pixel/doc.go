// Package pixel implements the packed pixel format codec: encoding and
// decoding between normalized RGBA (or 16.16 fixed-point channels) and the
// dozen packed formats enumerated in the spec, plus the blended pixel-plot
// primitive used by the fragment finalizer.
//
// # Format dispatch
//
// Rather than a per-pixel switch cascade, each Format resolves to a small
// descriptor of its channels (name and bit width, declared MSB-first in the
// order the format's name lists them). Encode/Decode/Plot all walk that
// descriptor, so adding a format only means adding one table entry.
package pixel
