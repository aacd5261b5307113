// Package texture implements the texture unit descriptor and the
// nearest-texel sampler: clamped (never wrapped) lookup into caller-owned
// texel storage, decoded according to the bound pixel format and the
// unit's compressed/non-compressed storage layout.
package texture
