// Package shader implements the shader pass: assembling the tagged,
// ordered attribute blob for the currently enabled vertex or fragment
// attribute set, and invoking the user-supplied callback against it.
//
// Attributes are appended to the blob in a fixed canonical order (see
// VertexOrder and FragmentOrder); the parallel descriptor array carries the
// same attributes' kind tags in that order, so a shader can walk both
// slices together without knowing which attributes were actually enabled.
package shader
