// Package clip implements homogeneous clipping against the six canonical
// frustum planes x=±w, y=±w, z=±w: trivial point accept/reject, line
// clipping by Cohen–Sutherland outcodes, and triangle clipping by
// Sutherland–Hodgman polygon clipping followed by fan triangulation.
package clip
