// Package proj implements forward map projections on the unit sphere and the
// plumbing needed to draw whole-world geometry with them: spherical rotation,
// antimeridian and horizon clipping, segment densification, extent fitting,
// and graticule generation.
//
// A Raw is a bare projection formula plus the traits the pipeline needs
// (horizon radius, latitude bounds, interruption lobes). A Projection wraps a
// Raw with rotation, scale, translation, and an optional rectangular clip,
// and turns longitude/latitude geometry into device-space paths.
//
// Formulas follow the published spherical forms (Snyder, "Map Projections: A
// Working Manual", and the usual pseudocylindrical literature). All of them
// are forward-only: nothing in this package inverts a projection.
package proj
