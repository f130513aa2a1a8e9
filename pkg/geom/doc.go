// Package geom provides the 2D and 3D geometry primitives: raw coordinates
// (XY, XYZ), the semantic wrappers built on them (vectors, points, unit
// directions), small dense matrices, axes and coordinate systems, and the
// 2D affine transform Trsf2d.
//
// All types are plain values. Methods never mutate their receiver unless the
// name says so (Set*, Invert, Multiply, Power); the rest return new values.
package geom
