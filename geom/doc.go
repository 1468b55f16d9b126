// Package geom holds the point set consumed by the linkage engine:
// 3-D integer points, coordinate axes, and the Euclidean metric used to weight
// every pair of points.
//
// What:
//
//   - Point: an immutable (X, Y, Z) triple of int64 coordinates. A point is
//     identified only by its position in the input slice.
//   - Axis: selects one coordinate of a Point (AxisX, AxisY, AxisZ).
//   - Distance: straight-line (L2) distance computed in float64.
//   - ReadPoints: loader for the "x,y,z per line" text form.
//
// Errors:
//
//   - ErrUnknownAxis: axis value or name is not x, y or z.
//   - ErrMalformedRecord: a text line is not three comma-separated integers.
//
// Complexity:
//
//   - Distance: O(1).
//   - ReadPoints: O(L) in the number of input lines.
package geom
