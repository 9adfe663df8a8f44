// Package geom holds the small amount of plane geometry the scene
// generators need:
//
//   - [Point]: a 2-D point in pixel space (y grows downward)
//   - [IntervalFor]: tick spacing lookup for an axis
//   - [Direction], [Perpendicular]: branch endpoint vectors from an angle
//   - [CubicPoints], [ArcPoints], [EllipsePoints]: curve flattening for
//     surfaces that can only draw polylines
//
// Angles are in degrees and measured clockwise on screen, matching the
// rotation convention of the shape descriptors.
package geom
