// Package scene defines the data model shared by the layout pipeline and
// every drawing surface:
//
//   - [Params]: the two user inputs (target height, shooter distance)
//   - [Viewport], [Margins], [Area]: canvas size and the drawable region
//   - [ScaleState]: pixels-per-meter on each axis, kept across redraws
//   - [Bounds]: the largest distance/height the axes must show
//   - [Shape]: an immutable, fully resolved drawing primitive
//
// Shapes carry absolute pixel coordinates (origin top-left, y down) and
// never refer back to the logical parameters they were derived from.
package scene
