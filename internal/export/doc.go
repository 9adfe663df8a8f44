// Package export writes a laid-out frame to files: SVG for vector
// output, PNG through a software rasterizer, and JSON descriptor dumps
// for other tools.
package export
