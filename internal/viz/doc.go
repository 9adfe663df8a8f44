// Package viz is the terminal surface: it paints scene outlines onto a
// braille [Canvas] and wraps it in a Bubble Tea [App] for editing the
// target height and shooter distance.
//
// # Key Bindings
//
//	↑/↓   - Select field
//	Enter - Edit field, Enter again to apply
//	U     - Apply both fields
//	R     - Forget the scale history
//	T     - Cycle color themes
//	Q     - Quit
package viz
