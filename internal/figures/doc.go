// Package figures builds the procedurally proportioned characters of the
// scene. Each generator is a pure function from an anchor point and the
// current scales to a flat, back-to-front list of shapes:
//
//   - [Shooter]: the hunter standing at the origin
//   - [Tree]: trunk, bark, main branch, small branches and canopy
//   - [Monkey]: hanging from the tree's main branch at the target height
//
// Every part is a fixed fraction of one root size, so the figures keep
// their proportions at any zoom.
package figures
