// Package viz renders the mesh animation in a terminal using Bubble Tea.
//
// Each mesh cell maps to a two-character colored block; terminal mouse
// motion (enabled via tea.WithMouseAllMotion) stands in for the canvas
// pointer, so the influence field works the same way it does in the GUI.
//
// # Key Bindings
//
//	Space - Pause/Resume animation
//	R     - Rebuild the grid with a fresh seed
//	B     - Toggle cell borders
//	Q     - Quit
package viz
