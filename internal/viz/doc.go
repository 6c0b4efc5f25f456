// Package viz draws the flip grid in the terminal.
//
// The package implements the interactive TUI with the Bubble Tea framework:
//
//   - [Model]: the program model; mounts the grid on the first window size
//   - [Canvas]: half-block pixel canvas, two square pixels per character
//   - [Theme]: palette, page background and dot color
//
// # Key Bindings
//
//	Space - Pause/Resume
//	F     - Flip every tile
//	f     - Flip a random tile
//	T     - Cycle themes (affects newly generated faces)
//	?     - Show help overlay
//	Q     - Quit
//
// One character cell covers 10 logical units horizontally and 20
// vertically, so a 100-unit tile is 10 columns by 5 rows.
package viz
