// Package viz provides the terminal front end for the oscillator.
//
// The spring and graph views are drawn through [BrailleSurface], a
// surface.Surface backed by a [Canvas] of braille cells, and composed by a
// Bubble Tea [Model] with one text input per parameter control:
//
//   - [Canvas]: 2x4-dot braille grid with per-cell colors
//   - [BrailleSurface]: logical-pixel drawing with transforms and clipping
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Play/Pause animation
//	Tab   - Edit the next input, Esc to leave it
//	←/→   - Select a parameter
//	↑/↓   - Tune the selected parameter
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//
// # Recording
//
// Frames fired while recording are rasterized with their colors and written
// as shm.gif in the current directory when recording stops.
package viz
