// Package surface defines the drawing contract the renderers target.
//
// A [Surface] offers the small subset of a 2D canvas the views need:
// clear, stroked paths, circles, aligned text and a save/restore transform
// stack. Implementations embed [Stack] for the transform half.
//
// [Recorder] keeps a display list instead of pixels; it feeds SVG export
// and makes rendered geometry testable.
package surface
