// Package export writes frames and sampled series to files: SVG from a
// recorded display list or a braille canvas, CSV from the sampler.
package export
