// Package render turns motion parameters and a time into drawing commands
// for the spring view and the graph view.
//
// Both views are pure functions of their inputs: the same parameters and
// time always produce the same geometry. Neither checks Xm or ω for zero;
// a zero divisor yields NaN coordinates that the surface drops.
package render
