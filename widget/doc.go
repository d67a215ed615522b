// Package widget implements the interactive diagrams shown next to an
// algorithm description.
//
// A widget is a small value type holding ephemeral view state (slider
// positions, a toggle, a counter). It is decoded from a request's query
// string, rendered to SVG, and discarded. Widgets never compute the algorithm
// they illustrate: data points and centroids are literal constants and the
// controls only change what is drawn.
//
// # Widgets
//
//   - LineOverlay: a straight line y = slope*x + intercept over six fixed
//     points, optionally with dashed residual segments.
//   - ClusterDisplay: twenty fixed points in five groups with k of five fixed
//     centroids drawn; k only changes centroid count and palette reuse.
//
// # State encoding
//
//	w, _ := widget.Decode(widget.KindLineOverlay, url.Values{"slope": {"2"}, "intercept": {"1"}})
//	w.Encode() // slope=2&intercept=1
//
// Missing or non-numeric parameters take their default; numeric values
// outside a control's range are clamped to the nearest bound.
package widget
