// Package layout implements a two-pass (measure, then position) layout engine
// for trees of declarative UI nodes.
//
// It supports vertical and horizontal stacks, overlays, scroll viewports,
// flexible space distribution, main-axis justification, cross-axis alignment,
// min/max clamping and leaf content sizing through a pluggable [Estimator].
// Types are re-exported through the root flow package for public consumption.
//
// The main entry point is [ComputeLayout], which takes a [Node] tree and writes
// absolute x/y/width/height geometry back onto every node it positions.
package layout
