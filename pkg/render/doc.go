// Package render draws the two brickring diagrams as SVG documents: the ring
// top view (concentric barrel, insulation and brick circles with N wedge
// polygons and stacked diameter dimensions) and the single-brick cut template
// (trapezoid with dimension call-outs and miter-angle arcs).
//
// The renderers own no geometry logic: they consume an immutable
// ring.Geometry record by value, together with the original inputs, and only
// place what the engine computed. PNG and PDF export go through rsvg-convert.
package render
