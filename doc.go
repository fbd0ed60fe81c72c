// Package engrave generates decorative engraved patterns — spirograph and
// guilloché (rose-engine) styles — and exports the resulting geometry for
// manufacturing: SVG for laser engraving, STL for 3D printing, and STEP for
// CNC tooling.
//
// # Rose engines and rosettes
//
// A rose engine lathe cuts a groove whose radius is modulated by a cam called
// a rosette. This package models rosettes as pure functions from a phase
// angle to a bounded modulation value (see [Rosette] and its implementations
// [MultiLobe], [Sinusoidal], [Elliptical], [Epicycloid], [HuitEight],
// [GrainDeRiz], [Paon], [Diamant], [Flat], and [Table]). A [RoseConfig] turns
// a rosette into one full-rotation tool path;
// a [Run] repeats that path across many rotated (or concentrically stepped)
// passes and optionally splits each pass into drawn arcs separated by gaps,
// which is what gives classical guilloché its woven appearance.
//
// # Spirographs
//
// [SpiroConfig] generates hypotrochoid and epitrochoid curves, optionally
// with a vertical wave (z modulation) or projected onto a spherical dome for
// curved watch crystals. Parameters are validated eagerly; radii are
// constrained to the 26–44 mm watch-face domain.
//
// # Composition and export
//
// A [Pattern] composes any number of layers — spirograph configurations,
// rose-engine configurations, multi-pass runs — in draw order. Generation is
// deterministic and layers generate concurrently; identical configurations
// always produce bit-identical paths.
//
// Three export back ends consume a composed pattern:
//
//   - [WriteSVG] emits one drawing group per layer in millimeter coordinates.
//   - [WriteSTL] sweeps a cutting bit's cross-section (see [Bit]) along each
//     path to build manifold groove solids on a base plate.
//   - [WriteSTEP] encodes the paths and their swept groove bodies as an
//     ISO-10303-21 document with a strictly increasing entity id space.
//
// [RenderPNG] additionally rasterizes a quick preview.
//
// Exports never mutate a pattern, so exporting the same pattern repeatedly
// with the same options produces byte-identical output.
package engrave
