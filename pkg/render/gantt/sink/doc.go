// Package sink serializes chart scenes into output formats.
//
// # Overview
//
// A "sink" turns a [scene.Tree] into final bytes. This package provides:
//
//   - SVG: the primary vector output
//   - JSON: layout data export for external tools
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] walks the scene's node list in document order and writes one
// element per line. All styling lives in a single <style> element emitted
// from the scene's stylesheet; elements reference classes only. The root
// element declares the computed canvas size as both viewBox and
// width/height, with a white page background.
//
// Coordinates are written with two decimal places by default, trailing
// zeros trimmed. [WithPrecision] adjusts this:
//
//	svg := sink.RenderSVG(tree, sink.WithPrecision(4))
//
// # JSON Output
//
// [RenderJSON] exports the complete computed layout, enabling:
//
//   - Integration with external tooling
//   - Caching of layout computations
//   - Inspection of row and column geometry
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] first render SVG, then convert via [ToPDF]
// and [ToPNG]. Both require librsvg:
//
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [scene.Tree]: github.com/pfeilbach/svgantt/pkg/render/gantt/scene.Tree
package sink
