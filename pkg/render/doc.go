// Package render provides chart rendering for schedules.
//
// # Overview
//
// This package contains the rendering pipeline that transforms computed
// schedules into visual outputs. The [gantt] subpackage renders Gantt
// charts: one row per task, month columns scaled to their calendar length,
// diamond milestones, and an optional resource legend.
//
// Key gantt subpackages:
//   - [gantt/layout]: Row and column geometry from a schedule
//   - [gantt/styles]: Resource colors and the chart stylesheet
//   - [gantt/scene]: Drawing primitives assembled in document order
//   - [gantt/sink]: Output formats (SVG, PNG, PDF, JSON)
//
// # Format Conversion
//
// The sink's PNG and PDF renderers convert the SVG using the external
// rsvg-convert tool (from librsvg):
//
//	svg := sink.RenderSVG(tree)
//	png, err := sink.RenderPNG(tree, sink.WithScale(2.0))  // 2x scale
//	pdf, err := sink.RenderPDF(tree)
//
// [gantt]: github.com/pfeilbach/svgantt/pkg/render/gantt
// [gantt/layout]: github.com/pfeilbach/svgantt/pkg/render/gantt/layout
// [gantt/styles]: github.com/pfeilbach/svgantt/pkg/render/gantt/styles
// [gantt/scene]: github.com/pfeilbach/svgantt/pkg/render/gantt/scene
// [gantt/sink]: github.com/pfeilbach/svgantt/pkg/render/gantt/sink
package render
