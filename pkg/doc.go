// Package pkg provides the core libraries for svgantt chart generation.
//
// # Overview
//
// Svgantt transforms declarative schedules into Gantt chart diagrams. A
// schedule names its tasks, their durations and resources, and the chart
// engine takes care of the calendar: weekend-aware task spans, month
// columns, milestones, and per-resource coloring. The pkg directory is
// organized into four main areas:
//
//  1. [chart] - The input model (schedules, items, dates, readers)
//  2. [calendar] - Date arithmetic (month bounds, weekend shifts)
//  3. [render/gantt] - The chart engine (layout → scene → sink)
//  4. [pipeline] - Orchestration (parse → layout → render) with caching
//
// # Architecture
//
// The typical data flow through svgantt:
//
//	JSON/YAML schedule
//	         ↓
//	    [chart] package (parse + validate)
//	         ↓
//	    [render/gantt/layout] package (rows, columns, geometry)
//	         ↓
//	    [render/gantt/scene] package (drawing primitives)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
// Read a schedule and render a chart:
//
//	import (
//	    "os"
//	    "github.com/pfeilbach/svgantt/pkg/chart"
//	    "github.com/pfeilbach/svgantt/pkg/render/gantt/layout"
//	    "github.com/pfeilbach/svgantt/pkg/render/gantt/scene"
//	    "github.com/pfeilbach/svgantt/pkg/render/gantt/sink"
//	)
//
//	// 1. Read the schedule
//	c, _ := chart.Import("project.json")
//
//	// 2. Compute the layout
//	l, _ := layout.Build(c, layout.WithSeed(42), layout.WithLegend())
//
//	// 3. Build the scene tree
//	t := scene.Build(l)
//
//	// 4. Render to SVG
//	os.WriteFile("project.svg", sink.RenderSVG(t), 0644)
//
// # Main Packages
//
// ## Input Model
//
// [chart] - Schedule types and readers. A Chart holds a title, resources,
// an optional marked date, and items; items chain onto the running cursor
// when they carry no explicit start date and inherit the previous item's
// resource when they name none. Items without a duration are milestones.
//
// [calendar] - Pure date arithmetic: days-in-month, month bounds, day
// spans, and the weekend shift that extends a task whose end would land on
// a Saturday or Sunday.
//
// ## Chart Engine
//
// [render/gantt/layout] - Geometry computation. Two passes walk the items:
// the first surveys the date span and shadow durations, the second places
// each row against proportional month columns.
//
// [render/gantt/styles] - Resource colors from a golden-ratio hue walk and
// the chart stylesheet with per-resource closed/open classes.
//
// [render/gantt/scene] - Drawing primitives (lines, rects, diamonds, text,
// groups) assembled into a tree in document order.
//
// [render/gantt/sink] - Output formats: hand-written SVG, PNG and PDF via
// rsvg-convert, and the layout itself as JSON.
//
// ## Infrastructure
//
// [pipeline] - Complete chart pipeline (parse → layout → render) used by
// CLI and server. Layouts and rendered artifacts are cached by content
// hash; parsing is pure local I/O and is not cached.
//
// [cache] - Cache backends: a file cache for the CLI, Redis for
// multi-instance servers, and a null cache. Keys are derived from chart
// and layout hashes plus the options that shape the output.
//
// [errors] - Structured errors with stable codes shared by the CLI exit
// paths and the server's HTTP status mapping.
//
// [observability] - Hook registry for pipeline, cache, and HTTP events.
// The server installs prometheus-backed hooks; the CLI keeps the no-ops.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                  # All tests
//	go test ./pkg/render/gantt/...     # Chart engine only
//	go test -run Example               # Examples only
//
// [chart]: https://pkg.go.dev/github.com/pfeilbach/svgantt/pkg/chart
// [calendar]: https://pkg.go.dev/github.com/pfeilbach/svgantt/pkg/calendar
// [render/gantt]: https://pkg.go.dev/github.com/pfeilbach/svgantt/pkg/render/gantt
// [render/gantt/layout]: https://pkg.go.dev/github.com/pfeilbach/svgantt/pkg/render/gantt/layout
// [render/gantt/styles]: https://pkg.go.dev/github.com/pfeilbach/svgantt/pkg/render/gantt/styles
// [render/gantt/scene]: https://pkg.go.dev/github.com/pfeilbach/svgantt/pkg/render/gantt/scene
// [render/gantt/sink]: https://pkg.go.dev/github.com/pfeilbach/svgantt/pkg/render/gantt/sink
// [pipeline]: https://pkg.go.dev/github.com/pfeilbach/svgantt/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/pfeilbach/svgantt/pkg/cache
// [errors]: https://pkg.go.dev/github.com/pfeilbach/svgantt/pkg/errors
// [observability]: https://pkg.go.dev/github.com/pfeilbach/svgantt/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/pfeilbach/svgantt/pkg/buildinfo
package pkg
