// Package chart defines the declarative schedule model and its JSON and
// YAML readers.
//
// # Overview
//
// A schedule is a title, a list of items, a list of resources, and an
// optional marked date. Items reference resources by index. The layout
// engine walks items in order, so the schedule format leans on inheritance
// to stay terse: an item without a start date begins where the previous
// task ended, and an item without a resource reuses the previous one.
//
// # JSON Format
//
//	{
//	  "title": "Project Plan",
//	  "markedDate": "2024-02-15",
//	  "resources": ["Design", "Engineering"],
//	  "items": [
//	    {"title": "Concept", "duration": 5, "startDate": "2024-01-01", "resource": 0},
//	    {"title": "Build", "duration": 10, "resource": 1, "open": true},
//	    {"title": "Ship", "resource": 1}
//	  ]
//	}
//
// # Item Fields
//
// Required:
//   - title: Display label for the task row
//
// Optional:
//   - duration: Working days; omit to mark a milestone (drawn as a diamond)
//   - startDate: "YYYY-MM-DD" or "YYYY-MM-DDTHH:MM:SS"; omit to continue
//     from the previous task's end
//   - resource: Index into the resources list; omit to inherit
//   - open: Mark the task in progress (drawn hollow)
//
// The first item must carry both startDate and resource so the walk has a
// starting point; [Chart.Validate] enforces this along with index bounds.
//
// Unknown fields are ignored on read, so schedules annotated by other
// tooling still load.
//
// # YAML
//
// The YAML form mirrors the JSON field names:
//
//	title: Project Plan
//	resources: [Design, Engineering]
//	items:
//	  - {title: Concept, duration: 5, startDate: 2024-01-01, resource: 0}
//	  - {title: Build, duration: 10, resource: 1}
//
// # Import and Export
//
// [Import] and [Export] dispatch on the file extension. [Read], [ReadJSON],
// [ReadYAML], [WriteJSON], and [WriteYAML] work with io.Reader/io.Writer
// for callers that manage files themselves (the HTTP API reads schedules
// from request bodies).
package chart
