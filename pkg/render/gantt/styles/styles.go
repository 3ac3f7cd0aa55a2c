// Package styles resolves per-resource colors and the chart stylesheet.
//
// Every visual attribute lives in CSS classes emitted once into the SVG
// <style> element; drawing primitives carry class names only. Resource bars
// use one generated class pair per resource, resolved up front into a
// Resource descriptor so downstream code never rebuilds class names.
package styles

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Resource describes one schedulable resource: legend label, generated
// color, and the class names its task bars reference.
type Resource struct {
	Index  int    `json:"index"`  // Position in the chart's resource list
	Name   string `json:"name"`   // Legend label
	Color  RGB    `json:"color"`  // Generated bar color
	Closed string `json:"closed"` // Class for solid (closed) bars
	Open   string `json:"open"`   // Class for outlined (open) bars
}

// Resolve builds one descriptor per resource name, drawing colors from a
// palette seeded by rng.
func Resolve(names []string, rng *rand.Rand) []Resource {
	palette := NewPalette(rng)
	resources := make([]Resource, len(names))
	for i, name := range names {
		resources[i] = Resource{
			Index:  i,
			Name:   name,
			Color:  palette.Next(),
			Closed: fmt.Sprintf("resource-%d-closed", i),
			Open:   fmt.Sprintf("resource-%d-open", i),
		}
	}
	return resources
}

// baseStyles are the class definitions every chart shares.
var baseStyles = []string{
	".outer-lines{stroke-width:3;stroke:#aaaaaa;}",
	".inner-lines{stroke-width:2;stroke:#dddddd;}",
	".item{font-family:Arial;font-size:12pt;dominant-baseline:middle;}",
	".resource{font-family:Arial;font-size:12pt;text-anchor:end;dominant-baseline:middle;}",
	".title{font-family:Arial;font-size:18pt;}",
	".heading{font-family:Arial;font-size:16pt;dominant-baseline:middle;text-anchor:middle;}",
	".task-heading{dominant-baseline:middle;text-anchor:start;}",
	".milestone{fill:black;stroke-width:1;stroke:black;}",
	".marker{stroke-width:2;stroke:#888888;stroke-dasharray:7;}",
}

// Stylesheet renders the base classes plus a closed/open pair per resource,
// one rule per line.
func Stylesheet(resources []Resource) string {
	rules := make([]string, 0, len(baseStyles)+2*len(resources))
	rules = append(rules, baseStyles...)
	for _, r := range resources {
		hex := r.Color.Hex()
		rules = append(rules,
			fmt.Sprintf(".%s{fill:%s;stroke-width:1;stroke:%s;}", r.Closed, hex, hex),
			fmt.Sprintf(".%s{fill:none;stroke-width:2;stroke:%s;}", r.Open, hex),
		)
	}
	return strings.Join(rules, "\n")
}
