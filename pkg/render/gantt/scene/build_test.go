package scene

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pfeilbach/svgantt/pkg/render/gantt/layout"
	"github.com/pfeilbach/svgantt/pkg/render/gantt/styles"
)

// testLayout is a two row, single month chart: one task bar and one
// milestone. Hand-built so scene assertions stay independent of the
// layout engine.
func testLayout() layout.Layout {
	return layout.Layout{
		Title:          "Project",
		Frame:          layout.Frame{Width: 310, Height: 150},
		Gutter:         layout.Gutter{Left: 10, Top: 80, Right: 10, Bottom: 10},
		RowGutter:      layout.Gutter{Left: 5, Top: 5, Right: 5, Bottom: 5},
		RowHeight:      30,
		TitleWidth:     210,
		MaxMonthWidth:  80,
		ResourceGutter: layout.Gutter{Left: 10, Top: 10, Right: 10, Bottom: 10},
		ResourceHeight: 40,
		CornerRadius:   3,
		TotalDays:      31,
		Columns:        []layout.Column{{Label: "Jan", X: 220, Width: 80}},
		Rows: []layout.Row{
			{Title: "A", Offset: 220, Length: 20, Resource: 0},
			{Title: "B", Offset: 240, Milestone: true, Resource: 1},
		},
		Resources: []styles.Resource{
			{Index: 0, Name: "R1", Color: 0x804040, Closed: "resource-0-closed", Open: "resource-0-open"},
			{Index: 1, Name: "R2", Color: 0x408080, Closed: "resource-1-closed", Open: "resource-1-open"},
		},
	}
}

func TestBuildDocumentOrder(t *testing.T) {
	tree := Build(testLayout())

	if len(tree.Nodes) != 4 {
		t.Fatalf("got %d top level nodes, want 4", len(tree.Nodes))
	}
	if _, ok := tree.Nodes[0].(Text); !ok {
		t.Errorf("node 0 is %T, want the title Text", tree.Nodes[0])
	}
	if g, ok := tree.Nodes[1].(Group); !ok || g.Class != "columns" {
		t.Errorf("node 1 is %T %v, want the columns Group", tree.Nodes[1], tree.Nodes[1])
	}
	if txt, ok := tree.Nodes[2].(Text); !ok || txt.Content != "Tasks" {
		t.Errorf("node 2 is %T %v, want the Tasks heading", tree.Nodes[2], tree.Nodes[2])
	}
	if g, ok := tree.Nodes[3].(Group); !ok || g.Class != "rows" {
		t.Errorf("node 3 is %T %v, want the rows Group", tree.Nodes[3], tree.Nodes[3])
	}
}

func TestBuildCanvas(t *testing.T) {
	tree := Build(testLayout())

	if tree.Width != 310 || tree.Height != 150 {
		t.Errorf("canvas = %vx%v, want 310x150", tree.Width, tree.Height)
	}
	if tree.Background != "white" {
		t.Errorf("Background = %q, want %q", tree.Background, "white")
	}
}

func TestBuildStylesheet(t *testing.T) {
	tree := Build(testLayout())

	if !strings.HasPrefix(tree.Styles, ".outer-lines{stroke-width:3;stroke:#aaaaaa;}") {
		t.Errorf("stylesheet does not begin with the outer-lines rule:\n%s", tree.Styles)
	}
	if !strings.Contains(tree.Styles, ".resource-1-open{fill:none;stroke-width:2;stroke:#408080;}") {
		t.Errorf("stylesheet missing the open rule for resource 1:\n%s", tree.Styles)
	}
}

func TestBuildTitle(t *testing.T) {
	tree := Build(testLayout())

	want := Text{X: 10, Y: 25, Class: "title", Content: "Project"}
	if got := tree.Nodes[0]; !reflect.DeepEqual(got, want) {
		t.Errorf("title = %+v, want %+v", got, want)
	}
}

func TestBuildColumns(t *testing.T) {
	tree := Build(testLayout())

	got := tree.Nodes[1].(Group)
	want := []Node{
		Line{X1: 220, Y1: 80, X2: 220, Y2: 140, Class: "inner-lines"},
		Text{X: 260, Y: 60, Class: "heading", Content: "Jan"},
		Line{X1: 300, Y1: 80, X2: 300, Y2: 140, Class: "inner-lines"},
	}
	if !reflect.DeepEqual(got.Nodes, want) {
		t.Errorf("columns = %+v\nwant %+v", got.Nodes, want)
	}
}

func TestBuildTasksHeading(t *testing.T) {
	tree := Build(testLayout())

	want := Text{X: 15, Y: 60, Class: "heading task-heading", Content: "Tasks"}
	if got := tree.Nodes[2]; !reflect.DeepEqual(got, want) {
		t.Errorf("tasks heading = %+v, want %+v", got, want)
	}
}

func TestBuildRows(t *testing.T) {
	tree := Build(testLayout())

	got := tree.Nodes[3].(Group)
	want := []Node{
		Line{X1: 10, Y1: 80, X2: 300, Y2: 80, Class: "outer-lines"},
		Text{X: 15, Y: 100, Class: "item", Content: "A"},
		Rect{X: 220, Y: 85, W: 20, H: 20, RX: 3, Class: "resource-0-closed"},
		Line{X1: 10, Y1: 110, X2: 300, Y2: 110, Class: "inner-lines"},
		Text{X: 15, Y: 130, Class: "item", Content: "B"},
		Diamond{CX: 240, Y: 115, R: 10, Class: "milestone"},
		Line{X1: 10, Y1: 140, X2: 300, Y2: 140, Class: "outer-lines"},
	}
	if !reflect.DeepEqual(got.Nodes, want) {
		t.Errorf("rows = %+v\nwant %+v", got.Nodes, want)
	}
}

func TestBuildOpenBar(t *testing.T) {
	l := testLayout()
	l.Rows[0].Open = true

	tree := Build(l)
	rows := tree.Nodes[3].(Group)

	bar := rows.Nodes[2].(Rect)
	if bar.Class != "resource-0-open" {
		t.Errorf("bar class = %q, want %q", bar.Class, "resource-0-open")
	}
}

func TestBuildMarker(t *testing.T) {
	l := testLayout()
	l.Marker = &layout.Marker{X: 250}

	tree := Build(l)
	if len(tree.Nodes) != 5 {
		t.Fatalf("got %d top level nodes, want 5", len(tree.Nodes))
	}

	want := Line{X1: 250, Y1: 75, X2: 250, Y2: 145, Class: "marker"}
	if got := tree.Nodes[4]; !reflect.DeepEqual(got, want) {
		t.Errorf("marker = %+v, want %+v", got, want)
	}
}

func TestBuildLegend(t *testing.T) {
	l := testLayout()
	l.Legend = true

	tree := Build(l)
	if len(tree.Nodes) != 5 {
		t.Fatalf("got %d top level nodes, want 5", len(tree.Nodes))
	}

	got := tree.Nodes[4].(Group)
	if got.Class != "resources" {
		t.Errorf("legend group class = %q, want %q", got.Class, "resources")
	}
	want := []Node{
		Text{X: 105, Y: 160, Class: "resource", Content: "R1"},
		Rect{X: 115, Y: 150, W: 20, H: 20, RX: 3, Class: "resource-0-closed"},
		Text{X: 205, Y: 160, Class: "resource", Content: "R2"},
		Rect{X: 215, Y: 150, W: 20, H: 20, RX: 3, Class: "resource-1-closed"},
	}
	if !reflect.DeepEqual(got.Nodes, want) {
		t.Errorf("legend = %+v\nwant %+v", got.Nodes, want)
	}
}

func TestBuildMarkerAndLegendOrder(t *testing.T) {
	l := testLayout()
	l.Marker = &layout.Marker{X: 250}
	l.Legend = true

	tree := Build(l)
	if len(tree.Nodes) != 6 {
		t.Fatalf("got %d top level nodes, want 6", len(tree.Nodes))
	}
	if _, ok := tree.Nodes[4].(Line); !ok {
		t.Errorf("node 4 is %T, want the marker Line", tree.Nodes[4])
	}
	if g, ok := tree.Nodes[5].(Group); !ok || g.Class != "resources" {
		t.Errorf("node 5 is %T, want the resources Group", tree.Nodes[5])
	}
}
