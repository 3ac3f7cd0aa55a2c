package scene

import (
	"github.com/pfeilbach/svgantt/pkg/render/gantt/layout"
	"github.com/pfeilbach/svgantt/pkg/render/gantt/styles"
)

const (
	titleBaseline  = 25.0
	markerOverhang = 5.0
	legendPitch    = 100.0
)

// Build assembles the drawing tree for a computed layout. Document order:
// title, month columns, the "Tasks" heading, task rows, the marked-date
// line, and the resource legend.
func Build(l layout.Layout) *Tree {
	t := &Tree{
		Width:      l.Frame.Width,
		Height:     l.Frame.Height,
		Background: "white",
		Styles:     styles.Stylesheet(l.Resources),
	}

	t.Nodes = append(t.Nodes,
		Text{X: l.Gutter.Left, Y: titleBaseline, Class: "title", Content: l.Title},
		columns(l),
		tasksHeading(l),
		rows(l),
	)
	if l.Marker != nil {
		t.Nodes = append(t.Nodes, marker(l))
	}
	if l.Legend {
		t.Nodes = append(t.Nodes, legend(l))
	}
	return t
}

// headingY is the baseline shared by the month labels and the Tasks heading.
func headingY(l layout.Layout) float64 {
	return l.Gutter.Top - l.RowGutter.Bottom - l.RowHeight/2
}

// columns draws a vertical grid line per month boundary and a centered
// month label per column. Labels center on the maximum month width, so
// short months carry their label slightly right of center.
func columns(l layout.Layout) Group {
	g := Group{Class: "columns"}
	bottom := l.RowsBottom()
	y := headingY(l)

	x := l.Gutter.Left + l.TitleWidth
	for _, col := range l.Columns {
		g.Nodes = append(g.Nodes,
			Line{X1: col.X, Y1: l.Gutter.Top, X2: col.X, Y2: bottom, Class: "inner-lines"},
			Text{X: col.X + l.MaxMonthWidth/2, Y: y, Class: "heading", Content: col.Label},
		)
		x = col.X + col.Width
	}
	// Closing boundary after the last month.
	g.Nodes = append(g.Nodes, Line{X1: x, Y1: l.Gutter.Top, X2: x, Y2: bottom, Class: "inner-lines"})
	return g
}

func tasksHeading(l layout.Layout) Text {
	return Text{
		X:       l.Gutter.Left + l.RowGutter.Left,
		Y:       headingY(l),
		Class:   "heading task-heading",
		Content: "Tasks",
	}
}

// rows draws a horizontal boundary line per row, the task label, and the
// task bar or milestone diamond. The first and last boundaries carry the
// heavier outer line class.
func rows(l layout.Layout) Group {
	g := Group{Class: "rows"}
	right := l.Frame.Width - l.Gutter.Right

	for i, row := range l.Rows {
		y := l.Gutter.Top + float64(i)*l.RowHeight

		class := "inner-lines"
		if i == 0 {
			class = "outer-lines"
		}
		g.Nodes = append(g.Nodes,
			Line{X1: l.Gutter.Left, Y1: y, X2: right, Y2: y, Class: class},
			Text{
				X:       l.Gutter.Left + l.RowGutter.Left,
				Y:       y + l.RowGutter.Top + l.RowHeight/2,
				Class:   "item",
				Content: row.Title,
			},
		)

		if row.Milestone {
			g.Nodes = append(g.Nodes, Diamond{
				CX:    row.Offset,
				Y:     y + l.RowGutter.Top,
				R:     l.BarHeight() / 2,
				Class: "milestone",
			})
		} else {
			g.Nodes = append(g.Nodes, Rect{
				X:     row.Offset,
				Y:     y + l.RowGutter.Top,
				W:     row.Length,
				H:     l.BarHeight(),
				RX:    l.CornerRadius,
				Class: barClass(l.Resources, row),
			})
		}
	}

	bottom := l.RowsBottom()
	g.Nodes = append(g.Nodes, Line{X1: l.Gutter.Left, Y1: bottom, X2: right, Y2: bottom, Class: "outer-lines"})
	return g
}

func barClass(resources []styles.Resource, row layout.Row) string {
	r := resources[row.Resource]
	if row.Open {
		return r.Open
	}
	return r.Closed
}

// marker draws the dashed marked-date line across the full row band.
func marker(l layout.Layout) Line {
	return Line{
		X1:    l.Marker.X,
		Y1:    l.Gutter.Top - markerOverhang,
		X2:    l.Marker.X,
		Y2:    l.RowsBottom() + markerOverhang,
		Class: "marker",
	}
}

// legend draws one labeled color swatch per resource below the row band,
// on a fixed column pitch.
func legend(l layout.Layout) Group {
	g := Group{Class: "resources"}
	bandY := l.RowsBottom()
	swatch := l.ResourceHeight - l.ResourceGutter.Height()

	for _, r := range l.Resources {
		x := l.ResourceGutter.Left + float64(r.Index+1)*legendPitch
		g.Nodes = append(g.Nodes,
			Text{X: x - 5, Y: bandY + l.ResourceHeight/2, Class: "resource", Content: r.Name},
			Rect{
				X:     x + 5,
				Y:     bandY + l.ResourceGutter.Top,
				W:     swatch,
				H:     swatch,
				RX:    l.CornerRadius,
				Class: r.Closed,
			},
		)
	}
	return g
}
