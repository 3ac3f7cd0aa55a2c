package layout

import "github.com/pfeilbach/svgantt/pkg/render/gantt/styles"

// Gutter is a named margin around a layout region.
type Gutter struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Width returns the combined horizontal margin.
func (g Gutter) Width() float64 {
	return g.Left + g.Right
}

// Height returns the combined vertical margin.
func (g Gutter) Height() float64 {
	return g.Top + g.Bottom
}

// Frame is the outer canvas size.
type Frame struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Column is one calendar month band.
type Column struct {
	Label string  `json:"label"` // Abbreviated month name
	X     float64 `json:"x"`     // Left edge
	Width float64 `json:"width"` // Proportional to the month's day count
}

// Row is the resolved geometry for one schedule item.
type Row struct {
	Title     string  `json:"title"`
	Offset    float64 `json:"offset"`    // Bar left edge, or milestone center
	Length    float64 `json:"length"`    // Bar width; zero for milestones
	Milestone bool    `json:"milestone"` // Item carried no duration
	Open      bool    `json:"open"`      // Outlined bar instead of filled
	Resource  int     `json:"resource"`  // Own or inherited resource index
}

// Marker is the optional marked-date line position.
type Marker struct {
	X float64 `json:"x"`
}

// Layout is the fully resolved geometry for one chart. It carries everything
// a scene builder needs and serializes to JSON for caching and inspection.
type Layout struct {
	Title          string            `json:"title"`
	Frame          Frame             `json:"frame"`
	Gutter         Gutter            `json:"gutter"`
	RowGutter      Gutter            `json:"rowGutter"`
	RowHeight      float64           `json:"rowHeight"`
	TitleWidth     float64           `json:"titleWidth"`
	MaxMonthWidth  float64           `json:"maxMonthWidth"`
	ResourceGutter Gutter            `json:"resourceGutter"`
	ResourceHeight float64           `json:"resourceHeight"`
	CornerRadius   float64           `json:"cornerRadius"`
	TotalDays      int               `json:"totalDays"`
	Columns        []Column          `json:"columns"`
	Rows           []Row             `json:"rows"`
	Marker         *Marker           `json:"marker,omitempty"`
	Resources      []styles.Resource `json:"resources"`
	Legend         bool              `json:"legend"`
}

// ColumnsWidth returns the summed width of all month columns.
func (l Layout) ColumnsWidth() float64 {
	var w float64
	for _, c := range l.Columns {
		w += c.Width
	}
	return w
}

// RowsBottom returns the y coordinate of the last row boundary.
func (l Layout) RowsBottom() float64 {
	return l.Gutter.Top + float64(len(l.Rows))*l.RowHeight
}

// BarHeight returns the height of a task bar inside its row band.
func (l Layout) BarHeight() float64 {
	return l.RowHeight - l.RowGutter.Height()
}
