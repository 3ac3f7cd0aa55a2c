// Package layout computes chart geometry from a schedule.
//
// Two passes walk the items. The first surveys the date span: it resolves
// each item's effective start, extends task durations past weekends
// ("shadow durations"), and finds the chart's month range. The second
// places each item horizontally, scaling days to pixels against the total
// column width, and resolves resource inheritance. Both passes thread an
// explicit state value through a step function rather than mutating shared
// variables.
package layout

import (
	"math/rand/v2"
	"time"

	"github.com/pfeilbach/svgantt/pkg/calendar"
	"github.com/pfeilbach/svgantt/pkg/chart"
	"github.com/pfeilbach/svgantt/pkg/render/gantt/styles"
)

// Defaults for the configurable dimensions.
const (
	DefaultTitleWidth    = 210.0
	DefaultMaxMonthWidth = 80.0
)

// Fixed chart margins.
var (
	chartGutter    = Gutter{Left: 10, Top: 80, Right: 10, Bottom: 10}
	rowGutter      = Gutter{Left: 5, Top: 5, Right: 5, Bottom: 5}
	resourceGutter = Gutter{Left: 10, Top: 10, Right: 10, Bottom: 10}
)

const (
	// barHeight is the bar or legend swatch height between the gutters.
	barHeight    = 20.0
	cornerRadius = 3.0
	// longestMonthDays scales column widths: a 31 day month fills
	// MaxMonthWidth exactly, shorter months proportionally less.
	longestMonthDays = 31.0
)

// Option adjusts chart geometry.
type Option func(*config)

type config struct {
	titleWidth    float64
	maxMonthWidth float64
	legend        bool
	rng           *rand.Rand
}

// WithTitleWidth sets the width of the task title column.
func WithTitleWidth(w float64) Option {
	return func(c *config) { c.titleWidth = w }
}

// WithMaxMonthWidth sets the width of a 31 day month column.
func WithMaxMonthWidth(w float64) Option {
	return func(c *config) { c.maxMonthWidth = w }
}

// WithLegend adds the resource legend below the chart body.
func WithLegend() Option {
	return func(c *config) { c.legend = true }
}

// WithSeed pins the resource color sequence for reproducible output.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewPCG(seed, seed^0xdeadbeef)) }
}

// WithRand supplies the random source that picks the first resource hue.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}

// Build validates the chart and computes its full geometry.
func Build(c *chart.Chart, opts ...Option) (Layout, error) {
	if err := c.Validate(); err != nil {
		return Layout{}, err
	}

	cfg := config{titleWidth: DefaultTitleWidth, maxMonthWidth: DefaultMaxMonthWidth}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		seed := rand.Uint64()
		cfg.rng = rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	}

	span, shadows := surveyItems(c.Items)
	start := calendar.MonthStart(span.start)
	end := calendar.MonthEnd(span.end)

	columns, totalDays := buildColumns(start, end, cfg)
	var totalWidth float64
	for _, col := range columns {
		totalWidth += col.Width
	}

	sc := scale{
		start: start,
		days:  totalDays,
		width: totalWidth,
		left:  cfg.titleWidth + chartGutter.Left,
	}

	rows := placeItems(c.Items, shadows, sc)

	rowHeight := rowGutter.Height() + barHeight
	resourceHeight := resourceGutter.Height() + barHeight

	l := Layout{
		Title:          c.Title,
		Gutter:         chartGutter,
		RowGutter:      rowGutter,
		RowHeight:      rowHeight,
		TitleWidth:     cfg.titleWidth,
		MaxMonthWidth:  cfg.maxMonthWidth,
		ResourceGutter: resourceGutter,
		ResourceHeight: resourceHeight,
		CornerRadius:   cornerRadius,
		TotalDays:      totalDays,
		Columns:        columns,
		Rows:           rows,
		Resources:      styles.Resolve(c.Resources, cfg.rng),
		Legend:         cfg.legend,
	}

	if c.MarkedDate != nil {
		l.Marker = &Marker{X: sc.offset(c.MarkedDate.Time)}
	}

	var legendBand float64
	if cfg.legend {
		legendBand = resourceGutter.Height() + resourceHeight
	}
	l.Frame = Frame{
		Width:  chartGutter.Width() + cfg.titleWidth + totalWidth,
		Height: chartGutter.Top + float64(len(rows))*rowHeight + legendBand + chartGutter.Bottom,
	}

	return l, nil
}

// scale converts day counts to horizontal pixels.
type scale struct {
	start time.Time
	days  int
	width float64
	left  float64 // Title column plus left gutter
}

// offset returns the x position of a date.
func (s scale) offset(t time.Time) float64 {
	return s.left + float64(calendar.DaysBetween(s.start, t))/float64(s.days)*s.width
}

// span returns the width of a run of days.
func (s scale) span(days int) float64 {
	return float64(days) / float64(s.days) * s.width
}

// surveySpan is the date range discovered by the first pass.
type surveySpan struct {
	cursor time.Time // Running date
	start  time.Time // Minimum start, pushed past weekends
	end    time.Time // Maximum date reached
}

// surveyItems resolves the schedule's date span and the weekend-extended
// shadow duration of every task. Milestones record -1.
func surveyItems(items []chart.Item) (surveySpan, []int) {
	var span surveySpan
	shadows := make([]int, len(items))
	for i, it := range items {
		span, shadows[i] = surveyStep(span, it)
	}
	return span, shadows
}

// surveyStep advances the survey by one item.
func surveyStep(span surveySpan, it chart.Item) (surveySpan, int) {
	if it.StartDate != nil {
		raw := it.StartDate.Time
		span.cursor = raw
		// The stored minimum is weekend-shifted; later candidates still
		// compare against it with their raw value.
		if span.start.IsZero() || raw.Before(span.start) {
			span.start = calendar.SkipWeekend(raw)
		}
	}

	shadow := -1
	if !it.Milestone() {
		shadow = calendar.ShadowDuration(span.cursor, *it.Duration)
		span.cursor = span.cursor.AddDate(0, 0, shadow)
	}

	// A milestone dated past every task end still extends the chart.
	if span.cursor.After(span.end) {
		span.end = span.cursor
	}
	return span, shadow
}

// walkState carries the placement cursor and the inherited resource index.
type walkState struct {
	date     time.Time
	resource int
}

// placeItems computes row geometry, reusing the surveyed shadow durations.
func placeItems(items []chart.Item, shadows []int, sc scale) []Row {
	st := walkState{date: sc.start}
	rows := make([]Row, len(items))
	for i, it := range items {
		st, rows[i] = placeStep(st, it, shadows[i], sc)
	}
	return rows
}

// placeStep advances the placement by one item and emits its row.
func placeStep(st walkState, it chart.Item, shadow int, sc scale) (walkState, Row) {
	if it.StartDate != nil {
		st.date = it.StartDate.Time
	}

	offset := sc.offset(st.date)

	var length float64
	if !it.Milestone() {
		st.date = st.date.AddDate(0, 0, shadow)
		length = sc.span(shadow)
	}

	if it.Resource != nil {
		st.resource = *it.Resource
	}

	return st, Row{
		Title:     it.Title,
		Offset:    offset,
		Length:    length,
		Milestone: it.Milestone(),
		Open:      it.Open,
		Resource:  st.resource,
	}
}

// buildColumns lays out one column per month between start and end.
func buildColumns(start, end time.Time, cfg config) ([]Column, int) {
	months := calendar.MonthStarts(start, end)
	columns := make([]Column, len(months))
	x := chartGutter.Left + cfg.titleWidth
	var totalDays int
	for i, m := range months {
		days := calendar.DaysIn(m.Year(), m.Month())
		width := cfg.maxMonthWidth * float64(days) / longestMonthDays
		columns[i] = Column{Label: m.Format("Jan"), X: x, Width: width}
		x += width
		totalDays += days
	}
	return columns, totalDays
}
