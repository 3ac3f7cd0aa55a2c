package pipeline

import (
	"github.com/pfeilbach/svgantt/pkg/chart"
	"github.com/pfeilbach/svgantt/pkg/render/gantt/layout"
)

// =============================================================================
// Layout Generation
// =============================================================================

// ComputeLayout computes the chart geometry for a validated schedule.
// This is the unified entry point for generating serializable layout data.
//
// The layout includes:
//   - The calendar span and proportional month columns
//   - Row offsets, bar lengths, milestones, and the optional date marker
//   - Resource color assignments derived from the seed
func ComputeLayout(c *chart.Chart, opts Options) (layout.Layout, error) {
	l, err := layout.Build(c, layoutOptions(opts)...)
	if err != nil {
		return layout.Layout{}, err
	}

	// The marker is drawn wherever the date lands, even outside the
	// chart body.
	if opts.Logger != nil && l.Marker != nil {
		left := l.Gutter.Left + l.TitleWidth
		if l.Marker.X < left || l.Marker.X > left+l.ColumnsWidth() {
			opts.Logger.Warnf("marked date %s falls outside the chart span", c.MarkedDate)
		}
	}

	return l, nil
}

// layoutOptions converts pipeline options into layout options.
// The seed is always pinned so cached layouts match their cache keys.
func layoutOptions(opts Options) []layout.Option {
	lopts := []layout.Option{
		layout.WithTitleWidth(opts.TitleWidth),
		layout.WithMaxMonthWidth(opts.MaxMonthWidth),
		layout.WithSeed(opts.Seed),
	}
	if opts.Legend {
		lopts = append(lopts, layout.WithLegend())
	}
	return lopts
}
