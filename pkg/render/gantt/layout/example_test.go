package layout_test

import (
	"fmt"
	"time"

	"github.com/pfeilbach/svgantt/pkg/chart"
	"github.com/pfeilbach/svgantt/pkg/render/gantt/layout"
)

func ExampleBuild() {
	// Three items walked in order: Mockups is dated, Implement chains
	// off its end, Launch is a milestone pinned to the chain.
	five, three := 5, 3
	design, platform := 0, 1
	start := chart.Date(2024, time.March, 4) // a Monday

	ch := &chart.Chart{
		Title:     "Rollout",
		Resources: []string{"Design", "Platform"},
		Items: []chart.Item{
			{Title: "Mockups", StartDate: &start, Duration: &five, Resource: &design},
			{Title: "Implement", Duration: &three, Resource: &platform},
			{Title: "Launch"},
		},
	}

	l, err := layout.Build(ch, layout.WithSeed(1))
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	fmt.Println("Days:", l.TotalDays)
	fmt.Println("Months:", len(l.Columns))
	fmt.Println("Rows:", len(l.Rows))
	fmt.Println("Launch is milestone:", l.Rows[2].Milestone)
	// Output:
	// Days: 31
	// Months: 1
	// Rows: 3
	// Launch is milestone: true
}
