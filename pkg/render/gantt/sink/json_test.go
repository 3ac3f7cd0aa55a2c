package sink

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/pfeilbach/svgantt/pkg/render/gantt/layout"
	"github.com/pfeilbach/svgantt/pkg/render/gantt/styles"
)

func TestRenderJSONRoundTrip(t *testing.T) {
	l := layout.Layout{
		Title:      "Project",
		Frame:      layout.Frame{Width: 310, Height: 150},
		Gutter:     layout.Gutter{Left: 10, Top: 80, Right: 10, Bottom: 10},
		RowHeight:  30,
		TitleWidth: 210,
		TotalDays:  31,
		Columns:    []layout.Column{{Label: "Jan", X: 220, Width: 80}},
		Rows:       []layout.Row{{Title: "A", Offset: 220, Length: 20}},
		Resources: []styles.Resource{
			{Index: 0, Name: "R1", Color: 0x804040, Closed: "resource-0-closed", Open: "resource-0-open"},
		},
	}

	data, err := RenderJSON(l)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("output does not end with a newline")
	}
	if !strings.Contains(string(data), "\n  \"frame\"") {
		t.Error("output is not indented with two spaces")
	}

	var got layout.Layout
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, l) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, l)
	}
}
