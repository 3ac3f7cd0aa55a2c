package pipeline

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/pfeilbach/svgantt/pkg/cache"
)

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// writeSchedule writes a two-task schedule and returns its path.
func writeSchedule(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.json")
	doc := `{
  "title": "Release",
  "resources": ["Core", "Platform"],
  "items": [
    {"title": "Design", "startDate": "2024-01-01", "duration": 5, "resource": 0},
    {"title": "Build", "duration": 10, "resource": 1}
  ]
}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write schedule: %v", err)
	}
	return path
}

func TestRunnerExecute(t *testing.T) {
	runner := NewRunner(nil, nil, discardLogger())
	defer runner.Close()

	opts := Options{
		Input:   writeSchedule(t),
		Formats: []string{FormatSVG, FormatJSON},
		Seed:    42,
	}

	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if result.Stats.ItemCount != 2 {
		t.Errorf("ItemCount = %d, want 2", result.Stats.ItemCount)
	}
	if result.Stats.ResourceCount != 2 {
		t.Errorf("ResourceCount = %d, want 2", result.Stats.ResourceCount)
	}
	if len(result.ChartHash) != 64 {
		t.Errorf("ChartHash should be 64 hex chars, got %q", result.ChartHash)
	}

	svg, ok := result.Artifacts[FormatSVG]
	if !ok || !bytes.HasPrefix(svg, []byte("<svg")) {
		t.Error("SVG artifact missing or malformed")
	}
	if _, ok := result.Artifacts[FormatJSON]; !ok {
		t.Error("JSON artifact missing")
	}

	if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Error("NullCache should never report hits")
	}
	if len(result.Layout.Rows) != 2 {
		t.Errorf("Layout should have 2 rows, got %d", len(result.Layout.Rows))
	}
}

func TestRunnerExecuteCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	runner := NewRunner(c, nil, discardLogger())
	defer runner.Close()

	opts := Options{
		Input:   writeSchedule(t),
		Formats: []string{FormatSVG, FormatJSON},
		Seed:    7,
	}
	ctx := context.Background()

	first, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("First Execute error: %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Error("First run should miss the cache")
	}

	second, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Second Execute error: %v", err)
	}
	if !second.CacheInfo.LayoutHit {
		t.Error("Second run should hit the layout cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("Second run should hit the artifact cache")
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("Cached SVG should match the rendered SVG")
	}

	// Refresh bypasses cache reads
	refreshOpts := opts
	refreshOpts.Refresh = true
	third, err := runner.Execute(ctx, refreshOpts)
	if err != nil {
		t.Fatalf("Refresh Execute error: %v", err)
	}
	if third.CacheInfo.LayoutHit || third.CacheInfo.RenderHit {
		t.Error("Refresh run should not read the cache")
	}
}

func TestRunnerExecuteInlineYAML(t *testing.T) {
	runner := NewRunner(nil, nil, discardLogger())
	defer runner.Close()

	opts := Options{
		InputData: "title: Inline\nresources:\n  - Core\nitems:\n  - title: A\n    startDate: 2024-01-01\n    duration: 5\n    resource: 0\n  - title: B\n    duration: 3\n",
		Formats:   []string{FormatSVG},
		Seed:      3,
	}

	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if result.Chart.Title != "Inline" {
		t.Errorf("Title = %q, want Inline", result.Chart.Title)
	}
	if result.Stats.ItemCount != 2 {
		t.Errorf("ItemCount = %d, want 2", result.Stats.ItemCount)
	}
}

func TestRunnerExecuteInvalidFormat(t *testing.T) {
	runner := NewRunner(nil, nil, discardLogger())
	defer runner.Close()

	opts := Options{
		Input:   writeSchedule(t),
		Formats: []string{"bmp"},
	}

	if _, err := runner.Execute(context.Background(), opts); err == nil {
		t.Error("Invalid format should fail")
	}
}

func TestRunnerExecuteInvalidSchedule(t *testing.T) {
	runner := NewRunner(nil, nil, discardLogger())
	defer runner.Close()

	opts := Options{
		InputData:   `{"title": "Solo", "resources": ["Core"], "items": [{"title": "A", "startDate": "2024-01-01", "resource": 0}]}`,
		InputFormat: InputFormatJSON,
	}

	_, err := runner.Execute(context.Background(), opts)
	if err == nil {
		t.Fatal("Single-item schedule should fail validation")
	}
	if !strings.Contains(err.Error(), "more than one task") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestRunnerStages(t *testing.T) {
	runner := NewRunner(nil, nil, discardLogger())
	defer runner.Close()
	ctx := context.Background()

	opts := Options{Input: writeSchedule(t), Seed: 5}

	c, err := runner.Parse(ctx, opts)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(c.Items) != 2 {
		t.Fatalf("Parse returned %d items, want 2", len(c.Items))
	}

	l, err := runner.ComputeLayout(ctx, c, opts)
	if err != nil {
		t.Fatalf("ComputeLayout error: %v", err)
	}
	if len(l.Rows) != 2 {
		t.Errorf("Layout has %d rows, want 2", len(l.Rows))
	}

	artifacts, err := runner.Render(ctx, l, opts)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if _, ok := artifacts[FormatSVG]; !ok {
		t.Error("Render should default to SVG output")
	}
}
