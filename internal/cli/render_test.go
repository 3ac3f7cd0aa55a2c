package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"json only", "json", []string{"json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derive from input", "", "project.json", "project"},
		{"strip format extension", "chart.svg", "project.json", "chart"},
		{"keep bare output", "chart", "project.json", "chart"},
		{"strip png in subdirectory", "out/chart.png", "project.json", "out/chart"},
		{"keep unknown extension", "archive.tar", "project.json", "archive.tar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{
		"svg":  []byte("<svg/>"),
		"json": []byte("{}"),
	}

	t.Run("single format to explicit path", func(t *testing.T) {
		out := filepath.Join(dir, "chart.svg")
		paths, err := writeArtifacts("project.json", out, []string{"svg"}, artifacts)
		if err != nil {
			t.Fatalf("writeArtifacts() error: %v", err)
		}
		if len(paths) != 1 || paths[0] != out {
			t.Errorf("paths = %v, want [%s]", paths, out)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("read output: %v", err)
		}
		if string(data) != "<svg/>" {
			t.Errorf("output = %q, want %q", data, "<svg/>")
		}
	})

	t.Run("multiple formats share a base", func(t *testing.T) {
		base := filepath.Join(dir, "multi")
		paths, err := writeArtifacts("project.json", base, []string{"svg", "json"}, artifacts)
		if err != nil {
			t.Fatalf("writeArtifacts() error: %v", err)
		}
		if len(paths) != 2 {
			t.Fatalf("paths = %v, want 2 entries", paths)
		}
		for _, ext := range []string{".svg", ".json"} {
			if _, err := os.Stat(base + ext); err != nil {
				t.Errorf("missing artifact %s: %v", base+ext, err)
			}
		}
	})

	t.Run("multiple formats reject stdout", func(t *testing.T) {
		if _, err := writeArtifacts("project.json", "-", []string{"svg", "json"}, artifacts); err == nil {
			t.Error("writeArtifacts() to stdout with two formats should fail")
		}
	})
}

func TestApplyChartConfig(t *testing.T) {
	c := newTestCLI(t)
	c.config.Chart.TitleWidth = 150
	c.config.Chart.MonthWidth = 62
	c.config.Chart.Legend = true

	cmd := c.renderCommand()
	opts := renderOpts{titleWidth: 210, monthWidth: 80}

	c.applyChartConfig(cmd, &opts)
	if opts.titleWidth != 150 {
		t.Errorf("titleWidth = %v, want config value 150", opts.titleWidth)
	}
	if opts.monthWidth != 62 {
		t.Errorf("monthWidth = %v, want config value 62", opts.monthWidth)
	}
	if !opts.legend {
		t.Error("legend should come from config")
	}

	// An explicit flag wins over the config file.
	if err := cmd.Flags().Set("title-width", "300"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	opts.titleWidth = 300
	c.applyChartConfig(cmd, &opts)
	if opts.titleWidth != 300 {
		t.Errorf("titleWidth = %v, want flag value 300", opts.titleWidth)
	}
}

func TestRenderCommandWritesSVG(t *testing.T) {
	c := newTestCLI(t)
	dir := t.TempDir()
	schedule := writeTestSchedule(t, dir)
	out := filepath.Join(dir, "chart.svg")

	err := runCommand(t, c, "render", schedule, "-o", out, "--no-cache", "--seed", "7")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("<svg")) {
		t.Errorf("output does not start with <svg: %.40s", data)
	}
}

func TestRenderCommandMultipleFormats(t *testing.T) {
	c := newTestCLI(t)
	dir := t.TempDir()
	schedule := writeTestSchedule(t, dir)
	base := filepath.Join(dir, "out")

	err := runCommand(t, c, "render", schedule, "-o", base, "-f", "svg,json", "--no-cache")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, ext := range []string{".svg", ".json"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("missing artifact %s: %v", base+ext, err)
		}
	}
}

func TestRenderCommandInvalidFormat(t *testing.T) {
	c := newTestCLI(t)
	dir := t.TempDir()
	schedule := writeTestSchedule(t, dir)

	if err := runCommand(t, c, "render", schedule, "-f", "bmp"); err == nil {
		t.Error("render with invalid format should fail")
	}
}

func TestRenderCommandMissingFile(t *testing.T) {
	c := newTestCLI(t)

	if err := runCommand(t, c, "render", filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("render with missing schedule should fail")
	}
}
