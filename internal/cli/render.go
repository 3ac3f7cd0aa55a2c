package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfeilbach/svgantt/pkg/errors"
	"github.com/pfeilbach/svgantt/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
// These options control chart dimensions, color seeding, caching, and
// output formats.
type renderOpts struct {
	output     string   // output file path, "-" for stdout, derived from input when empty
	formats    []string // output formats: "svg", "png", "pdf", "json"
	titleWidth float64  // width of the task label column in pixels
	monthWidth float64  // maximum width of a month column in pixels
	legend     bool     // render the resource legend below the rows
	seed       uint64   // resource color seed (0 picks a fresh seed per run)
	scale      float64  // PNG pixel density multiplier
	noCache    bool     // bypass the layout and artifact caches
	refresh    bool     // recompute even when cached results exist
}

// renderCommand creates the render command for generating Gantt charts.
// It supports SVG, PNG, PDF, and JSON layout output.
//
// Default settings:
//   - format: svg
//   - title-width: 210px, month-width: 80px
//   - legend: off
//   - seed: 0 (random colors each run; pin for reproducible output)
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [schedule]",
		Short: "Render a schedule to SVG, PNG, PDF, or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatsStr != "" {
				opts.formats = parseFormats(formatsStr)
			} else {
				opts.formats = c.config.Render.Formats
			}
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			c.applyChartConfig(cmd, &opts)
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.titleWidth, "title-width", pipeline.DefaultTitleWidth, "width of the task label column")
	cmd.Flags().Float64Var(&opts.monthWidth, "month-width", pipeline.DefaultMaxMonthWidth, "maximum width of a month column")
	cmd.Flags().BoolVar(&opts.legend, "legend", false, "render the resource legend")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "resource color seed (0 picks a fresh seed per run)")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG pixel density multiplier")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the layout and artifact caches")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached results exist")

	return cmd
}

// applyChartConfig fills chart options from the config file for flags
// the user did not set. Flags win over config, config wins over
// defaults.
func (c *CLI) applyChartConfig(cmd *cobra.Command, opts *renderOpts) {
	if !cmd.Flags().Changed("title-width") {
		opts.titleWidth = c.config.Chart.TitleWidth
	}
	if !cmd.Flags().Changed("month-width") {
		opts.monthWidth = c.config.Chart.MonthWidth
	}
	if !cmd.Flags().Changed("legend") {
		opts.legend = c.config.Chart.Legend
	}
}

// runRender executes the pipeline for the given schedule file and
// writes the rendered artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, pipeline.Options{
		Input:         input,
		TitleWidth:    opts.titleWidth,
		MaxMonthWidth: opts.monthWidth,
		Legend:        opts.legend,
		Seed:          opts.seed,
		Formats:       opts.formats,
		Scale:         opts.scale,
		Refresh:       opts.refresh,
	})
	if err != nil {
		return err
	}

	paths, err := writeArtifacts(input, opts.output, opts.formats, result.Artifacts)
	if err != nil {
		return err
	}

	// Stdout output gets no summary; it would corrupt the artifact.
	if opts.output == "-" {
		return nil
	}

	printSuccess("Rendered %s", result.Chart.Title)
	for _, path := range paths {
		printFile(path)
	}
	printStats(result.Stats, result.CacheInfo)
	return nil
}

// writeArtifacts writes rendered artifacts to disk in the order the
// formats were requested. A single artifact goes to the output path
// directly; multiple artifacts share a base path with per-format
// extensions. It returns the paths written.
func writeArtifacts(input, output string, formats []string, artifacts map[string][]byte) ([]string, error) {
	if len(formats) == 1 {
		format := formats[0]
		path := output
		if path == "" {
			path = basePath("", input) + "." + format
		}
		if err := writeArtifact(path, artifacts[format]); err != nil {
			return nil, err
		}
		if path == "-" {
			return nil, nil
		}
		return []string{path}, nil
	}

	if output == "-" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cannot write multiple formats to stdout")
	}

	base := basePath(output, input)
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := base + "." + format
		if err := writeArtifact(path, artifacts[format]); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// writeArtifact writes data to path, or to stdout when path is "-".
func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.Write(data)
	return err
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png, etc.), it strips that extension.
// This is used when generating multiple files (e.g., project.svg, project.png).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	// Strip known format extensions from output path
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is "-", it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
