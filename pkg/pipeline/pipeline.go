// Package pipeline provides the core rendering pipeline for svgantt.
//
// This package implements the complete parse → layout → render pipeline that
// can be used by CLI and server components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Load and validate a schedule from a file or inline document
//  2. Layout: Compute the calendar span, column and row geometry, and colors
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "project.json",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Parse only
//	c, err := runner.Parse(ctx, opts)
//
//	// Layout with an existing schedule
//	l, err := runner.ComputeLayout(ctx, c, opts)
//
//	// Render with an existing layout
//	artifacts, err := runner.Render(ctx, l, opts)
package pipeline

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pfeilbach/svgantt/pkg/cache"
	"github.com/pfeilbach/svgantt/pkg/chart"
	"github.com/pfeilbach/svgantt/pkg/render/gantt/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultTitleWidth is the width in pixels reserved for task labels.
	DefaultTitleWidth = layout.DefaultTitleWidth

	// DefaultMaxMonthWidth is the column width in pixels of a 31-day month.
	DefaultMaxMonthWidth = layout.DefaultMaxMonthWidth

	// DefaultScale is the PNG pixel density multiplier.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Input format constants for schedule documents.
const (
	InputFormatJSON = "json"
	InputFormatYAML = "yaml"
)

// ValidInputFormats is the set of supported schedule document formats.
var ValidInputFormats = map[string]bool{
	InputFormatJSON: true,
	InputFormatYAML: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the rendering pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Parse options
	Input       string `json:"input,omitempty"`        // schedule file path
	InputData   string `json:"input_data,omitempty"`   // inline schedule document
	InputFormat string `json:"input_format,omitempty"` // json or yaml; detected when empty

	// Layout options
	TitleWidth    float64 `json:"title_width,omitempty"`
	MaxMonthWidth float64 `json:"max_month_width,omitempty"`
	Legend        bool    `json:"legend,omitempty"`
	Seed          uint64  `json:"seed,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"` // PNG pixel density multiplier
	Refresh bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Chart is the parsed schedule.
	Chart *chart.Chart

	// ChartHash is the content hash of the normalized schedule.
	ChartHash string

	// Layout contains the computed chart geometry.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount     int
	ResourceCount int
	ParseTime     time.Duration
	LayoutTime    time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
// Parsing is not cached, a schedule document loads in microseconds.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateInputFormat checks that an input format is valid.
// An empty format means detect from content.
func ValidateInputFormat(format string) error {
	if format != "" && !ValidInputFormats[format] {
		return fmt.Errorf("invalid input_format: %q (must be json or yaml)", format)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	if o.Input == "" && o.InputData == "" {
		return fmt.Errorf("input or input_data is required")
	}
	if o.Input != "" && o.InputData != "" {
		return fmt.Errorf("input and input_data are mutually exclusive")
	}
	if err := ValidateInputFormat(o.InputFormat); err != nil {
		return err
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.TitleWidth == 0 {
		o.TitleWidth = DefaultTitleWidth
	}
	if o.MaxMonthWidth == 0 {
		o.MaxMonthWidth = DefaultMaxMonthWidth
	}
	if o.Seed == 0 {
		// Fresh seed per run, so resource colors vary between runs.
		// Pin --seed for reproducible output and warm caches.
		o.Seed = rand.Uint64()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.TitleWidth < 0 {
		return fmt.Errorf("title_width must not be negative")
	}
	if o.MaxMonthWidth < 0 {
		return fmt.Errorf("max_month_width must not be negative")
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 0 {
		return fmt.Errorf("scale must not be negative")
	}
	return nil
}

// Source names the schedule origin for logs and instrumentation.
func (o *Options) Source() string {
	if o.Input != "" {
		return o.Input
	}
	return "inline"
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		TitleWidth:    o.TitleWidth,
		MaxMonthWidth: o.MaxMonthWidth,
		Legend:        o.Legend,
		Seed:          o.Seed,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Scale:  o.Scale,
	}
}
