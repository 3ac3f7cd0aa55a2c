package pipeline

import (
	"bytes"
	"context"

	"github.com/pfeilbach/svgantt/pkg/chart"
	"github.com/pfeilbach/svgantt/pkg/errors"
)

// Parse loads and validates a schedule from the configured input.
//
// Inline documents are size-capped because they arrive from the HTTP
// API; local files read by the CLI are trusted and not capped.
func Parse(ctx context.Context, opts Options) (*chart.Chart, error) {
	var c *chart.Chart
	var err error

	if opts.InputData != "" {
		c, err = parseInline(opts)
	} else {
		c, err = parseFile(opts.Input)
	}
	if err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// parseFile reads a schedule from disk, dispatching on the extension.
func parseFile(path string) (*chart.Chart, error) {
	if err := errors.ValidateSchedulePath(path); err != nil {
		return nil, err
	}
	return chart.Import(path)
}

// parseInline decodes an inline schedule document.
func parseInline(opts Options) (*chart.Chart, error) {
	if err := errors.ValidateScheduleSize(len(opts.InputData)); err != nil {
		return nil, err
	}

	data := []byte(opts.InputData)
	switch opts.InputFormat {
	case InputFormatJSON:
		return chart.ReadJSON(bytes.NewReader(data))
	case InputFormatYAML:
		return chart.ReadYAML(bytes.NewReader(data))
	}

	// No format given. JSON documents open with a brace, anything else
	// is treated as YAML.
	if looksLikeJSON(data) {
		return chart.ReadJSON(bytes.NewReader(data))
	}
	return chart.ReadYAML(bytes.NewReader(data))
}

// looksLikeJSON reports whether data starts with a JSON object.
func looksLikeJSON(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}
