package pipeline

import (
	"fmt"

	"github.com/pfeilbach/svgantt/pkg/errors"
	"github.com/pfeilbach/svgantt/pkg/render/gantt/layout"
	"github.com/pfeilbach/svgantt/pkg/render/gantt/scene"
	"github.com/pfeilbach/svgantt/pkg/render/gantt/sink"
)

// =============================================================================
// Rendering
// =============================================================================

// Render generates output artifacts in the requested formats.
// The scene tree is built once and shared by all vector formats.
func Render(l layout.Layout, opts Options) (map[string][]byte, error) {
	tree := scene.Build(l)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(tree)
		case FormatPNG:
			data, err = sink.RenderPNG(tree, sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(tree)
		case FormatJSON:
			data, err = sink.RenderJSON(l)
		default:
			return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
