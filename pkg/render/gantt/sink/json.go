package sink

import (
	"encoding/json"

	"github.com/pfeilbach/svgantt/pkg/errors"
	"github.com/pfeilbach/svgantt/pkg/render/gantt/layout"
)

// RenderJSON serializes a layout as indented JSON for external tooling.
func RenderJSON(l layout.Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode layout")
	}
	return append(data, '\n'), nil
}
