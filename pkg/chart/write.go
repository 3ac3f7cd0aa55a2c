package chart

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pfeilbach/svgantt/pkg/errors"
)

// WriteJSON encodes a schedule as indented JSON.
// The output round-trips through [ReadJSON].
func WriteJSON(c *Chart, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode schedule JSON")
	}
	return nil
}

// WriteYAML encodes a schedule as YAML.
// The output round-trips through [ReadYAML].
func WriteYAML(c *Chart, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode schedule YAML")
	}
	return enc.Close()
}

// Export writes a schedule to path, dispatching on its extension.
func Export(c *Chart, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return WriteJSON(c, f)
	case ".yaml", ".yml":
		return WriteYAML(c, f)
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"unrecognized schedule extension %q (must be .json, .yaml, or .yml)", filepath.Ext(path))
	}
}
