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

// ReadJSON decodes a JSON schedule from r.
//
// Unknown fields are accepted and ignored, so schedules carrying extra
// tooling metadata still load. ReadJSON does not validate the schedule;
// call [Chart.Validate] before handing it to the layout engine.
func ReadJSON(r io.Reader) (*Chart, error) {
	var c Chart
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode schedule JSON")
	}
	return &c, nil
}

// ReadYAML decodes a YAML schedule from r.
// Field names match the JSON form (title, items, resources, markedDate).
func ReadYAML(r io.Reader) (*Chart, error) {
	var c Chart
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode schedule YAML")
	}
	return &c, nil
}

// Read decodes a schedule from r in the format implied by ext
// (".json", ".yaml", or ".yml").
func Read(r io.Reader, ext string) (*Chart, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return ReadJSON(r)
	case ".yaml", ".yml":
		return ReadYAML(r)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unrecognized schedule extension %q (must be .json, .yaml, or .yml)", ext)
	}
}

// Import reads a schedule file at path, dispatching on its extension.
//
// Import opens the file, decodes it with [Read], and closes the file.
// Errors wrap the underlying cause with the file path for context.
func Import(path string) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return Read(f, filepath.Ext(path))
}
