package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfeilbach/svgantt/pkg/errors"
)

// starterJSON is the schedule written by "svgantt init".
const starterJSON = `{
  "title": "Project Plan",
  "markedDate": "2026-02-02",
  "resources": ["Design", "Engineering"],
  "items": [
    {"title": "Discovery", "startDate": "2026-01-05", "duration": 10, "resource": 0},
    {"title": "Build", "duration": 15, "resource": 1},
    {"title": "Beta", "resource": 1},
    {"title": "Polish", "duration": 5, "resource": 0, "open": true}
  ]
}
`

// starterYAML is the YAML variant, selected by file extension.
const starterYAML = `title: Project Plan
markedDate: 2026-02-02
resources:
  - Design
  - Engineering
items:
  - title: Discovery
    startDate: 2026-01-05
    duration: 10
    resource: 0
  - title: Build
    duration: 15
    resource: 1
  - title: Beta
    resource: 1
  - title: Polish
    duration: 5
    resource: 0
    open: true
`

// initCommand creates the init command for writing a starter schedule.
func (c *CLI) initCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Create a starter schedule file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "schedule.json"
			if len(args) == 1 {
				path = args[0]
			}
			return runInit(path)
		},
	}
}

// runInit writes the starter schedule to path, refusing to overwrite an
// existing file. The extension picks the document format.
func runInit(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.New(errors.ErrCodeInvalidInput, "%s already exists", path)
	}

	var content string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		content = starterJSON
	case ".yaml", ".yml":
		content = starterYAML
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported extension %q (use .json, .yaml, or .yml)", filepath.Ext(path))
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return err
	}

	printSuccess("Created %s", path)
	printNextStep("Render it", "svgantt render "+path)
	return nil
}
