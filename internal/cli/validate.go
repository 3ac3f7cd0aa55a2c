package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfeilbach/svgantt/pkg/pipeline"
)

// validateCommand creates the validate command for checking schedule
// files without rendering them.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [schedule]",
		Short: "Check a schedule file for errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), args[0])
		},
	}
}

// runValidate parses and validates the schedule, then prints a summary.
// Validation failures surface as the command's error.
func runValidate(ctx context.Context, input string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	ch, err := pipeline.Parse(ctx, pipeline.Options{Input: input})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Validated %s", input))

	milestones := 0
	for _, it := range ch.Items {
		if it.Milestone() {
			milestones++
		}
	}

	printSuccess("%s is valid", input)
	printKeyValue("Title", StyleHighlight.Render(ch.Title))
	printKeyValue("Items", fmt.Sprintf("%d", len(ch.Items)))
	printKeyValue("Resources", fmt.Sprintf("%d", len(ch.Resources)))
	printKeyValue("Milestones", fmt.Sprintf("%d", milestones))
	if ch.MarkedDate != nil {
		printKeyValue("Marked", ch.MarkedDate.Format("2006-01-02"))
	}
	printNextStep("Render", "svgantt render "+input)
	return nil
}
