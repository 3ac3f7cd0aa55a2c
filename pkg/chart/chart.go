package chart

import (
	"github.com/pfeilbach/svgantt/pkg/errors"
)

// Chart is a declarative schedule: a titled list of tasks drawing from a
// shared pool of resources.
type Chart struct {
	Title      string    `json:"title" yaml:"title"`
	MarkedDate *DateTime `json:"markedDate,omitempty" yaml:"markedDate,omitempty"`
	Resources  []string  `json:"resources" yaml:"resources"`
	Items      []Item    `json:"items" yaml:"items"`
}

// Item is a single schedule entry. An item without a duration is a
// milestone. Omitted fields inherit from the running schedule walk: a
// missing start date continues where the previous task ended, and a
// missing resource reuses the previous item's resource.
type Item struct {
	Title     string    `json:"title" yaml:"title"`
	Duration  *int      `json:"duration,omitempty" yaml:"duration,omitempty"`
	StartDate *DateTime `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	Resource  *int      `json:"resource,omitempty" yaml:"resource,omitempty"`
	Open      bool      `json:"open,omitempty" yaml:"open,omitempty"`
}

// Milestone reports whether the item is a milestone (no duration).
func (it Item) Milestone() bool {
	return it.Duration == nil
}

// Validate checks the schedule invariants the layout engine depends on.
// Checks run in the same order the layout walk visits items, so the first
// reported problem is the first one the walk would hit:
//
//   - at least two items
//   - the first item carries a start date
//   - every given resource index is in range
//   - the first item carries a resource index
func (c *Chart) Validate() error {
	if len(c.Items) < 2 {
		return errors.New(errors.ErrCodeInsufficientItems, "You must provide more than one task")
	}

	for i, item := range c.Items {
		if item.StartDate == nil && i == 0 {
			return errors.New(errors.ErrCodeMissingStartDate, "First item must contain a start date")
		}

		if item.Resource != nil {
			if *item.Resource < 0 || *item.Resource >= len(c.Resources) {
				return errors.New(errors.ErrCodeResourceOutOfRange, "Resource index is out of range")
			}
		} else if i == 0 {
			return errors.New(errors.ErrCodeMissingResource, "First item must contain a resource index")
		}
	}

	return nil
}
