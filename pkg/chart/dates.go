package chart

import (
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pfeilbach/svgantt/pkg/errors"
)

// Accepted date layouts. Schedules typically use plain dates; the
// timestamped form is accepted for compatibility with exported files.
const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// DateTime is a schedule date. It wraps time.Time with lenient parsing:
// both "2006-01-02" and "2006-01-02T15:04:05" forms unmarshal, from JSON,
// YAML, and TOML alike. Values with a zero clock marshal as plain dates.
type DateTime struct {
	time.Time
}

// Date creates a DateTime for the given calendar day.
func Date(year int, month time.Month, day int) DateTime {
	return DateTime{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDateTime parses a schedule date string.
func ParseDateTime(s string) (DateTime, error) {
	if t, err := time.Parse(dateTimeLayout, s); err == nil {
		return DateTime{t}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return DateTime{}, errors.New(errors.ErrCodeInvalidDate,
			"invalid date %q (want YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS)", s)
	}
	return DateTime{t}, nil
}

// String returns the canonical textual form.
func (d DateTime) String() string {
	if h, m, s := d.Clock(); h == 0 && m == 0 && s == 0 {
		return d.Format(dateLayout)
	}
	return d.Format(dateTimeLayout)
}

// MarshalText implements encoding.TextMarshaler. encoding/json and
// BurntSushi/toml both pick this up.
func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DateTime) UnmarshalText(text []byte) error {
	parsed, err := ParseDateTime(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler. yaml.v3 does not consult the
// text interfaces, so the node is built here.
func (d DateTime) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The raw scalar value is used
// so unquoted dates work whether the resolver tags them !!str or
// !!timestamp.
func (d *DateTime) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}
